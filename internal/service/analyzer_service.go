package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"logsearch-gateway/internal/apperror"
	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/model"
	"logsearch-gateway/internal/repository"
	"logsearch-gateway/internal/store"
	"logsearch-gateway/internal/util"
)

const (
	traceLookback      = 24 * time.Hour
	traceErrorPageSize = 20

	maxAnalyzedLogs   = 50
	maxLogLineLength  = 500
	maxPromptLogBytes = 15000
	logSeparator      = "\n\n---\n\n"

	noErrorLogsAnswer = "No error logs found for this trace_id."
	emptyLogsAnswer   = "There are no error logs to analyze."
)

type AnalyzerService interface {
	AnalyzeTrace(ctx context.Context, traceID string) (*dto.AnalyzeResponse, error)
}

type analyzerService struct {
	logRepo    repository.LogRepository
	llmService LLMService
	analyses   store.AnalysisStore
	now        func() time.Time
}

func NewAnalyzerService(logRepo repository.LogRepository, llmService LLMService, analyses store.AnalysisStore) AnalyzerService {
	return &analyzerService{
		logRepo:    logRepo,
		llmService: llmService,
		analyses:   analyses,
		now:        time.Now,
	}
}

func (s *analyzerService) AnalyzeTrace(ctx context.Context, traceID string) (*dto.AnalyzeResponse, error) {
	if traceID == "" {
		return nil, apperror.Validation("trace_id cannot be empty")
	}
	log.Info().Str("trace_id", traceID).Msg("AI analyze request")

	if cached, ok := s.analyses.Get(ctx, traceID); ok {
		log.Info().Str("trace_id", traceID).Msg("Returning stored AI analysis")
		return cached, nil
	}

	errorLogs, err := s.errorLogsForTrace(ctx, traceID)
	if err != nil {
		return nil, err
	}
	if len(errorLogs) == 0 {
		return &dto.AnalyzeResponse{Analysis: noErrorLogsAnswer, TraceID: traceID}, nil
	}

	lines := make([]string, len(errorLogs))
	for i, hit := range errorLogs {
		lines[i] = FormatLogLine(hit)
	}

	analysis, err := s.analyzeLines(ctx, lines, traceID)
	if err != nil {
		log.Error().Err(err).Str("trace_id", traceID).Msg("AI analysis failed")
		return nil, err
	}

	log.Info().Str("trace_id", traceID).Msg("AI analysis completed")
	resp := &dto.AnalyzeResponse{Analysis: analysis, TraceID: traceID}
	s.analyses.Put(ctx, traceID, resp)
	return resp, nil
}

func (s *analyzerService) errorLogsForTrace(ctx context.Context, traceID string) ([]model.LogHit, error) {
	tr := util.TrailingWindow(s.now(), traceLookback)
	req := util.AbsoluteRequest(fmt.Sprintf("trace_id:%s AND level:ERROR", traceID), tr, 1, traceErrorPageSize)

	resp, err := s.logRepo.Search(ctx, req, tr)
	if err != nil {
		return nil, err
	}
	return resp.Hits, nil
}

func (s *analyzerService) analyzeLines(ctx context.Context, lines []string, traceID string) (string, error) {
	if len(lines) == 0 {
		return emptyLogsAnswer, nil
	}
	if len(lines) > maxAnalyzedLogs {
		log.Info().Int("found", len(lines)).Int("kept", maxAnalyzedLogs).Msg("Truncating logs for AI analysis")
		lines = lines[:maxAnalyzedLogs]
	}

	prompt := BuildAnalysisPrompt(lines, traceID)
	log.Info().Str("trace_id", traceID).Int("logs", len(lines)).Int("prompt_size", len(prompt)).Msg("Starting AI analysis")

	return s.llmService.Complete(ctx, prompt)
}

// FormatLogLine renders a hit as "[ts] [LEVEL] [service] message".
func FormatLogLine(hit model.LogHit) string {
	return fmt.Sprintf("[%s] [%s] [%s] %s",
		hit.Timestamp.UTC().Format("2006-01-02 15:04:05.000"),
		hit.Level,
		hit.Service,
		hit.Message,
	)
}

// BuildAnalysisPrompt embeds the log lines, each capped at maxLogLineLength
// bytes and all together at maxPromptLogBytes.
func BuildAnalysisPrompt(lines []string, traceID string) string {
	truncated := make([]string, len(lines))
	for i, line := range lines {
		if len(line) > maxLogLineLength {
			line = fmt.Sprintf("%s...(%d characters omitted)", truncateBytes(line, maxLogLineLength), len(line)-maxLogLineLength)
		}
		truncated[i] = line
	}

	logsText := strings.Join(truncated, logSeparator)
	if len(logsText) > maxPromptLogBytes {
		logsText = truncateBytes(logsText, maxPromptLogBytes) + "...(remaining content omitted)"
	}

	return fmt.Sprintf(`You are a senior systems architect and troubleshooting expert. Briefly analyze the following error logs.

Trace ID: %s

Logs:
%s

Requirements:
1. State the main error concisely (1-2 sentences)
2. Analyze the likely causes (2-3 key points)
3. Suggest fixes (2-3 items)
4. Keep the answer under 500 words`, traceID, logsText)
}

// truncateBytes cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
