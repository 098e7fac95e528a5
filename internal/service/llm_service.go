package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"logsearch-gateway/config"
	"logsearch-gateway/internal/apperror"
	"logsearch-gateway/internal/dto"
)

const (
	defaultLLMTimeout = 180 * time.Second
	unparsableAnswer  = "Unable to parse the AI response."

	systemPrompt = "You are a log analysis assistant who quickly diagnoses system errors and performance problems. Keep answers short and clear."
)

type ChatCompletionRequest struct {
	Model       string            `json:"model"`
	Messages    []dto.ChatMessage `json:"messages"`
	Temperature float64           `json:"temperature"`
	MaxTokens   int               `json:"max_tokens"`
	TopP        float64           `json:"top_p"`
}

type ChatCompletionChoice struct {
	Message      dto.ChatMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
	Index        int             `json:"index"`
}

type ChatCompletionResponse struct {
	Choices []ChatCompletionChoice `json:"choices"`
}

type LLMService interface {
	// Complete sends prompt as the user message and returns the model's answer.
	Complete(ctx context.Context, prompt string) (string, error)
}

type openAILLMService struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenAILLMService(cfg *config.Config) (LLMService, error) {
	timeout := cfg.AIAnalyzer.Timeout
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	return &openAILLMService{
		baseURL: cfg.AIAnalyzer.BaseURL,
		apiKey:  cfg.AIAnalyzer.APIKey,
		model:   cfg.AIAnalyzer.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (s *openAILLMService) Complete(ctx context.Context, prompt string) (string, error) {
	requestBody := ChatCompletionRequest{
		Model: s.model,
		Messages: []dto.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
		MaxTokens:   1500,
		TopP:        0.9,
	}
	bodyBytes, err := json.Marshal(requestBody)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal chat completion request body")
		return "", apperror.Internal("failed to marshal request body", err)
	}

	respBodyBytes, err := s.callChatAPI(ctx, bodyBytes)
	if err != nil {
		return "", err
	}

	var chatResp ChatCompletionResponse
	if err := json.Unmarshal(respBodyBytes, &chatResp); err != nil {
		log.Error().Err(err).Bytes("response_body", respBodyBytes).Msg("Failed to unmarshal chat completion response")
		return "", apperror.Backend(fmt.Sprintf("Failed to parse AI response: %v", err), err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		log.Warn().Bytes("response_body", respBodyBytes).Msg("Chat completion response has no message content")
		return unparsableAnswer, nil
	}
	return chatResp.Choices[0].Message.Content, nil
}

func (s *openAILLMService) callChatAPI(ctx context.Context, bodyBytes []byte) ([]byte, error) {
	url := ChatCompletionsURL(s.baseURL)
	log.Debug().Str("url", url).Msg("Calling AI API")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create AI HTTP request")
		return nil, apperror.Internal("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("AI HTTP request failed")
		return nil, apperror.Backend(err.Error(), fmt.Errorf("ai request failed: %w", err))
	}
	defer resp.Body.Close()

	respBodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read AI response body")
		return nil, apperror.Backend(err.Error(), fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status_code", resp.StatusCode).Bytes("response_body", respBodyBytes).Msg("AI API returned non-success status")
		return nil, apperror.Backend(
			fmt.Sprintf("AI API error: %d - %s", resp.StatusCode, string(respBodyBytes)),
			fmt.Errorf("ai API error: status code %d", resp.StatusCode),
		)
	}

	return respBodyBytes, nil
}

// ChatCompletionsURL derives the chat/completions endpoint from a provider
// base URL, which may or may not already carry an API version path.
func ChatCompletionsURL(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	switch {
	case strings.HasSuffix(base, "/api/v1"), strings.HasSuffix(base, "/v1"):
		return base + "/chat/completions"
	default:
		return base + "/v1/chat/completions"
	}
}
