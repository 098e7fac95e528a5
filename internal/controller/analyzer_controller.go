package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logsearch-gateway/internal/apperror"
	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/service"
)

type AnalyzerController struct {
	analyzerService service.AnalyzerService
}

func NewAnalyzerController(analyzerService service.AnalyzerService) *AnalyzerController {
	return &AnalyzerController{
		analyzerService: analyzerService,
	}
}

func RegisterAnalyzerRoutes(router *gin.Engine, controller *AnalyzerController) {
	v1 := router.Group("/api/v1/ai")
	{
		v1.POST("/analyze", controller.AnalyzeTrace)
	}
}

// AnalyzeTrace godoc
// @Summary      Analyze the error logs of a trace
// @Description  Collects the ERROR logs of a trace from the last 24 hours and asks the configured LLM for a short diagnosis.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request body      dto.AnalyzeRequest  true  "Trace to analyze"
// @Success      200     {object}  dto.AnalyzeResponse "Analysis text"
// @Failure      400     {object}  model.Response      "Missing trace_id"
// @Failure      502     {object}  model.Response      "Search backend or AI endpoint failed"
// @Router       /api/v1/ai/analyze [post]
func (c *AnalyzerController) AnalyzeTrace(ctx *gin.Context) {
	var req dto.AnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperror.Validation("Invalid request body: "+err.Error()))
		return
	}

	resp, err := c.analyzerService.AnalyzeTrace(ctx.Request.Context(), req.TraceID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
