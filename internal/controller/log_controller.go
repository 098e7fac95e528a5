package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logsearch-gateway/internal/apperror"
	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/service"
)

type LogController struct {
	logQueryService service.LogQueryService
}

func NewLogController(logQueryService service.LogQueryService) *LogController {
	return &LogController{
		logQueryService: logQueryService,
	}
}

func RegisterLogRoutes(router *gin.Engine, controller *LogController) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/search", controller.SearchLogs)
	}
}

// SearchLogs godoc
// @Summary      Search logs
// @Description  Runs a full-text log search over a relative or absolute time range. Filters are ANDed into the query. Supports pagination and sorting.
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        request body      dto.SearchRequest  true  "Search request"
// @Success      200     {object}  dto.SearchResponse "Page of matching logs"
// @Failure      400     {object}  model.Response     "Invalid search request"
// @Failure      500     {object}  model.Response     "Backend response could not be parsed"
// @Failure      502     {object}  model.Response     "Search backend failed"
// @Router       /api/v1/search [post]
func (c *LogController) SearchLogs(ctx *gin.Context) {
	req := dto.NewSearchRequest()
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperror.Validation("Invalid request body: "+err.Error()))
		return
	}

	result, err := c.logQueryService.SearchLogs(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
