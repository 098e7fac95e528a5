package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logsearch-gateway/internal/dto"
)

// BackendStatusReader reports the last observed backend liveness.
type BackendStatusReader interface {
	Status() string
}

type HealthController struct {
	backend BackendStatusReader
}

func NewHealthController(backend BackendStatusReader) *HealthController {
	return &HealthController{
		backend: backend,
	}
}

func RegisterHealthRoutes(router *gin.Engine, controller *HealthController) {
	router.GET("/health", controller.Health)
}

// Health godoc
// @Summary      Health check
// @Description  Always 200 while the gateway is serving; backend reports the last liveness probe result.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Backend: c.backend.Status(),
	})
}
