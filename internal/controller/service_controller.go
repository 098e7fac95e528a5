package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logsearch-gateway/internal/dto"
	"logsearch-gateway/internal/service"
)

// searchableFields is the static field list offered to clients for filters.
var searchableFields = []string{
	"timestamp",
	"message",
	"level",
	"service",
	"host",
	"env",
	"trace_id",
	"span_id",
	"source_file",
	"line_number",
}

type ServiceController struct {
	catalogService service.ServiceCatalogService
}

func NewServiceController(catalogService service.ServiceCatalogService) *ServiceController {
	return &ServiceController{
		catalogService: catalogService,
	}
}

func RegisterServiceRoutes(router *gin.Engine, controller *ServiceController) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/services", controller.ListServices)
		v1.GET("/fields", controller.ListFields)
	}
}

// ListServices godoc
// @Summary      List services
// @Description  Returns the distinct service names seen in the last 24 hours, sorted.
// @Tags         logs
// @Produce      json
// @Success      200  {object}  dto.ServiceListResponse "Service names"
// @Failure      500  {object}  model.Response          "Backend response could not be parsed"
// @Failure      502  {object}  model.Response          "Search backend failed"
// @Router       /api/v1/services [get]
func (c *ServiceController) ListServices(ctx *gin.Context) {
	services, err := c.catalogService.ListServices(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ServiceListResponse{Services: services})
}

// ListFields godoc
// @Summary      List searchable fields
// @Tags         logs
// @Produce      json
// @Success      200  {object}  dto.FieldListResponse
// @Router       /api/v1/fields [get]
func (c *ServiceController) ListFields(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.FieldListResponse{Fields: searchableFields})
}
