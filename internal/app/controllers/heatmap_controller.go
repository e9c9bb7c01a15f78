package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahatanar/StudentSpace/internal/app/models/dto"
	"github.com/ahatanar/StudentSpace/internal/app/services"
	"github.com/ahatanar/StudentSpace/internal/middleware"
)

// HeatmapController handles classroom-usage heatmap operations
type HeatmapController struct {
	heatmapService services.HeatmapService
}

// NewHeatmapController creates a new HeatmapController
func NewHeatmapController(heatmapService services.HeatmapService) *HeatmapController {
	return &HeatmapController{
		heatmapService: heatmapService,
	}
}

// GetHeatmap builds the weekly classroom usage heatmap for a term
// @Summary Get the classroom usage heatmap
// @Description Aggregates every in-person course meeting of the requested term into a Monday-Friday occupancy grid at the requested slot interval
// @Tags heatmap
// @Accept json
// @Produce json
// @Param term query string false "Term identifier (default from configuration)" example(202601)
// @Param interval query int false "Slot width in minutes, 1-1440" default(30)
// @Param campus query string false "Campus name substring match (default from configuration)" example(Oshawa)
// @Param include_hybrid query bool false "Keep hybrid (in-person plus online) sections" default(true)
// @Param include_raw query bool false "Return the filtered section records instead of just their count" default(false)
// @Success 200 {object} dto.APIResponse{data=dto.HeatmapResponse} "Heatmap computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} dto.ErrorResponse "No dataset for the requested term"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /heatmap [get]
func (c *HeatmapController) GetHeatmap(ctx *gin.Context) {
	var query dto.HeatmapQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if errorDetail := middleware.ValidateQueryStruct(&query); errorDetail != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.heatmapService.BuildHeatmap(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// ListTerms returns the catalog of available term datasets
// @Summary List available terms
// @Description Lists every term with a stored section dataset, including section counts and fetch times
// @Tags heatmap
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.TermListResponse} "Terms retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /heatmap/terms [get]
func (c *HeatmapController) ListTerms(ctx *gin.Context) {
	terms, err := c.heatmapService.ListTerms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.TermListResponse{Terms: terms},
		Timestamp: time.Now(),
	})
}

// Health reports service and dataset-source health
// @Summary Health check
// @Description Reports whether the service and its dataset source are reachable
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse "Service healthy"
// @Failure 503 {object} dto.ErrorResponse "Dataset source unreachable"
// @Router /health [get]
func (c *HeatmapController) Health(ctx *gin.Context) {
	if err := c.heatmapService.Ping(ctx); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Dataset source unreachable")
		errorDetail = errorDetail.WithSeverity(dto.ErrorSeverityCritical)
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"status": "healthy"},
		Timestamp: time.Now(),
	})
}
