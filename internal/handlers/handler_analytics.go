package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcedi/cedis-tracker/internal/core/domain"
	portssvc "github.com/smartcedi/cedis-tracker/internal/core/ports/services"
	"github.com/smartcedi/cedis-tracker/internal/dto"
	"github.com/smartcedi/cedis-tracker/internal/middleware"
)

// analyticsHandler handles HTTP requests for derived financial views.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{analyticsService: as}
}

// registerAnalyticsRoutes registers routes related to analytics.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/summary", h.summary)
		analytics.GET("/spending", h.spending)
	}
}

// summary godoc
// @Summary Financial summary
// @Description Returns the headline income, expense and balance totals over
// @Description the full ledger.
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.Totals
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *analyticsHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	totals, err := h.analyticsService.Summary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

// spending godoc
// @Summary Spending report
// @Description Returns the time-windowed category, payment method and daily
// @Description trend breakdowns of expense transactions.
// @Tags analytics
// @Produce json
// @Param range query string false "Time range" Enums(7days, 30days, 90days, all) default(30days)
// @Success 200 {object} domain.SpendingReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/spending [get]
func (h *analyticsHandler) spending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SpendingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.analyticsService.Spending(c.Request.Context(), userID, domain.TimeRange(params.Range))
	if err != nil {
		logger.Error("Failed to compute spending report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute spending report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
