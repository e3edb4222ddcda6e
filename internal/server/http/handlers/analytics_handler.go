package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// AnalyticsHandler serves sales reports and the dashboard.
type AnalyticsHandler struct {
	facade AnalyticsFacade
}

// NewAnalyticsHandler constructs AnalyticsHandler.
func NewAnalyticsHandler(facade AnalyticsFacade) *AnalyticsHandler {
	return &AnalyticsHandler{facade: facade}
}

// Sales handles GET /api/analytics.
func (h *AnalyticsHandler) Sales(c *gin.Context) {
	channel, err := model.ParseOptionalChannel(c.Query("serviceType"))
	if err != nil {
		respondError(c, err)
		return
	}
	period, start, end, report, err := h.facade.SalesAnalytics(c.Request.Context(), c.Query("period"), channel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSalesResponse(period, start, end, report))
}

// Payments handles GET /api/analytics/payments.
func (h *AnalyticsHandler) Payments(c *gin.Context) {
	report, err := h.facade.PaymentAnalytics(c.Request.Context(), c.Query("period"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentsResponse(report))
}

// Dashboard handles GET /api/dashboard/stats.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.facade.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDashboardResponse(stats))
}
