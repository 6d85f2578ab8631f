package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zamreal/property-system/internal/core/ports"
)

// Preview sizes for the landing dashboard panels.
const (
	reviewPreviewLimit  = 5
	ticketPreviewLimit  = 5
	paymentPreviewLimit = 4
)

type DashboardHandler struct {
	analytics ports.AnalyticsService
}

func NewDashboardHandler(analytics ports.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// Summary returns the headline figures.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  summaryResponse
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	if _, err := ctxRole(c); err != nil {
		return err
	}
	s := h.analytics.Summary(c.Request().Context())
	return c.JSON(http.StatusOK, toSummaryResponse(s))
}

// Overview returns the summary cards plus the preview panels in one payload.
//
// @Summary      Dashboard overview
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  overviewResponse
// @Router       /dashboard/overview [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	if _, err := ctxRole(c); err != nil {
		return err
	}
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, overviewResponse{
		Summary:          toSummaryResponse(h.analytics.Summary(ctx)),
		UpcomingReviews:  toLeaseResponses(h.analytics.UpcomingReviews(reviewPreviewLimit)),
		RecentPayments:   toPaymentResponses(h.analytics.RecentPayments(paymentPreviewLimit)),
		RentReminders:    toReminderResponses(h.analytics.RecentReminders(paymentPreviewLimit)),
		MaintenanceQueue: toTicketResponses(h.analytics.MaintenanceQueue(ticketPreviewLimit)),
	})
}
