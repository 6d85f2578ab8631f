package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zamreal/property-system/internal/core/domain"
	"github.com/zamreal/property-system/internal/core/ledger"
	"github.com/zamreal/property-system/internal/core/ports"
	"github.com/zamreal/property-system/internal/core/service"
)

func newDashboardHandler(store *ledger.Ledger, now time.Time) *DashboardHandler {
	clock := ports.ClockFunc(func() time.Time { return now })
	analytics := service.NewAnalyticsService(store, service.PortfolioFigures{TotalUnits: 42, Occupied: 38, ArrearsZMW: 72000}, clock)
	return NewDashboardHandler(analytics)
}

func TestSummary(t *testing.T) {
	h := newDashboardHandler(ledger.New(), time.Now())
	c, rec := newLedgerContext(t, http.MethodGet, "/dashboard/summary", "", "manager")

	if err := h.Summary(c); err != nil {
		t.Fatalf("summary: %v", err)
	}
	var got summaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalUnits != 42 || got.Occupied != 38 || got.OccupancyRate != 90 {
		t.Fatalf("unexpected summary: %+v", got)
	}
	if got.ArrearsZMW != 72000 {
		t.Fatalf("unexpected arrears: %v", got.ArrearsZMW)
	}
	// Seeded tickets are all unresolved.
	if got.MaintenanceBacklog != 3 {
		t.Fatalf("expected backlog 3, got %d", got.MaintenanceBacklog)
	}
}

func TestSummary_MissingClaims(t *testing.T) {
	h := newDashboardHandler(ledger.New(), time.Now())
	c, _ := newLedgerContext(t, http.MethodGet, "/dashboard/summary", "", "")

	err := h.Summary(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestOverview_PanelLimits(t *testing.T) {
	store := ledger.NewEmpty()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 6; i++ {
		if _, err := store.InsertPayment(domain.Payment{
			Tenant: "T", Property: "P", Amount: 100, Method: "Cash",
			Date: now, Status: domain.PaymentConfirmed,
		}); err != nil {
			t.Fatalf("seed payment: %v", err)
		}
		if _, err := store.InsertReminder(domain.Reminder{
			Tenant: "T", Type: domain.ReminderInvoice, DueDate: now,
			Amount: 100, Channel: domain.ChannelSMS,
		}); err != nil {
			t.Fatalf("seed reminder: %v", err)
		}
		if _, err := store.InsertMaintenanceTicket(domain.MaintenanceTicket{
			Property: "P", Tenant: "T", Category: "General",
			Priority: domain.PriorityMedium, Status: domain.TicketNew, CreatedAt: now,
		}); err != nil {
			t.Fatalf("seed ticket: %v", err)
		}
	}

	h := newDashboardHandler(store, now)
	c, rec := newLedgerContext(t, http.MethodGet, "/dashboard/overview", "", "admin")

	if err := h.Overview(c); err != nil {
		t.Fatalf("overview: %v", err)
	}
	var got overviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.RecentPayments) != 4 {
		t.Fatalf("expected 4 payments in preview, got %d", len(got.RecentPayments))
	}
	if len(got.RentReminders) != 4 {
		t.Fatalf("expected 4 reminders in preview, got %d", len(got.RentReminders))
	}
	if len(got.MaintenanceQueue) != 5 {
		t.Fatalf("expected 5 tickets in preview, got %d", len(got.MaintenanceQueue))
	}
	if got.Summary.MaintenanceBacklog != 6 {
		t.Fatalf("expected backlog 6, got %d", got.Summary.MaintenanceBacklog)
	}
}

func TestOverview_UpcomingReviewsWindow(t *testing.T) {
	// Seeded reviews are fixed dates; pick a now that puts two of the three
	// leases ahead of it.
	now := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	store := ledger.New()
	leases := store.Leases()
	ahead := 0
	for _, l := range leases {
		if !l.NextReview.Before(now) {
			ahead++
		}
	}

	h := newDashboardHandler(store, now)
	c, rec := newLedgerContext(t, http.MethodGet, "/dashboard/overview", "", "admin")
	if err := h.Overview(c); err != nil {
		t.Fatalf("overview: %v", err)
	}
	var got overviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.UpcomingReviews) != ahead {
		t.Fatalf("expected %d upcoming reviews, got %d", ahead, len(got.UpcomingReviews))
	}
	for i := 1; i < len(got.UpcomingReviews); i++ {
		if got.UpcomingReviews[i-1].NextReview.After(got.UpcomingReviews[i].NextReview) {
			t.Fatalf("upcoming reviews out of order: %+v", got.UpcomingReviews)
		}
	}
}
