package ports

import (
	"context"

	"github.com/zamreal/property-system/internal/core/domain"
)

// DashboardSummary is the headline card row of the dashboard. The unit and
// arrears figures are configuration-level; MaintenanceBacklog is always
// derived from the ledger.
type DashboardSummary struct {
	TotalUnits         int
	Occupied           int
	OccupancyRate      int
	ArrearsZMW         float64
	MaintenanceBacklog int
}

// AnalyticsService computes derived views over ledger snapshots. All
// methods are read-only and safe to call concurrently with writes.
type AnalyticsService interface {
	Summary(ctx context.Context) DashboardSummary

	// UpcomingReviews returns leases whose next rent review is today or
	// later, soonest first, capped at limit (limit <= 0 means no cap).
	UpcomingReviews(limit int) []domain.Lease

	// ReviewRadar returns leases whose next review falls in the actionable
	// window (30 days back to 90 days ahead), soonest first, uncapped.
	ReviewRadar() []domain.Lease

	// MaintenanceQueue returns tickets ordered by priority rank, stable on
	// ties, capped at limit (limit <= 0 means no cap).
	MaintenanceQueue(limit int) []domain.MaintenanceTicket

	// RecentPayments and RecentReminders return the newest entries for the
	// dashboard side panels.
	RecentPayments(limit int) []domain.Payment
	RecentReminders(limit int) []domain.Reminder
}
