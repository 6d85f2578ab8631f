package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/zamreal/property-system/internal/core/domain"
	"github.com/zamreal/property-system/internal/core/ports"
)

// Actionable rent-review radar window, in days relative to now.
const (
	radarDaysBefore = 30
	radarDaysAfter  = 90
)

// PortfolioFigures are the configuration-level occupancy and arrears
// numbers shown on the dashboard. They are deliberately not derived from
// the lease or payment collections; only the maintenance backlog is
// ledger-derived.
type PortfolioFigures struct {
	TotalUnits int
	Occupied   int
	ArrearsZMW float64
}

// AnalyticsService computes dashboard views from ledger snapshots. It holds
// no state beyond its inputs; every method reads a fresh snapshot.
type AnalyticsService struct {
	ledger  ports.LedgerReader
	figures PortfolioFigures
	clock   ports.Clock
}

func NewAnalyticsService(ledger ports.LedgerReader, figures PortfolioFigures, clock ports.Clock) *AnalyticsService {
	if clock == nil {
		clock = ports.SystemClock()
	}
	return &AnalyticsService{ledger: ledger, figures: figures, clock: clock}
}

// Summary returns the headline dashboard figures. MaintenanceBacklog counts
// tickets not yet resolved.
func (s *AnalyticsService) Summary(_ context.Context) ports.DashboardSummary {
	backlog := 0
	for _, t := range s.ledger.MaintenanceTickets() {
		if t.Status != domain.TicketResolved {
			backlog++
		}
	}
	return ports.DashboardSummary{
		TotalUnits:         s.figures.TotalUnits,
		Occupied:           s.figures.Occupied,
		OccupancyRate:      OccupancyRate(s.figures.Occupied, s.figures.TotalUnits),
		ArrearsZMW:         s.figures.ArrearsZMW,
		MaintenanceBacklog: backlog,
	}
}

// UpcomingReviews returns leases whose next review is today or later,
// soonest first, capped at limit.
func (s *AnalyticsService) UpcomingReviews(limit int) []domain.Lease {
	return UpcomingReviews(s.ledger.Leases(), s.clock.Now(), limit)
}

// ReviewRadar returns leases needing rent-review attention: next review
// between 30 days ago and 90 days ahead, soonest first.
func (s *AnalyticsService) ReviewRadar() []domain.Lease {
	now := s.clock.Now()
	return ReviewsWithin(s.ledger.Leases(), now,
		radarDaysBefore*24*time.Hour, radarDaysAfter*24*time.Hour)
}

// MaintenanceQueue returns tickets by priority rank, stable on ties, capped
// at limit.
func (s *AnalyticsService) MaintenanceQueue(limit int) []domain.MaintenanceTicket {
	return capSlice(PriorityQueue(s.ledger.MaintenanceTickets()), limit)
}

func (s *AnalyticsService) RecentPayments(limit int) []domain.Payment {
	return capSlice(s.ledger.Payments(), limit)
}

func (s *AnalyticsService) RecentReminders(limit int) []domain.Reminder {
	return capSlice(s.ledger.Reminders(), limit)
}

// OccupancyRate is occupied over total as a rounded percentage, 0 when
// there are no units.
func OccupancyRate(occupied, totalUnits int) int {
	if totalUnits == 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(totalUnits) * 100))
}

// ReviewsWithin returns the leases whose next review falls inside
// [now-before, now+after], ascending by review date. The window is a
// parameter so call sites can choose their own horizon.
func ReviewsWithin(leases []domain.Lease, now time.Time, before, after time.Duration) []domain.Lease {
	lo := now.Add(-before)
	hi := now.Add(after)
	var out []domain.Lease
	for _, l := range leases {
		if l.NextReview.Before(lo) || l.NextReview.After(hi) {
			continue
		}
		out = append(out, l)
	}
	sortByReview(out)
	return out
}

// UpcomingReviews returns leases with a review at or after now, soonest
// first, capped at limit (limit <= 0 means no cap).
func UpcomingReviews(leases []domain.Lease, now time.Time, limit int) []domain.Lease {
	var out []domain.Lease
	for _, l := range leases {
		if l.NextReview.Before(now) {
			continue
		}
		out = append(out, l)
	}
	sortByReview(out)
	return capSlice(out, limit)
}

// PriorityQueue returns a copy of tickets stable-sorted by priority rank
// (High, Medium, Low); tickets sharing a rank keep their relative order.
func PriorityQueue(tickets []domain.MaintenanceTicket) []domain.MaintenanceTicket {
	out := append([]domain.MaintenanceTicket(nil), tickets...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

func sortByReview(leases []domain.Lease) {
	sort.SliceStable(leases, func(i, j int) bool {
		return leases[i].NextReview.Before(leases[j].NextReview)
	})
}

func capSlice[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
