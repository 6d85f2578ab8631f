package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zamreal/property-system/internal/core/domain"
	"github.com/zamreal/property-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// parseDate parses the dashboard's YYYY-MM-DD form dates.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
	}
	return d, nil
}

// --- Request → Service input ---

func toPaymentInput(req createPaymentRequest, actor domain.Role) (ports.CreatePaymentInput, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return ports.CreatePaymentInput{}, err
	}
	return ports.CreatePaymentInput{
		Actor:    actor,
		Tenant:   req.Tenant,
		Property: req.Property,
		Amount:   string(req.Amount),
		Method:   req.Method,
		Date:     date,
		Status:   req.Status,
	}, nil
}

func toReminderInput(req createReminderRequest, actor domain.Role) (ports.CreateReminderInput, error) {
	due, err := parseDate(req.DueDate)
	if err != nil {
		return ports.CreateReminderInput{}, err
	}
	return ports.CreateReminderInput{
		Actor:   actor,
		Tenant:  req.Tenant,
		Type:    req.Type,
		DueDate: due,
		Amount:  string(req.Amount),
		Channel: req.Channel,
	}, nil
}

func toTicketInput(req createTicketRequest, actor domain.Role) ports.CreateTicketInput {
	return ports.CreateTicketInput{
		Actor:    actor,
		Property: req.Property,
		Tenant:   req.Tenant,
		Category: req.Category,
		Priority: req.Priority,
		Notes:    req.Notes,
	}
}

// --- Domain → HTTP response ---

func toLeaseResponse(l domain.Lease) leaseResponse {
	return leaseResponse{
		ID:          l.ID,
		Property:    l.Property,
		Tenant:      l.Tenant,
		Landlord:    l.Landlord,
		MonthlyRent: l.MonthlyRent,
		NextReview:  l.NextReview,
		ExpiresOn:   l.ExpiresOn,
		Status:      string(l.Status),
	}
}

func toPaymentResponse(p domain.Payment) paymentResponse {
	return paymentResponse{
		ID:       p.ID,
		Tenant:   p.Tenant,
		Property: p.Property,
		Amount:   p.Amount,
		Method:   p.Method,
		Date:     p.Date,
		Status:   string(p.Status),
	}
}

func toReminderResponse(r domain.Reminder) reminderResponse {
	return reminderResponse{
		ID:      r.ID,
		Tenant:  r.Tenant,
		Type:    string(r.Type),
		DueDate: r.DueDate,
		Amount:  r.Amount,
		Channel: string(r.Channel),
	}
}

func toTicketResponse(t domain.MaintenanceTicket) ticketResponse {
	return ticketResponse{
		ID:        t.ID,
		Property:  t.Property,
		Tenant:    t.Tenant,
		Category:  t.Category,
		Priority:  string(t.Priority),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		Notes:     t.Notes,
	}
}

func toSummaryResponse(s ports.DashboardSummary) summaryResponse {
	return summaryResponse{
		TotalUnits:         s.TotalUnits,
		Occupied:           s.Occupied,
		OccupancyRate:      s.OccupancyRate,
		ArrearsZMW:         s.ArrearsZMW,
		MaintenanceBacklog: s.MaintenanceBacklog,
	}
}

func toLeaseResponses(leases []domain.Lease) []leaseResponse {
	out := make([]leaseResponse, 0, len(leases))
	for _, l := range leases {
		out = append(out, toLeaseResponse(l))
	}
	return out
}

func toPaymentResponses(payments []domain.Payment) []paymentResponse {
	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out
}

func toReminderResponses(reminders []domain.Reminder) []reminderResponse {
	out := make([]reminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, toReminderResponse(r))
	}
	return out
}

func toTicketResponses(tickets []domain.MaintenanceTicket) []ticketResponse {
	out := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	return out
}
