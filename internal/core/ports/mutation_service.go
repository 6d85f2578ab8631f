package ports

import (
	"context"
	"time"

	"github.com/zamreal/property-system/internal/core/domain"
)

// CreatePaymentInput carries a rent payment submission. Amount is kept as
// the raw string the dashboard form submits; the service coerces it.
type CreatePaymentInput struct {
	Actor    domain.Role
	Tenant   string
	Property string
	Amount   string
	Method   string
	Date     time.Time
	// Status is optional; anything other than an explicit Confirmed
	// defaults to Pending.
	Status string
}

// CreateReminderInput carries a rent reminder or invoice submission.
type CreateReminderInput struct {
	Actor   domain.Role
	Tenant  string
	Type    string
	DueDate time.Time
	Amount  string
	Channel string
}

// CreateTicketInput carries a maintenance fault report.
type CreateTicketInput struct {
	Actor    domain.Role
	Property string
	Tenant   string
	Category string
	Priority string
	Notes    string
}

// MutationService is the validated write path into the ledger. Every entry
// point checks the actor's role, validates before any ledger mutation, and
// commits atomically: either the full entity becomes visible with a unique
// id, or nothing is committed.
type MutationService interface {
	CreatePayment(ctx context.Context, in CreatePaymentInput) (*domain.Payment, error)
	CreateReminder(ctx context.Context, in CreateReminderInput) (*domain.Reminder, error)
	CreateMaintenanceTicket(ctx context.Context, in CreateTicketInput) (*domain.MaintenanceTicket, error)
}
