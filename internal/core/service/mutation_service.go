package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/zamreal/property-system/internal/core/domain"
	"github.com/zamreal/property-system/internal/core/ports"
)

// MutationService is the validated write path into the ledger. Every create
// checks the actor's role and validates its input before touching the
// ledger; the ledger insert itself is atomic, so a cancelled or failed call
// leaves the collection exactly as it was.
type MutationService struct {
	ledger ports.LedgerWriter
	clock  ports.Clock
	// delay models upstream processing latency. It is injected (zero in
	// production) and observed before the ledger lock is taken, never
	// while holding it.
	delay time.Duration
	log   zerolog.Logger
}

func NewMutationService(ledger ports.LedgerWriter, clock ports.Clock, delay time.Duration, log zerolog.Logger) *MutationService {
	if clock == nil {
		clock = ports.SystemClock()
	}
	return &MutationService{ledger: ledger, clock: clock, delay: delay, log: log}
}

// CreatePayment records a rent payment. Status defaults to Pending unless
// the caller explicitly supplies Confirmed.
func (s *MutationService) CreatePayment(ctx context.Context, in ports.CreatePaymentInput) (*domain.Payment, error) {
	if !in.Actor.CanManageCashflow() {
		return nil, domain.ErrRoleNotPermitted
	}
	if in.Tenant == "" || in.Property == "" || in.Method == "" || in.Date.IsZero() {
		return nil, domain.ErrMissingField
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	status := domain.PaymentPending
	if domain.PaymentStatus(in.Status) == domain.PaymentConfirmed {
		status = domain.PaymentConfirmed
	}

	if err := s.pause(ctx); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	committed, err := s.ledger.InsertPayment(domain.Payment{
		Tenant:   in.Tenant,
		Property: in.Property,
		Amount:   amount,
		Method:   in.Method,
		Date:     in.Date,
		Status:   status,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("id", committed.ID).
		Str("tenant", committed.Tenant).
		Float64("amount", committed.Amount).
		Msg("payment recorded")
	return &committed, nil
}

// CreateReminder queues a rent reminder or invoice.
func (s *MutationService) CreateReminder(ctx context.Context, in ports.CreateReminderInput) (*domain.Reminder, error) {
	if !in.Actor.CanManageCashflow() {
		return nil, domain.ErrRoleNotPermitted
	}
	if in.Tenant == "" || in.Type == "" || in.Channel == "" || in.DueDate.IsZero() {
		return nil, domain.ErrMissingField
	}

	kind := domain.ReminderType(in.Type)
	if kind != domain.ReminderInvoice && kind != domain.ReminderReminder {
		return nil, fmt.Errorf("%w: unknown reminder type %q", domain.ErrValidation, in.Type)
	}
	channel := domain.ReminderChannel(in.Channel)
	if channel != domain.ChannelSMS && channel != domain.ChannelEmail && channel != domain.ChannelWhatsApp {
		return nil, fmt.Errorf("%w: unknown reminder channel %q", domain.ErrValidation, in.Channel)
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.pause(ctx); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}

	committed, err := s.ledger.InsertReminder(domain.Reminder{
		Tenant:  in.Tenant,
		Type:    kind,
		DueDate: in.DueDate,
		Amount:  amount,
		Channel: channel,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("id", committed.ID).
		Str("tenant", committed.Tenant).
		Str("channel", string(committed.Channel)).
		Msg("reminder created")
	return &committed, nil
}

// CreateMaintenanceTicket logs a fault report. Any authenticated role may
// file one; status defaults to New and createdAt comes from the injected
// clock.
func (s *MutationService) CreateMaintenanceTicket(ctx context.Context, in ports.CreateTicketInput) (*domain.MaintenanceTicket, error) {
	if !in.Actor.Valid() {
		return nil, domain.ErrRoleNotPermitted
	}
	if in.Property == "" || in.Tenant == "" || in.Category == "" || in.Priority == "" {
		return nil, domain.ErrMissingField
	}
	priority := domain.TicketPriority(in.Priority)
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, in.Priority)
	}

	if err := s.pause(ctx); err != nil {
		return nil, fmt.Errorf("create maintenance ticket: %w", err)
	}

	committed, err := s.ledger.InsertMaintenanceTicket(domain.MaintenanceTicket{
		Property:  in.Property,
		Tenant:    in.Tenant,
		Category:  in.Category,
		Priority:  priority,
		Status:    domain.TicketNew,
		CreatedAt: s.clock.Now(),
		Notes:     in.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("id", committed.ID).
		Str("property", committed.Property).
		Str("priority", string(committed.Priority)).
		Msg("maintenance ticket logged")
	return &committed, nil
}

// pause observes the injected latency and the caller's cancellation before
// the commit step. A cancellation here leaves the ledger in its pre-call
// state; once pause returns nil the insert proceeds to completion.
func (s *MutationService) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// parseAmount coerces the submitted amount to a non-negative number.
func parseAmount(raw string) (float64, error) {
	if raw == "" {
		return 0, domain.ErrMissingField
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		return 0, domain.ErrInvalidAmount
	}
	return amount, nil
}
