package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zamreal/property-system/internal/core/domain"
	"github.com/zamreal/property-system/internal/core/ledger"
	"github.com/zamreal/property-system/internal/core/ports"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() ports.Clock {
	return ports.ClockFunc(func() time.Time { return fixedNow })
}

func newTestMutationService(store *ledger.Ledger, delay time.Duration) *MutationService {
	return NewMutationService(store, fixedClock(), delay, zerolog.Nop())
}

func paymentInput() ports.CreatePaymentInput {
	return ports.CreatePaymentInput{
		Actor:    domain.RoleManager,
		Tenant:   "John Mwansa",
		Property: "Plot 12, Kabulonga",
		Amount:   "4500",
		Method:   "Mobile Money",
		Date:     fixedNow,
	}
}

func TestCreatePayment_DefaultsToPending(t *testing.T) {
	store := ledger.NewEmpty()
	svc := newTestMutationService(store, 0)

	p, err := svc.CreatePayment(context.Background(), paymentInput())
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if p.Status != domain.PaymentPending {
		t.Fatalf("expected Pending default, got %s", p.Status)
	}
	if !strings.HasPrefix(p.ID, "PM-") {
		t.Fatalf("unexpected id %q", p.ID)
	}
	if p.Amount != 4500 {
		t.Fatalf("amount not coerced: %v", p.Amount)
	}
	if got := store.Payments(); len(got) != 1 || got[0].ID != p.ID {
		t.Fatalf("payment not committed to the ledger: %+v", got)
	}
}

func TestCreatePayment_ExplicitConfirmed(t *testing.T) {
	svc := newTestMutationService(ledger.NewEmpty(), 0)

	in := paymentInput()
	in.Status = "Confirmed"
	p, err := svc.CreatePayment(context.Background(), in)
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if p.Status != domain.PaymentConfirmed {
		t.Fatalf("expected Confirmed, got %s", p.Status)
	}
}

func TestCreatePayment_RoleDenied(t *testing.T) {
	store := ledger.NewEmpty()
	svc := newTestMutationService(store, 0)

	for _, role := range []domain.Role{domain.RoleTenant, domain.RoleLandlord, domain.RoleMaintenance, ""} {
		in := paymentInput()
		in.Actor = role
		if _, err := svc.CreatePayment(context.Background(), in); err != domain.ErrRoleNotPermitted {
			t.Errorf("role %q: expected ErrRoleNotPermitted, got %v", role, err)
		}
	}
	if got := store.Payments(); len(got) != 0 {
		t.Fatalf("denied calls mutated the ledger: %+v", got)
	}
}

func TestCreatePayment_MissingFields(t *testing.T) {
	svc := newTestMutationService(ledger.NewEmpty(), 0)

	mutations := []func(*ports.CreatePaymentInput){
		func(in *ports.CreatePaymentInput) { in.Tenant = "" },
		func(in *ports.CreatePaymentInput) { in.Property = "" },
		func(in *ports.CreatePaymentInput) { in.Method = "" },
		func(in *ports.CreatePaymentInput) { in.Date = time.Time{} },
		func(in *ports.CreatePaymentInput) { in.Amount = "" },
	}
	for i, mutate := range mutations {
		in := paymentInput()
		mutate(&in)
		if _, err := svc.CreatePayment(context.Background(), in); !errors.Is(err, domain.ErrMissingField) {
			t.Errorf("case %d: expected ErrMissingField, got %v", i, err)
		}
	}
}

func TestCreatePayment_InvalidAmount(t *testing.T) {
	store := ledger.NewEmpty()
	svc := newTestMutationService(store, 0)

	for _, amount := range []string{"not-a-number", "-50", "12,000"} {
		in := paymentInput()
		in.Amount = amount
		_, err := svc.CreatePayment(context.Background(), in)
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("amount %q: expected ErrInvalidAmount, got %v", amount, err)
		}
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("amount %q: error should carry the validation sentinel", amount)
		}
	}
	if got := store.Payments(); len(got) != 0 {
		t.Fatalf("rejected amounts mutated the ledger: %+v", got)
	}
}

func TestCreatePayment_CancelledDuringDelay(t *testing.T) {
	store := ledger.NewEmpty()
	svc := newTestMutationService(store, 250*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.CreatePayment(ctx, paymentInput())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if got := store.Payments(); len(got) != 0 {
		t.Fatalf("cancelled call mutated the ledger: %+v", got)
	}
}

func TestCreatePayment_ConcurrentDistinctIDs(t *testing.T) {
	store := ledger.NewEmpty()
	svc := newTestMutationService(store, 0)

	const n = 25
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.CreatePayment(context.Background(), paymentInput()); err != nil {
				t.Errorf("create payment failed: %v", err)
			}
		}()
	}
	wg.Wait()

	seen := make(map[string]struct{})
	for _, p := range store.Payments() {
		seen[p.ID] = struct{}{}
	}
	if len(seen) != n {
		t.Fatalf("expected %d distinct ids, got %d", n, len(seen))
	}
}

func TestCreateReminder(t *testing.T) {
	store := ledger.NewEmpty()
	svc := newTestMutationService(store, 0)

	r, err := svc.CreateReminder(context.Background(), ports.CreateReminderInput{
		Actor:   domain.RoleAdmin,
		Tenant:  "Grace Phiri",
		Type:    "Invoice",
		DueDate: fixedNow.AddDate(0, 0, 7),
		Amount:  "3200.50",
		Channel: "WhatsApp",
	})
	if err != nil {
		t.Fatalf("create reminder failed: %v", err)
	}
	if !strings.HasPrefix(r.ID, "RM-") {
		t.Fatalf("unexpected id %q", r.ID)
	}
	if r.Type != domain.ReminderInvoice || r.Channel != domain.ChannelWhatsApp {
		t.Fatalf("unexpected reminder: %+v", r)
	}
	if r.Amount != 3200.50 {
		t.Fatalf("amount not coerced: %v", r.Amount)
	}
}

func TestCreateReminder_UnknownTypeAndChannel(t *testing.T) {
	svc := newTestMutationService(ledger.NewEmpty(), 0)

	base := ports.CreateReminderInput{
		Actor:   domain.RoleManager,
		Tenant:  "Grace Phiri",
		Type:    "Invoice",
		DueDate: fixedNow,
		Amount:  "100",
		Channel: "SMS",
	}

	in := base
	in.Type = "Fax"
	if _, err := svc.CreateReminder(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("unknown type: expected validation error, got %v", err)
	}

	in = base
	in.Channel = "Pigeon"
	if _, err := svc.CreateReminder(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("unknown channel: expected validation error, got %v", err)
	}
}

func TestCreateReminder_RoleDenied(t *testing.T) {
	svc := newTestMutationService(ledger.NewEmpty(), 0)

	_, err := svc.CreateReminder(context.Background(), ports.CreateReminderInput{
		Actor:   domain.RoleTenant,
		Tenant:  "Grace Phiri",
		Type:    "Reminder",
		DueDate: fixedNow,
		Amount:  "100",
		Channel: "Email",
	})
	if err != domain.ErrRoleNotPermitted {
		t.Fatalf("expected ErrRoleNotPermitted, got %v", err)
	}
}

func TestCreateMaintenanceTicket(t *testing.T) {
	store := ledger.NewEmpty()
	svc := newTestMutationService(store, 0)

	tk, err := svc.CreateMaintenanceTicket(context.Background(), ports.CreateTicketInput{
		Actor:    domain.RoleTenant,
		Property: "Flat 3B, Northmead",
		Tenant:   "Bwalya Musonda",
		Category: "Plumbing",
		Priority: "High",
		Notes:    "Burst pipe in the kitchen",
	})
	if err != nil {
		t.Fatalf("create ticket failed: %v", err)
	}
	if !strings.HasPrefix(tk.ID, "MT-") {
		t.Fatalf("unexpected id %q", tk.ID)
	}
	if tk.Status != domain.TicketNew {
		t.Fatalf("expected New status, got %s", tk.Status)
	}
	if !tk.CreatedAt.Equal(fixedNow) {
		t.Fatalf("createdAt not taken from the clock: %v", tk.CreatedAt)
	}
}

func TestCreateMaintenanceTicket_Validation(t *testing.T) {
	svc := newTestMutationService(ledger.NewEmpty(), 0)

	base := ports.CreateTicketInput{
		Actor:    domain.RoleMaintenance,
		Property: "Flat 3B, Northmead",
		Tenant:   "Bwalya Musonda",
		Category: "Electrical",
		Priority: "Medium",
	}

	in := base
	in.Actor = "superuser"
	if _, err := svc.CreateMaintenanceTicket(context.Background(), in); err != domain.ErrRoleNotPermitted {
		t.Fatalf("unknown role: expected ErrRoleNotPermitted, got %v", err)
	}

	in = base
	in.Category = ""
	if _, err := svc.CreateMaintenanceTicket(context.Background(), in); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("missing category: expected ErrMissingField, got %v", err)
	}

	in = base
	in.Priority = "Urgent"
	if _, err := svc.CreateMaintenanceTicket(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("unknown priority: expected validation error, got %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw     string
		want    float64
		wantErr error
	}{
		{"4500", 4500, nil},
		{"3200.50", 3200.50, nil},
		{"0", 0, nil},
		{"", 0, domain.ErrMissingField},
		{"abc", 0, domain.ErrInvalidAmount},
		{"-1", 0, domain.ErrInvalidAmount},
	}
	for _, tc := range cases {
		got, err := parseAmount(tc.raw)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("parseAmount(%q): expected %v, got %v", tc.raw, tc.wantErr, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("parseAmount(%q) = %v, %v; want %v", tc.raw, got, err, tc.want)
		}
	}
}
