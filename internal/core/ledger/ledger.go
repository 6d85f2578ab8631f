// Package ledger implements the in-memory operational store backing the
// dashboard: leases, payments, rent reminders, and maintenance tickets.
//
// Each collection is independent and single-writer: inserts serialize on a
// per-collection mutex held only for the generate-id-and-prepend step, and
// reads return snapshot copies so an in-flight iteration never observes a
// concurrent insert.
package ledger

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/zamreal/property-system/internal/core/domain"
)

// Identifier prefixes, one per collection.
const (
	LeasePrefix    = "LS-"
	PaymentPrefix  = "PM-"
	ReminderPrefix = "RM-"
	TicketPrefix   = "MT-"
)

// maxIDAttempts bounds the collision-retry loop. Exhaustion surfaces as
// domain.ErrIDGenerationExhausted rather than a silently duplicated id.
const maxIDAttempts = 8

// idSuffix generates the numeric part of an identifier. Package variable so
// tests can pin it to force collisions.
var idSuffix = randomSuffix

// randomSuffix returns a 4-digit suffix in [1000, 9999], matching the
// identifier scheme of the seeded data.
func randomSuffix() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%04d", 1000+time.Now().UnixNano()%9000)
	}
	return fmt.Sprintf("%04d", 1000+binary.BigEndian.Uint64(b[:])%9000)
}

// collection is an ordered, most-recent-first store of one entity kind.
type collection[T any] struct {
	mu     sync.RWMutex
	prefix string
	items  []T
	ids    map[string]struct{}
}

func newCollection[T any](prefix string, seed []T, idOf func(T) string) *collection[T] {
	c := &collection[T]{
		prefix: prefix,
		items:  append([]T(nil), seed...),
		ids:    make(map[string]struct{}, len(seed)),
	}
	for _, item := range seed {
		c.ids[idOf(item)] = struct{}{}
	}
	return c
}

// snapshot returns an independent copy of the collection, newest first.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// insert assigns a fresh identifier unique within the collection and
// prepends the built entity. The build callback receives the id and returns
// the fully populated entity, so no partially written entity is ever
// visible.
func (c *collection[T]) insert(build func(id string) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := c.prefix + idSuffix()
		if _, taken := c.ids[id]; taken {
			continue
		}
		c.ids[id] = struct{}{}
		item := build(id)
		c.items = append([]T{item}, c.items...)
		return item, nil
	}

	var zero T
	return zero, domain.ErrIDGenerationExhausted
}

// Ledger owns the four collections. Construct with New (seeded portfolio
// data) and share one instance per process; there is no implicit singleton.
type Ledger struct {
	leases    *collection[domain.Lease]
	payments  *collection[domain.Payment]
	reminders *collection[domain.Reminder]
	tickets   *collection[domain.MaintenanceTicket]
}

// New returns a Ledger seeded with the fixed portfolio data.
func New() *Ledger {
	return &Ledger{
		leases: newCollection(LeasePrefix, seedLeases(),
			func(l domain.Lease) string { return l.ID }),
		payments: newCollection(PaymentPrefix, seedPayments(),
			func(p domain.Payment) string { return p.ID }),
		reminders: newCollection(ReminderPrefix, seedReminders(),
			func(r domain.Reminder) string { return r.ID }),
		tickets: newCollection(TicketPrefix, seedTickets(),
			func(t domain.MaintenanceTicket) string { return t.ID }),
	}
}

// NewEmpty returns a Ledger with no seed data. Intended for tests.
func NewEmpty() *Ledger {
	return &Ledger{
		leases:    newCollection(LeasePrefix, nil, func(l domain.Lease) string { return l.ID }),
		payments:  newCollection(PaymentPrefix, nil, func(p domain.Payment) string { return p.ID }),
		reminders: newCollection(ReminderPrefix, nil, func(r domain.Reminder) string { return r.ID }),
		tickets:   newCollection(TicketPrefix, nil, func(t domain.MaintenanceTicket) string { return t.ID }),
	}
}

func (l *Ledger) Leases() []domain.Lease       { return l.leases.snapshot() }
func (l *Ledger) Payments() []domain.Payment   { return l.payments.snapshot() }
func (l *Ledger) Reminders() []domain.Reminder { return l.reminders.snapshot() }
func (l *Ledger) MaintenanceTickets() []domain.MaintenanceTicket {
	return l.tickets.snapshot()
}

// InsertPayment commits p with a generated PM- identifier.
func (l *Ledger) InsertPayment(p domain.Payment) (domain.Payment, error) {
	return l.payments.insert(func(id string) domain.Payment {
		p.ID = id
		return p
	})
}

// InsertReminder commits r with a generated RM- identifier.
func (l *Ledger) InsertReminder(r domain.Reminder) (domain.Reminder, error) {
	return l.reminders.insert(func(id string) domain.Reminder {
		r.ID = id
		return r
	})
}

// InsertMaintenanceTicket commits t with a generated MT- identifier.
func (l *Ledger) InsertMaintenanceTicket(t domain.MaintenanceTicket) (domain.MaintenanceTicket, error) {
	return l.tickets.insert(func(id string) domain.MaintenanceTicket {
		t.ID = id
		return t
	})
}
