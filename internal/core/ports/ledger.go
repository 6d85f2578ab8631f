package ports

import "github.com/zamreal/property-system/internal/core/domain"

// LedgerReader provides snapshot reads of the four tracked collections.
// Returned slices are independent copies ordered most recent first; mutating
// one cannot corrupt ledger state.
type LedgerReader interface {
	Leases() []domain.Lease
	Payments() []domain.Payment
	Reminders() []domain.Reminder
	MaintenanceTickets() []domain.MaintenanceTicket
}

// LedgerWriter commits new entities. Implementations assign the generated
// identifier (per-kind prefix, unique within the collection) and prepend the
// entity, or fail with domain.ErrIDGenerationExhausted.
type LedgerWriter interface {
	InsertPayment(p domain.Payment) (domain.Payment, error)
	InsertReminder(r domain.Reminder) (domain.Reminder, error)
	InsertMaintenanceTicket(t domain.MaintenanceTicket) (domain.MaintenanceTicket, error)
}

// LedgerStore combines snapshot reads with the single-writer insert path.
type LedgerStore interface {
	LedgerReader
	LedgerWriter
}
