package domain

import "time"

// LeaseStatus represents the lifecycle state of a lease.
type LeaseStatus string

const (
	LeaseActive  LeaseStatus = "Active"
	LeaseEnding  LeaseStatus = "Ending"
	LeaseOverdue LeaseStatus = "Overdue"
)

// PaymentStatus represents whether a rent payment has cleared.
type PaymentStatus string

const (
	PaymentConfirmed PaymentStatus = "Confirmed"
	PaymentPending   PaymentStatus = "Pending"
)

// ReminderType distinguishes a formal invoice from a nudge.
type ReminderType string

const (
	ReminderInvoice  ReminderType = "Invoice"
	ReminderReminder ReminderType = "Reminder"
)

// ReminderChannel is the delivery medium for a rent reminder.
type ReminderChannel string

const (
	ChannelSMS      ReminderChannel = "SMS"
	ChannelEmail    ReminderChannel = "Email"
	ChannelWhatsApp ReminderChannel = "WhatsApp"
)

// TicketPriority orders maintenance work.
type TicketPriority string

const (
	PriorityHigh   TicketPriority = "High"
	PriorityMedium TicketPriority = "Medium"
	PriorityLow    TicketPriority = "Low"
)

// priorityRank maps each priority to its sort rank, lowest first.
var priorityRank = map[TicketPriority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// Rank returns the sort rank for p. Unknown priorities sort last.
func (p TicketPriority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

// Valid reports whether p is a declared priority.
func (p TicketPriority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// TicketStatus represents the lifecycle state of a maintenance ticket.
type TicketStatus string

const (
	TicketNew        TicketStatus = "New"
	TicketInProgress TicketStatus = "In Progress"
	TicketResolved   TicketStatus = "Resolved"
)

// Lease is a tenancy agreement on a portfolio unit. Leases are seeded at
// startup; the core exposes no mutation path for them. Tenant, property and
// landlord are denormalized display strings, not foreign keys.
type Lease struct {
	ID          string      `json:"id"`
	Property    string      `json:"property"`
	Tenant      string      `json:"tenant"`
	Landlord    string      `json:"landlord"`
	MonthlyRent float64     `json:"monthly_rent"`
	NextReview  time.Time   `json:"next_review"`
	ExpiresOn   time.Time   `json:"expires_on"`
	Status      LeaseStatus `json:"status"`
}

// Payment records rent received from a tenant.
type Payment struct {
	ID       string        `json:"id"`
	Tenant   string        `json:"tenant"`
	Property string        `json:"property"`
	Amount   float64       `json:"amount"`
	Method   string        `json:"method"`
	Date     time.Time     `json:"date"`
	Status   PaymentStatus `json:"status"`
}

// Reminder is an outstanding invoice or rent nudge queued for delivery.
type Reminder struct {
	ID      string          `json:"id"`
	Tenant  string          `json:"tenant"`
	Type    ReminderType    `json:"type"`
	DueDate time.Time       `json:"due_date"`
	Amount  float64         `json:"amount"`
	Channel ReminderChannel `json:"channel"`
}

// MaintenanceTicket is a reported fault on a portfolio unit.
type MaintenanceTicket struct {
	ID        string         `json:"id"`
	Property  string         `json:"property"`
	Tenant    string         `json:"tenant"`
	Category  string         `json:"category"`
	Priority  TicketPriority `json:"priority"`
	Status    TicketStatus   `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	Notes     string         `json:"notes,omitempty"`
}
