package handler

import (
	"encoding/json"
	"time"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// amountField accepts either a JSON number or a numeric string, mirroring
// the loosely typed form inputs the dashboard submits. Coercion and range
// checking happen in the mutation service, not here.
type amountField string

func (a *amountField) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*a = amountField(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*a = amountField(s)
	return nil
}

// --- Request types ---

type createPaymentRequest struct {
	Tenant   string      `json:"tenant"   validate:"required"`
	Property string      `json:"property" validate:"required"`
	Amount   amountField `json:"amount"   validate:"required"`
	Method   string      `json:"method"   validate:"required"`
	Date     string      `json:"date"     validate:"required"`
	Status   string      `json:"status"   validate:"omitempty,oneof=Confirmed Pending"`
}

type createReminderRequest struct {
	Tenant  string      `json:"tenant"   validate:"required"`
	Type    string      `json:"type"     validate:"required,oneof=Invoice Reminder"`
	DueDate string      `json:"due_date" validate:"required"`
	Amount  amountField `json:"amount"   validate:"required"`
	Channel string      `json:"channel"  validate:"required,oneof=SMS Email WhatsApp"`
}

type createTicketRequest struct {
	Property string `json:"property" validate:"required"`
	Tenant   string `json:"tenant"   validate:"required"`
	Category string `json:"category" validate:"required"`
	Priority string `json:"priority" validate:"required,oneof=High Medium Low"`
	Notes    string `json:"notes"`
}

// --- Response types. Owned by the transport layer so the JSON contract is
// not coupled to internal domain changes. ---

type leaseResponse struct {
	ID          string    `json:"id"`
	Property    string    `json:"property"`
	Tenant      string    `json:"tenant"`
	Landlord    string    `json:"landlord"`
	MonthlyRent float64   `json:"monthly_rent"`
	NextReview  time.Time `json:"next_review"`
	ExpiresOn   time.Time `json:"expires_on"`
	Status      string    `json:"status"`
}

type paymentResponse struct {
	ID       string    `json:"id"`
	Tenant   string    `json:"tenant"`
	Property string    `json:"property"`
	Amount   float64   `json:"amount"`
	Method   string    `json:"method"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
}

type reminderResponse struct {
	ID      string    `json:"id"`
	Tenant  string    `json:"tenant"`
	Type    string    `json:"type"`
	DueDate time.Time `json:"due_date"`
	Amount  float64   `json:"amount"`
	Channel string    `json:"channel"`
}

type ticketResponse struct {
	ID        string    `json:"id"`
	Property  string    `json:"property"`
	Tenant    string    `json:"tenant"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Notes     string    `json:"notes,omitempty"`
}

type summaryResponse struct {
	TotalUnits         int     `json:"total_units"`
	Occupied           int     `json:"occupied"`
	OccupancyRate      int     `json:"occupancy_rate"`
	ArrearsZMW         float64 `json:"arrears_zmw"`
	MaintenanceBacklog int     `json:"maintenance_backlog"`
}

// overviewResponse is the single payload backing the landing dashboard:
// headline cards plus the preview panels.
type overviewResponse struct {
	Summary          summaryResponse    `json:"summary"`
	UpcomingReviews  []leaseResponse    `json:"upcoming_reviews"`
	RecentPayments   []paymentResponse  `json:"recent_payments"`
	RentReminders    []reminderResponse `json:"rent_reminders"`
	MaintenanceQueue []ticketResponse   `json:"maintenance_queue"`
}
