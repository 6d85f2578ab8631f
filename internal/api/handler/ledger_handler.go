package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zamreal/property-system/internal/api/metrics"
	"github.com/zamreal/property-system/internal/core/domain"
	"github.com/zamreal/property-system/internal/core/ports"
)

// ReminderSink receives committed reminders for asynchronous delivery.
type ReminderSink interface {
	Enqueue(r domain.Reminder)
}

// LedgerHandler serves the four collections and the validated write path.
type LedgerHandler struct {
	ledger     ports.LedgerReader
	analytics  ports.AnalyticsService
	mutations  ports.MutationService
	dispatcher ReminderSink // nil disables reminder dispatch
}

func NewLedgerHandler(ledger ports.LedgerReader, analytics ports.AnalyticsService, mutations ports.MutationService, dispatcher ReminderSink) *LedgerHandler {
	return &LedgerHandler{
		ledger:     ledger,
		analytics:  analytics,
		mutations:  mutations,
		dispatcher: dispatcher,
	}
}

// ListLeases returns every lease, newest first.
//
// @Summary      List leases
// @Tags         leases
// @Produce      json
// @Success      200  {array}  leaseResponse
// @Router       /leases [get]
func (h *LedgerHandler) ListLeases(c echo.Context) error {
	if _, err := ctxRole(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLeaseResponses(h.ledger.Leases()))
}

// ReviewRadar returns leases needing rent-review attention (30 days back to
// 90 days ahead), soonest first.
//
// @Summary      Rent-review radar
// @Tags         leases
// @Produce      json
// @Success      200  {array}  leaseResponse
// @Router       /leases/review-radar [get]
func (h *LedgerHandler) ReviewRadar(c echo.Context) error {
	if _, err := ctxRole(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLeaseResponses(h.analytics.ReviewRadar()))
}

// ListPayments returns every recorded payment, newest first.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Success      200  {array}  paymentResponse
// @Router       /payments [get]
func (h *LedgerHandler) ListPayments(c echo.Context) error {
	if _, err := ctxRole(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentResponses(h.ledger.Payments()))
}

// CreatePayment records a rent payment.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createPaymentRequest  true  "Payment details"
// @Success      201   {object}  paymentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /payments [post]
func (h *LedgerHandler) CreatePayment(c echo.Context) error {
	role, err := ctxRole(c)
	if err != nil {
		return err
	}

	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := toPaymentInput(req, role)
	if err != nil {
		return err
	}

	payment, err := h.mutations.CreatePayment(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.WithLabelValues(payment.Method).Inc()
	return c.JSON(http.StatusCreated, toPaymentResponse(*payment))
}

// ListReminders returns every rent reminder, newest first.
//
// @Summary      List reminders
// @Tags         reminders
// @Produce      json
// @Success      200  {array}  reminderResponse
// @Router       /reminders [get]
func (h *LedgerHandler) ListReminders(c echo.Context) error {
	if _, err := ctxRole(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReminderResponses(h.ledger.Reminders()))
}

// CreateReminder queues a rent reminder or invoice. The committed reminder
// is handed to the dispatcher for asynchronous delivery.
//
// @Summary      Create a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        body  body      createReminderRequest  true  "Reminder details"
// @Success      201   {object}  reminderResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /reminders [post]
func (h *LedgerHandler) CreateReminder(c echo.Context) error {
	role, err := ctxRole(c)
	if err != nil {
		return err
	}

	var req createReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := toReminderInput(req, role)
	if err != nil {
		return err
	}

	reminder, err := h.mutations.CreateReminder(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.RemindersCreatedTotal.WithLabelValues(string(reminder.Channel)).Inc()
	if h.dispatcher != nil {
		h.dispatcher.Enqueue(*reminder)
	}
	return c.JSON(http.StatusCreated, toReminderResponse(*reminder))
}

// ListTickets returns every maintenance ticket, newest first.
//
// @Summary      List maintenance tickets
// @Tags         maintenance
// @Produce      json
// @Success      200  {array}  ticketResponse
// @Router       /maintenance [get]
func (h *LedgerHandler) ListTickets(c echo.Context) error {
	if _, err := ctxRole(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTicketResponses(h.ledger.MaintenanceTickets()))
}

// TicketQueue returns the full field queue: tickets by priority rank,
// stable on ties.
//
// @Summary      Maintenance priority queue
// @Tags         maintenance
// @Produce      json
// @Success      200  {array}  ticketResponse
// @Router       /maintenance/queue [get]
func (h *LedgerHandler) TicketQueue(c echo.Context) error {
	if _, err := ctxRole(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTicketResponses(h.analytics.MaintenanceQueue(0)))
}

// CreateTicket logs a maintenance fault report.
//
// @Summary      Log a maintenance ticket
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        body  body      createTicketRequest  true  "Ticket details"
// @Success      201   {object}  ticketResponse
// @Failure      400   {object}  errorResponse
// @Router       /maintenance [post]
func (h *LedgerHandler) CreateTicket(c echo.Context) error {
	role, err := ctxRole(c)
	if err != nil {
		return err
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.mutations.CreateMaintenanceTicket(c.Request().Context(), toTicketInput(req, role))
	if err != nil {
		return err
	}

	metrics.MaintenanceTicketsTotal.WithLabelValues(string(ticket.Priority)).Inc()
	return c.JSON(http.StatusCreated, toTicketResponse(*ticket))
}
