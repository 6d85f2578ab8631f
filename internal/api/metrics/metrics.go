// Package metrics defines and registers all custom Prometheus metrics for
// the property dashboard API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// PaymentsRecordedTotal counts committed rent payments.
// Label:
//   - method: payment method as submitted (e.g. "Cash", "Bank Transfer")
var PaymentsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of rent payments committed to the ledger.",
	},
	[]string{"method"},
)

// RemindersCreatedTotal counts committed rent reminders.
// Label:
//   - channel: "SMS", "Email", or "WhatsApp"
var RemindersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_created_total",
		Help:      "Total number of rent reminders committed to the ledger.",
	},
	[]string{"channel"},
)

// MaintenanceTicketsTotal counts logged maintenance tickets.
// Label:
//   - priority: "High", "Medium", or "Low"
var MaintenanceTicketsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "maintenance_tickets_total",
		Help:      "Total number of maintenance tickets logged, by priority.",
	},
	[]string{"priority"},
)

// ReminderDispatchTotal counts reminder delivery outcomes.
// Label:
//   - result: "delivered", "failed", or "duplicate"
var ReminderDispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminder_dispatch_total",
		Help:      "Total number of reminder dispatch attempts, by result.",
	},
	[]string{"result"},
)

// ReminderQueueDepth tracks reminders waiting in each dispatcher worker
// channel.
// Label:
//   - worker_id: numeric worker index
var ReminderQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reminder_queue_depth",
		Help:      "Current number of reminders pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ReminderDispatchDuration measures end-to-end delivery time for one
// reminder.
var ReminderDispatchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reminder_dispatch_duration_seconds",
		Help:      "Duration of reminder dispatch from dequeue to delivery.",
		Buckets:   prometheus.DefBuckets,
	},
)
