package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/zamreal/property-system/internal/core/domain"
	"github.com/zamreal/property-system/internal/core/ports"
)

// LoggingNotifier is the default Notifier: it records the delivery intent
// without sending anything. Real SMS/email/WhatsApp gateways are external
// collaborators plugged in through the same port.
type LoggingNotifier struct {
	log zerolog.Logger
}

func NewLoggingNotifier(log zerolog.Logger) *LoggingNotifier {
	return &LoggingNotifier{log: log}
}

var _ ports.Notifier = (*LoggingNotifier)(nil)

func (n *LoggingNotifier) Send(_ context.Context, r domain.Reminder) error {
	n.log.Info().
		Str("id", r.ID).
		Str("tenant", r.Tenant).
		Str("channel", string(r.Channel)).
		Float64("amount", r.Amount).
		Msg("reminder dispatched")
	return nil
}
