package ports

import (
	"context"

	"github.com/zamreal/property-system/internal/core/domain"
)

// Notifier delivers a committed rent reminder over its channel. Concrete
// delivery (SMS, email, WhatsApp gateways) is an external collaborator;
// the default implementation only logs the intent.
type Notifier interface {
	Send(ctx context.Context, reminder domain.Reminder) error
}
