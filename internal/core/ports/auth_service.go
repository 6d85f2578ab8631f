package ports

import (
	"context"

	"github.com/zamreal/property-system/internal/core/domain"
)

// AuthService authenticates dashboard users and registers new accounts.
type AuthService interface {
	// Authenticate verifies the supplied credentials and returns a signed
	// session token plus the resolved principal. Lookup failure and secret
	// mismatch both surface as domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, secret string) (string, *domain.Principal, error)

	// Register stores a new account in the persistent credential store.
	// An empty role defaults to tenant.
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.Principal, error)
}
