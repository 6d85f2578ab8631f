package ports

import (
	"context"

	"github.com/zamreal/property-system/internal/core/domain"
)

// CredentialDirectory resolves an email address to a stored user record.
// Implementations return domain.ErrUserNotFound when no record exists; any
// other error is treated by the auth service as "directory unavailable".
type CredentialDirectory interface {
	FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
}

// CredentialStore is a directory that also accepts new registrations.
// The persistent Mongo-backed directory implements it; the built-in demo
// directory is read-only and does not.
type CredentialStore interface {
	CredentialDirectory
	Create(ctx context.Context, rec *domain.UserRecord) (*domain.UserRecord, error)
}
