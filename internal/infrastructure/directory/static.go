// Package directory provides the fixed built-in credential directory used
// when no persistent store is configured, or as the fallback when the store
// cannot be reached.
package directory

import (
	"context"
	"strings"

	"github.com/zamreal/property-system/internal/core/domain"
)

// Static is a read-only, in-memory credential directory keyed by email.
type Static struct {
	byEmail map[string]domain.UserRecord
}

func NewStatic(records ...domain.UserRecord) *Static {
	d := &Static{byEmail: make(map[string]domain.UserRecord, len(records))}
	for _, r := range records {
		d.byEmail[strings.ToLower(r.Email)] = r
	}
	return d
}

// Demo returns the directory of seeded demo accounts. Their secrets are
// stored plaintext and go through the legacy comparison branch of secret
// verification.
func Demo() *Static {
	return NewStatic(
		domain.UserRecord{
			ID:     "admin-1",
			Name:   "Chanda Admin",
			Email:  "admin@zamreal.co",
			Secret: "admin123",
			Role:   domain.RoleAdmin,
		},
		domain.UserRecord{
			ID:     "manager-1",
			Name:   "Lusungu Manager",
			Email:  "manager@zamreal.co",
			Secret: "manager123",
			Role:   domain.RoleManager,
		},
	)
}

// FindByEmail resolves email to a stored record, or domain.ErrUserNotFound.
func (d *Static) FindByEmail(_ context.Context, email string) (*domain.UserRecord, error) {
	rec, ok := d.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := rec
	return &clone, nil
}
