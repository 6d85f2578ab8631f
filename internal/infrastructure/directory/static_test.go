package directory

import (
	"context"
	"testing"

	"github.com/zamreal/property-system/internal/core/domain"
)

func TestFindByEmail_CaseInsensitive(t *testing.T) {
	d := Demo()

	rec, err := d.FindByEmail(context.Background(), "Admin@ZamReal.co")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if rec.ID != "admin-1" || rec.Role != domain.RoleAdmin {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestFindByEmail_Unknown(t *testing.T) {
	d := Demo()
	if _, err := d.FindByEmail(context.Background(), "ghost@zamreal.co"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindByEmail_ReturnsCopy(t *testing.T) {
	d := Demo()

	first, _ := d.FindByEmail(context.Background(), "manager@zamreal.co")
	first.Secret = "tampered"

	second, _ := d.FindByEmail(context.Background(), "manager@zamreal.co")
	if second.Secret != "manager123" {
		t.Fatalf("directory record was mutated through a returned copy")
	}
}
