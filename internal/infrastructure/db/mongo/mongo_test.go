package mongo

import (
	"testing"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
)

func TestDefaultRoles_CatalogComplete(t *testing.T) {
	names := make(map[string]bool, len(defaultRoles))
	ids := make(map[int64]bool, len(defaultRoles))
	for _, role := range defaultRoles {
		if role.ID == 0 {
			t.Fatalf("role %s has zero id", role.Name)
		}
		if ids[role.ID] {
			t.Fatalf("duplicate role id %d", role.ID)
		}
		ids[role.ID] = true
		names[role.Name] = true
	}

	// Registration assigns BASIC; the admin listing is gated on ADMIN. Both
	// must be seeded or the service cannot bootstrap on an empty database.
	for _, want := range []string{domain.RoleBasic, domain.RoleAdmin} {
		if !names[want] {
			t.Fatalf("role %s missing from seeded catalog", want)
		}
	}
}
