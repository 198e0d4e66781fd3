package auth

import (
	"testing"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/token"
)

func TestHasScope(t *testing.T) {
	tests := []struct {
		name     string
		scope    string
		required string
		want     bool
	}{
		{"single match", "ADMIN", "ADMIN", true},
		{"member of set", "ADMIN BASIC", "BASIC", true},
		{"member of set reversed", "BASIC ADMIN", "ADMIN", true},
		{"absent", "BASIC", "ADMIN", false},
		{"prefix does not match", "ADMIN_X", "ADMIN", false},
		{"substring does not match", "SUPERADMIN", "ADMIN", false},
		{"case sensitive", "admin", "ADMIN", false},
		{"empty scope", "", "ADMIN", false},
		{"extra whitespace tolerated", "  BASIC   ADMIN ", "ADMIN", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := token.Claims{Scope: tt.scope}
			if got := HasScope(c, tt.required); got != tt.want {
				t.Fatalf("HasScope(%q, %q) = %v, want %v", tt.scope, tt.required, got, tt.want)
			}
		})
	}
}

func TestOwnsResource(t *testing.T) {
	c := token.Claims{Subject: "2b1f8c1e-55aa-4b83-bb0d-3f5f6d1c9e10"}

	if !OwnsResource(c, "2b1f8c1e-55aa-4b83-bb0d-3f5f6d1c9e10") {
		t.Fatalf("expected subject to own its own resource")
	}
	if OwnsResource(c, "a0000000-0000-0000-0000-000000000000") {
		t.Fatalf("expected mismatch for other owner")
	}
	// Case-sensitive, no coercion.
	if OwnsResource(c, "2B1F8C1E-55AA-4B83-BB0D-3F5F6D1C9E10") {
		t.Fatalf("expected case-sensitive comparison to fail")
	}
}
