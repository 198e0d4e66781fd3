// Package auth holds the two authorization decision primitives. Both are pure
// predicates over a validated claim set; callers turn a false result into a
// rejection. Role and ownership checks are orthogonal and never combined
// implicitly.
package auth

import (
	"strings"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/token"
)

// HasScope reports whether the literal role name appears as a
// whitespace-delimited entry of the token's scope. Membership is exact:
// "ADMIN_X" does not satisfy a required "ADMIN".
func HasScope(c token.Claims, scope string) bool {
	for _, s := range strings.Fields(c.Scope) {
		if s == scope {
			return true
		}
	}
	return false
}

// OwnsResource reports whether the token's subject is the resource owner.
// Comparison is exact string equality, case-sensitive, no coercion.
func OwnsResource(c token.Claims, ownerID string) bool {
	return c.Subject == ownerID
}
