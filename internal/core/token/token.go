// Package token builds, signs, and validates the bearer tokens this service
// issues. Tokens are HS256 JWTs carrying the registered claims plus a "scope"
// claim holding the space-joined role names granted at issuance time.
//
// Validation is a pure function of (token string, key, expected issuer,
// current time); the clock is always injected so validation is deterministic.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
)

// ErrNoSigningKey means the key material is absent. This is a startup-class
// failure: callers must not retry per-request.
var ErrNoSigningKey = errors.New("token: signing key is empty")

// Validation failures, one per short-circuiting check, in check order.
var (
	ErrMalformed    = errors.New("token: malformed")
	ErrBadSignature = errors.New("token: bad signature")
	ErrExpired      = errors.New("token: expired")
	ErrWrongIssuer  = errors.New("token: wrong issuer")
)

// Claims is the set of facts a token asserts. Once signed, a token is
// immutable; a later role change never alters an already-issued token.
type Claims struct {
	Issuer    string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Scope     string
}

// New assembles the canonical claim set for a subject holding the given
// roles. Scope is the role names joined with single spaces; the validator
// re-splits on whitespace, so ordering carries no meaning. ttl must be
// positive for the expiresAt > issuedAt invariant to hold.
func New(subject string, roles []domain.Role, issuer string, now time.Time, ttl time.Duration) Claims {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return Claims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
		Scope:     strings.Join(names, " "),
	}
}

// payload is the JWT wire shape of Claims.
type payload struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Issue signs the claim set into a compact JWT string. The output is a
// standard signed claim structure, so any conformant JWT validator can parse
// what this issuer produced.
func Issue(c Claims, key []byte) (string, error) {
	if len(key) == 0 {
		return "", ErrNoSigningKey
	}
	p := payload{
		Scope: c.Scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.Issuer,
			Subject:   c.Subject,
			IssuedAt:  jwt.NewNumericDate(c.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, p).SignedString(key)
}

// Validate parses and verifies a bearer token. Checks run in order and
// short-circuit: structure (ErrMalformed), signature (ErrBadSignature),
// expiry (ErrExpired when now >= expiresAt), issuer (ErrWrongIssuer).
// It performs no I/O and no store lookups.
func Validate(raw string, key []byte, issuer string, now time.Time) (Claims, error) {
	if len(key) == 0 {
		return Claims{}, ErrNoSigningKey
	}

	// Expiry and issuer are checked by hand below so each failure maps to
	// exactly one kind, in the documented order.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var p payload
	_, err := parser.ParseWithClaims(raw, &p, func(*jwt.Token) (interface{}, error) {
		return key, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrBadSignature
	default:
		return Claims{}, ErrMalformed
	}

	if p.ExpiresAt == nil || p.IssuedAt == nil {
		return Claims{}, ErrMalformed
	}
	if !now.Before(p.ExpiresAt.Time) {
		return Claims{}, ErrExpired
	}
	if p.Issuer != issuer {
		return Claims{}, ErrWrongIssuer
	}

	return Claims{
		Issuer:    p.Issuer,
		Subject:   p.Subject,
		IssuedAt:  p.IssuedAt.Time.UTC(),
		ExpiresAt: p.ExpiresAt.Time.UTC(),
		Scope:     p.Scope,
	}, nil
}
