package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/auth"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/token"
)

// RequireScope enforces scope-based access control on top of Auth. A missing
// scope surfaces as domain.ErrInsufficientScope, which the central error
// handler renders as a 403: the token is trustworthy, the operation is
// disallowed, and saying so leaks no existence information.
func RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsKey).(token.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !auth.HasScope(claims, scope) {
				return domain.ErrInsufficientScope
			}
			return next(c)
		}
	}
}
