package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/api/middleware"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/token"
)

// ctxClaims extracts the claims injected by the Auth middleware. A missing
// value means the route was wired without the middleware; fail closed with
// 401 rather than reaching a service without an authenticated subject.
func ctxClaims(c echo.Context) (token.Claims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(token.Claims)
	if !ok || claims.Subject == "" {
		return token.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
