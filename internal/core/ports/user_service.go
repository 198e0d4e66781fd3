package ports

import (
	"context"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
)

// UserSummary is the listing shape exposed to administrators.
type UserSummary struct {
	Username string        `json:"username"`
	Roles    []domain.Role `json:"roles"`
}

// UserService handles registration and the admin-only listing.
type UserService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]UserSummary, error)
}
