package ports

import (
	"context"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
)

// UserRepository is the user store. Create surfaces the store's unique
// username constraint as domain.ErrUsernameTaken; lookups miss with
// domain.ErrIdentityNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}

// RoleRepository resolves entries of the closed role catalog by name,
// missing with domain.ErrRoleNotFound.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
}
