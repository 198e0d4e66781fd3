package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/ports"
)

// UserService implements registration and the admin-only listing.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	hasher ports.PasswordHasher,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, audit: audit, logger: logger}
}

// Register creates a new identity with the BASIC role. Uniqueness is the
// store's responsibility; a concurrent duplicate surfaces as
// domain.ErrUsernameTaken and leaves the first record untouched.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("register: %w", domain.ErrInvalidInput)
	}

	role, err := s.roles.FindByName(ctx, domain.RoleBasic)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Roles:        []domain.Role{*role},
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		Action:    domain.AuditUserRegistered,
		Subject:   created.ID,
		Username:  created.Username,
		Timestamp: created.CreatedAt,
	})
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")

	return created, nil
}

// ListUsers returns every user's username and roles. Scope enforcement is the
// caller's job; the service itself is not role-aware.
func (s *UserService) ListUsers(ctx context.Context) ([]ports.UserSummary, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	summaries := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, ports.UserSummary{Username: u.Username, Roles: u.Roles})
	}
	return summaries, nil
}
