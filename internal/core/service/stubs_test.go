package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
)

type stubUserRepo struct {
	byUsername map[string]*domain.User
	byID       map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byUsername: make(map[string]*domain.User),
		byID:       make(map[string]*domain.User),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byUsername[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = uuid.NewString()
	}
	r.byUsername[copy.Username] = copy
	r.byID[copy.ID] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, *cloneUser(u))
	}
	return users, nil
}

type stubRoleRepo struct {
	roles map[string]domain.Role
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: map[string]domain.Role{
		domain.RoleBasic: {ID: 1, Name: domain.RoleBasic},
		domain.RoleAdmin: {ID: 2, Name: domain.RoleAdmin},
	}}
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return &role, nil
}

type stubTweetRepo struct {
	tweets map[string]*domain.Tweet
}

func newStubTweetRepo() *stubTweetRepo {
	return &stubTweetRepo{tweets: make(map[string]*domain.Tweet)}
}

func (r *stubTweetRepo) Create(_ context.Context, tweet *domain.Tweet) (*domain.Tweet, error) {
	created := *tweet
	created.ID = uuid.NewString()
	r.tweets[created.ID] = &created
	copy := created
	return &copy, nil
}

func (r *stubTweetRepo) FindByIDAndOwner(_ context.Context, id, ownerID string) (*domain.Tweet, error) {
	t, ok := r.tweets[id]
	if !ok || t.UserID != ownerID {
		return nil, domain.ErrTweetNotFound
	}
	copy := *t
	return &copy, nil
}

func (r *stubTweetRepo) Delete(_ context.Context, id string) error {
	delete(r.tweets, id)
	return nil
}

// recordingAudit captures audit events synchronously for assertions.
type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *recordingAudit) Record(event domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
}

func (a *recordingAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	actions := make([]string, 0, len(a.events))
	for _, e := range a.events {
		actions = append(actions, e.Action)
	}
	return actions
}
