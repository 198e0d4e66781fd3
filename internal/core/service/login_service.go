package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/ports"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/token"
)

// LoginService implements the login flow: resolve the username, verify the
// password, and issue a token carrying the identity's current role set.
type LoginService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	audit  ports.AuditRecorder
	issuer string
	key    []byte
	ttl    time.Duration
	now    func() time.Time
	logger zerolog.Logger
}

func NewLoginService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	audit ports.AuditRecorder,
	issuer string,
	key []byte,
	ttl time.Duration,
	logger zerolog.Logger,
) *LoginService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &LoginService{
		users:  users,
		hasher: hasher,
		audit:  audit,
		issuer: issuer,
		key:    key,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// Login authenticates the credentials and returns a signed token plus its
// lifetime. An unknown username and a wrong password return the same
// domain.ErrBadCredentials; nothing in the response or the logs reveals which
// check failed.
func (s *LoginService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrBadCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			s.rejected(username)
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.rejected(username)
		return nil, domain.ErrBadCredentials
	}

	claims := token.New(user.ID, user.Roles, s.issuer, s.now(), s.ttl)
	signed, err := token.Issue(claims, s.key)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		Action:    domain.AuditLoginSucceeded,
		Subject:   user.ID,
		Username:  user.Username,
		Timestamp: claims.IssuedAt,
	})
	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")

	return &ports.LoginResult{
		AccessToken: signed,
		ExpiresIn:   int64(s.ttl / time.Second),
	}, nil
}

func (s *LoginService) rejected(username string) {
	s.audit.Record(domain.AuditEvent{
		Action:    domain.AuditLoginFailed,
		Username:  username,
		Timestamp: s.now(),
	})
	s.logger.Info().Msg("login rejected")
}
