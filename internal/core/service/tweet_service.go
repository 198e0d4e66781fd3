package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/auth"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/ports"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/token"
)

// TweetService gates create and delete on tweet ownership. Every operation
// resolves the token subject against the user store first: a valid token does
// not imply the subject still exists.
type TweetService struct {
	tweets ports.TweetRepository
	users  ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewTweetService(
	tweets ports.TweetRepository,
	users ports.UserRepository,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *TweetService {
	return &TweetService{tweets: tweets, users: users, audit: audit, logger: logger}
}

// CreateTweet stores a new tweet owned by the token's subject.
func (s *TweetService) CreateTweet(ctx context.Context, claims token.Claims, content string) (*domain.Tweet, error) {
	user, err := s.resolveSubject(ctx, claims)
	if err != nil {
		return nil, err
	}

	tweet := &domain.Tweet{
		UserID:    user.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.tweets.Create(ctx, tweet)
	if err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}

	s.logger.Info().Str("tweet_id", created.ID).Str("user_id", user.ID).Msg("tweet created")
	return created, nil
}

// DeleteTweet removes a tweet the subject owns. The lookup is constrained to
// (id, owner): a tweet that does not exist and a tweet owned by someone else
// both miss with domain.ErrTweetNotFound.
func (s *TweetService) DeleteTweet(ctx context.Context, claims token.Claims, tweetID string) error {
	user, err := s.resolveSubject(ctx, claims)
	if err != nil {
		return err
	}

	tweet, err := s.tweets.FindByIDAndOwner(ctx, tweetID, user.ID)
	if err != nil {
		return err
	}

	// FindByIDAndOwner already proved ownership; this guards the repository
	// contract rather than the caller.
	if !auth.OwnsResource(claims, tweet.UserID) {
		return domain.ErrTweetNotFound
	}

	if err := s.tweets.Delete(ctx, tweet.ID); err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}

	s.audit.Record(domain.AuditEvent{
		Action:    domain.AuditTweetDeleted,
		Subject:   user.ID,
		Username:  user.Username,
		Detail:    tweet.ID,
		Timestamp: time.Now().UTC(),
	})
	s.logger.Info().Str("tweet_id", tweet.ID).Str("user_id", user.ID).Msg("tweet deleted")
	return nil
}

func (s *TweetService) resolveSubject(ctx context.Context, claims token.Claims) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("resolve subject: %w", err)
	}
	return user, nil
}
