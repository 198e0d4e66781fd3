package ports

import (
	"context"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
)

// TweetRepository is the content store. FindByIDAndOwner constrains the
// lookup to (id, owner) and misses with domain.ErrTweetNotFound whether the
// tweet is absent or belongs to someone else.
type TweetRepository interface {
	Create(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Tweet, error)
	Delete(ctx context.Context, id string) error
}
