package ports

import (
	"context"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/token"
)

// TweetService gates create and delete on owned resources. Claims are passed
// explicitly by the transport layer after validation; the service never reads
// ambient request state.
type TweetService interface {
	CreateTweet(ctx context.Context, claims token.Claims, content string) (*domain.Tweet, error)
	DeleteTweet(ctx context.Context, claims token.Claims, tweetID string) error
}
