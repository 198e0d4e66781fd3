package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
)

const tweetCollection = "tweets"

// TweetRepository implements ports.TweetRepository on MongoDB.
type TweetRepository struct {
	coll *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{coll: db.Collection(tweetCollection)}
}

type mongoTweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Content   string             `bson:"content"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *TweetRepository) Create(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error) {
	doc := mongoTweet{
		UserID:    tweet.UserID,
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert tweet: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *tweet
	created.ID = id.Hex()
	return &created, nil
}

// FindByIDAndOwner looks up a tweet constrained to (id, owner). An absent id
// and an id owned by someone else both return domain.ErrTweetNotFound.
func (r *TweetRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Tweet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTweetNotFound
	}

	var mt mongoTweet
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "user_id": ownerID}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTweetNotFound
		}
		return nil, fmt.Errorf("find tweet: %w", err)
	}

	return &domain.Tweet{
		ID:        mt.ID.Hex(),
		UserID:    mt.UserID,
		Content:   mt.Content,
		CreatedAt: unixToTime(mt.CreatedAt),
	}, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTweetNotFound
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}
	return nil
}
