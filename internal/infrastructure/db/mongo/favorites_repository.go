package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

const favoritesCollection = "favorites"

// MongoFavoritesRepository persists per-user favorites with a unique index on
// (user_id, content_id).
type MongoFavoritesRepository struct {
	coll *mongo.Collection
}

func NewFavoritesRepository(db *mongo.Database) *MongoFavoritesRepository {
	return &MongoFavoritesRepository{coll: db.Collection(favoritesCollection)}
}

// EnsureIndexes creates the unique favorite index. Call once at startup.
func (r *MongoFavoritesRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "content_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure favorite index: %w", err)
	}
	return nil
}

type mongoFavorite struct {
	UserID    string    `bson:"user_id"`
	ContentID string    `bson:"content_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *MongoFavoritesRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Favorite
	for cur.Next(ctx) {
		var mf mongoFavorite
		if err := cur.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode favorite: %w", err)
		}
		out = append(out, &domain.Favorite{
			UserID:    mf.UserID,
			ContentID: mf.ContentID,
			CreatedAt: mf.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return out, nil
}

func (r *MongoFavoritesRepository) Add(ctx context.Context, f *domain.Favorite) error {
	_, err := r.coll.InsertOne(ctx, mongoFavorite{
		UserID:    f.UserID,
		ContentID: f.ContentID,
		CreatedAt: f.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrFavoriteExists
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

func (r *MongoFavoritesRepository) Remove(ctx context.Context, userID, contentID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "content_id": contentID})
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}
