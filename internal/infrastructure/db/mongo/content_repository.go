package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

const contentCollection = "content_items"

// MongoContentRepository implements ports.ContentSource. List order follows
// the collection's natural insertion order so sitemap entries stay stable
// between fetches of the same page.
type MongoContentRepository struct {
	coll *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *MongoContentRepository {
	return &MongoContentRepository{coll: db.Collection(contentCollection)}
}

type mongoContent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Type      string             `bson:"type"`
	Permalink string             `bson:"permalink,omitempty"`
	Date      string             `bson:"date,omitempty"`
	Status    string             `bson:"status"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoContentRepository) ListItems(ctx context.Context, q ports.ListItemsQuery) ([]domain.ContentItem, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = domain.DefaultSitemapPerPage
	}

	opts := options.Find().
		SetSkip(int64(page-1) * int64(perPage)).
		SetLimit(int64(perPage))

	cur, err := r.coll.Find(ctx, contentQuery(q.Type, q.Status), opts)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer cur.Close(ctx)

	var items []domain.ContentItem
	for cur.Next(ctx) {
		var mc mongoContent
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode content: %w", err)
		}
		items = append(items, domain.ContentItem{
			ID:        mc.ID.Hex(),
			Title:     mc.Title,
			Type:      mc.Type,
			Permalink: mc.Permalink,
			Date:      mc.Date,
			Status:    domain.ContentStatus(mc.Status),
			CreatedAt: unixToTime(mc.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return items, nil
}

func (r *MongoContentRepository) CountItems(ctx context.Context, f ports.ContentFilter) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, contentQuery(f.Type, f.Status))
	if err != nil {
		return 0, fmt.Errorf("count content: %w", err)
	}
	return n, nil
}

func contentQuery(contentType string, status domain.ContentStatus) bson.M {
	q := bson.M{}
	if contentType != "" {
		q["type"] = contentType
	}
	if status != "" {
		q["status"] = string(status)
	}
	return q
}
