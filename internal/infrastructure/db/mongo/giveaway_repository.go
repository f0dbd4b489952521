package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

const (
	giveawaysCollection = "giveaways"
	entriesCollection   = "giveaway_entries"
)

// MongoGiveawayRepository persists giveaways and their entries. The entries
// collection carries a unique index on (giveaway_id, user_id); a duplicate
// insert maps to ErrAlreadyEntered.
type MongoGiveawayRepository struct {
	giveaways *mongo.Collection
	entries   *mongo.Collection
}

func NewGiveawayRepository(db *mongo.Database) *MongoGiveawayRepository {
	return &MongoGiveawayRepository{
		giveaways: db.Collection(giveawaysCollection),
		entries:   db.Collection(entriesCollection),
	}
}

// EnsureIndexes creates the unique entry index. Call once at startup.
func (r *MongoGiveawayRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.entries.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "giveaway_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure entry index: %w", err)
	}
	return nil
}

type mongoGiveaway struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Prize       string             `bson:"prize"`
	Description string             `bson:"description,omitempty"`
	StartsAt    time.Time          `bson:"starts_at"`
	EndsAt      time.Time          `bson:"ends_at"`
	CreatedBy   string             `bson:"created_by"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r *MongoGiveawayRepository) Create(ctx context.Context, g *domain.Giveaway) (*domain.Giveaway, error) {
	doc := mongoGiveaway{
		Title:       g.Title,
		Prize:       g.Prize,
		Description: g.Description,
		StartsAt:    g.StartsAt,
		EndsAt:      g.EndsAt,
		CreatedBy:   g.CreatedBy,
		CreatedAt:   g.CreatedAt,
	}

	res, err := r.giveaways.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert giveaway: %w", err)
	}

	created := *g
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoGiveawayRepository) FindByID(ctx context.Context, id string) (*domain.Giveaway, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGiveawayNotFound
	}

	var mg mongoGiveaway
	if err := r.giveaways.FindOne(ctx, bson.M{"_id": oid}).Decode(&mg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrGiveawayNotFound
		}
		return nil, fmt.Errorf("find giveaway: %w", err)
	}
	return mg.toDomain(), nil
}

func (r *MongoGiveawayRepository) ListActive(ctx context.Context, at time.Time) ([]*domain.Giveaway, error) {
	filter := bson.M{
		"starts_at": bson.M{"$lte": at},
		"ends_at":   bson.M{"$gt": at},
	}

	cur, err := r.giveaways.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list giveaways: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Giveaway
	for cur.Next(ctx) {
		var mg mongoGiveaway
		if err := cur.Decode(&mg); err != nil {
			return nil, fmt.Errorf("decode giveaway: %w", err)
		}
		out = append(out, mg.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list giveaways: %w", err)
	}
	return out, nil
}

func (r *MongoGiveawayRepository) InsertEntry(ctx context.Context, e *domain.GiveawayEntry) error {
	_, err := r.entries.InsertOne(ctx, bson.M{
		"giveaway_id": e.GiveawayID,
		"user_id":     e.UserID,
		"entered_at":  e.EnteredAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyEntered
		}
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

func (mg *mongoGiveaway) toDomain() *domain.Giveaway {
	return &domain.Giveaway{
		ID:          mg.ID.Hex(),
		Title:       mg.Title,
		Prize:       mg.Prize,
		Description: mg.Description,
		StartsAt:    mg.StartsAt,
		EndsAt:      mg.EndsAt,
		CreatedBy:   mg.CreatedBy,
		CreatedAt:   mg.CreatedAt,
	}
}
