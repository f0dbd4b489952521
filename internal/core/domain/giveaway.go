package domain

import "time"

// Giveaway is a time-bounded promotion users can enter once.
type Giveaway struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Prize       string    `json:"prize" bson:"prize"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at" bson:"starts_at"`
	EndsAt      time.Time `json:"ends_at" bson:"ends_at"`
	CreatedBy   string    `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Open reports whether the giveaway accepts entries at the given instant.
func (g *Giveaway) Open(at time.Time) bool {
	return !at.Before(g.StartsAt) && at.Before(g.EndsAt)
}

// GiveawayEntry records one user's entry into a giveaway.
type GiveawayEntry struct {
	GiveawayID string    `json:"giveaway_id" bson:"giveaway_id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	EnteredAt  time.Time `json:"entered_at" bson:"entered_at"`
}

// Favorite marks a content item as favorited by a user.
type Favorite struct {
	UserID    string    `json:"user_id" bson:"user_id"`
	ContentID string    `json:"content_id" bson:"content_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
