package domain

import "time"

// ContentStatus represents the publication state of a content item.
type ContentStatus string

const (
	ContentDraft     ContentStatus = "draft"
	ContentPublished ContentStatus = "published"
	ContentArchived  ContentStatus = "archived"
)

// ContentItem is a single piece of crawlable site content (article, work,
// gallery page). Date is kept as the raw string the source recorded; it is
// surfaced verbatim in sitemap entries.
type ContentItem struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Title     string        `json:"title" bson:"title"`
	Type      string        `json:"type" bson:"type"`
	Permalink string        `json:"permalink" bson:"permalink"`
	Date      string        `json:"date" bson:"date"`
	Status    ContentStatus `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}
