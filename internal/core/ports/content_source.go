package ports

import (
	"context"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

// ListItemsQuery carries the paging and filter parameters for a content fetch.
type ListItemsQuery struct {
	Page    int // 1-based
	PerPage int
	Type    string               // optional: filter by content type
	Status  domain.ContentStatus // optional: filter by publication state
}

// ContentFilter narrows a content count.
type ContentFilter struct {
	Type   string
	Status domain.ContentStatus
}

// ContentSource is the external collaborator the sitemap assembler and the
// public content endpoints read from. Items come back in the source's own
// order; callers must not assume any particular sort.
type ContentSource interface {
	ListItems(ctx context.Context, q ListItemsQuery) ([]domain.ContentItem, error)
	CountItems(ctx context.Context, f ContentFilter) (int64, error)
}
