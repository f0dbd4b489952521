package ports

import (
	"context"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

// SitemapService assembles bounded url-set documents from the content source.
type SitemapService interface {
	// PlanPages returns the 1-based page ids needed to cover totalItems at
	// perPage items per document.
	PlanPages(totalItems int64, perPage int) []int

	// PlanFromSource counts published items and plans pages from the true
	// total. When the count is unavailable it plans a single page.
	PlanFromSource(ctx context.Context) []int

	// BuildPage assembles the url-set for one page. Upstream failures yield an
	// empty document, never an error.
	BuildPage(ctx context.Context, pageID, perPage int) domain.SitemapDocument
}
