package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inkwell/showcase-api/internal/api/metrics"
	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

type sitemapService struct {
	source      ports.ContentSource
	contentType string
	perPage     int
	log         zerolog.Logger
}

// NewSitemapService returns a SitemapService that assembles url-set documents
// from published items of the given content type. perPage governs planning;
// non-positive values fall back to the default page size.
func NewSitemapService(source ports.ContentSource, contentType string, perPage int, log zerolog.Logger) ports.SitemapService {
	if perPage <= 0 {
		perPage = domain.DefaultSitemapPerPage
	}
	return &sitemapService{source: source, contentType: contentType, perPage: perPage, log: log}
}

// PlanPages returns ceil(totalItems/perPage) 1-based page ids. A non-positive
// perPage falls back to the default page size; a non-positive total plans no
// pages.
func (s *sitemapService) PlanPages(totalItems int64, perPage int) []int {
	if perPage <= 0 {
		perPage = domain.DefaultSitemapPerPage
	}
	if totalItems <= 0 {
		return nil
	}

	n := int((totalItems + int64(perPage) - 1) / int64(perPage))
	pages := make([]int, n)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// PlanFromSource counts published items and plans from the true total. When
// the count is unavailable the plan degrades to a single page rather than
// failing; the worst case is a sitemap that under-covers until the next
// revalidation.
func (s *sitemapService) PlanFromSource(ctx context.Context) []int {
	total, err := s.source.CountItems(ctx, ports.ContentFilter{
		Type:   s.contentType,
		Status: domain.ContentPublished,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("content count unavailable, planning a single sitemap page")
		return []int{1}
	}
	return s.PlanPages(total, s.perPage)
}

// BuildPage fetches up to perPage published items for pageID and maps them to
// sitemap entries, preserving the source's return order. Any fetch failure
// yields an empty document; the page will be rebuilt on the next revalidation
// cycle.
func (s *sitemapService) BuildPage(ctx context.Context, pageID, perPage int) domain.SitemapDocument {
	if perPage <= 0 {
		perPage = domain.DefaultSitemapPerPage
	}

	doc := domain.SitemapDocument{Page: pageID, Entries: []domain.SitemapEntry{}}

	items, err := s.source.ListItems(ctx, ports.ListItemsQuery{
		Page:    pageID,
		PerPage: perPage,
		Type:    s.contentType,
		Status:  domain.ContentPublished,
	})
	if err != nil {
		s.log.Error().Err(err).Int("page", pageID).Msg("sitemap page fetch failed, emitting empty document")
		metrics.SitemapPagesBuiltTotal.WithLabelValues("error").Inc()
		return doc
	}

	for _, item := range items {
		doc.Entries = append(doc.Entries, domain.SitemapEntry{
			URL:          item.Permalink,
			LastModified: item.Date,
		})
	}

	metrics.SitemapPagesBuiltTotal.WithLabelValues("ok").Inc()
	metrics.SitemapEntriesPerPage.Observe(float64(len(doc.Entries)))
	return doc
}
