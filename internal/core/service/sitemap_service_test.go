package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

type stubContentSource struct {
	items    []domain.ContentItem
	listErr  error
	count    int64
	countErr error
	lastList ports.ListItemsQuery
}

func (s *stubContentSource) ListItems(_ context.Context, q ports.ListItemsQuery) ([]domain.ContentItem, error) {
	s.lastList = q
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *stubContentSource) CountItems(_ context.Context, _ ports.ContentFilter) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.count, nil
}

func TestSitemapService_PlanPages(t *testing.T) {
	svc := NewSitemapService(&stubContentSource{}, "work", 10000, zerolog.Nop())

	cases := []struct {
		name    string
		total   int64
		perPage int
		want    []int
	}{
		{"exact multiple", 20000, 10000, []int{1, 2}},
		{"rounds up", 25000, 10000, []int{1, 2, 3}},
		{"single partial page", 1, 10000, []int{1}},
		{"zero items", 0, 10000, nil},
		{"negative items", -5, 10000, nil},
	}

	for _, tc := range cases {
		got := svc.PlanPages(tc.total, tc.perPage)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
			}
		}
	}
}

func TestSitemapService_PlanPages_DefaultPerPage(t *testing.T) {
	svc := NewSitemapService(&stubContentSource{}, "work", 10000, zerolog.Nop())

	got := svc.PlanPages(25000, 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 pages with default per-page, got %v", got)
	}
}

func TestSitemapService_PlanFromSource(t *testing.T) {
	source := &stubContentSource{count: 25000}
	svc := NewSitemapService(source, "work", 10000, zerolog.Nop())

	got := svc.PlanFromSource(context.Background())
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
}

func TestSitemapService_PlanFromSource_CountUnavailable(t *testing.T) {
	source := &stubContentSource{countErr: errors.New("count timeout")}
	svc := NewSitemapService(source, "work", 10000, zerolog.Nop())

	got := svc.PlanFromSource(context.Background())
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected the single-page fallback, got %v", got)
	}
}

func TestSitemapService_BuildPage_PreservesOrder(t *testing.T) {
	source := &stubContentSource{items: []domain.ContentItem{
		{Permalink: "/a", Date: "2024-01-01"},
		{Permalink: "/b", Date: "2024-01-02"},
		{Permalink: "/c", Date: "2024-01-03"},
	}}
	svc := NewSitemapService(source, "work", 10000, zerolog.Nop())

	doc := svc.BuildPage(context.Background(), 1, 10000)
	if doc.Page != 1 {
		t.Fatalf("expected page 1, got %d", doc.Page)
	}
	if len(doc.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(doc.Entries))
	}

	want := []domain.SitemapEntry{
		{URL: "/a", LastModified: "2024-01-01"},
		{URL: "/b", LastModified: "2024-01-02"},
		{URL: "/c", LastModified: "2024-01-03"},
	}
	for i, e := range doc.Entries {
		if e != want[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], e)
		}
	}

	if source.lastList.Status != domain.ContentPublished {
		t.Fatalf("expected published filter, got %q", source.lastList.Status)
	}
	if source.lastList.Page != 1 || source.lastList.PerPage != 10000 {
		t.Fatalf("unexpected paging: %+v", source.lastList)
	}
}

func TestSitemapService_BuildPage_SourceError(t *testing.T) {
	source := &stubContentSource{listErr: errors.New("upstream down")}
	svc := NewSitemapService(source, "work", 10000, zerolog.Nop())

	doc := svc.BuildPage(context.Background(), 2, 10000)
	if doc.Page != 2 {
		t.Fatalf("expected page id preserved, got %d", doc.Page)
	}
	if doc.Entries == nil {
		t.Fatalf("entries must be an empty slice, not nil")
	}
	if len(doc.Entries) != 0 {
		t.Fatalf("expected empty document on source error, got %d entries", len(doc.Entries))
	}
}

func TestSitemapService_BuildPage_MissingFields(t *testing.T) {
	source := &stubContentSource{items: []domain.ContentItem{
		{Permalink: "", Date: ""},
		{Permalink: "/only-url", Date: ""},
		{Permalink: "", Date: "2024-06-01"},
	}}
	svc := NewSitemapService(source, "work", 10000, zerolog.Nop())

	doc := svc.BuildPage(context.Background(), 1, 10000)
	if len(doc.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(doc.Entries))
	}
	if doc.Entries[0].URL != "" || doc.Entries[0].LastModified != "" {
		t.Fatalf("missing fields must map to empty strings, got %+v", doc.Entries[0])
	}
	if doc.Entries[1].URL != "/only-url" || doc.Entries[2].LastModified != "2024-06-01" {
		t.Fatalf("present fields must survive: %+v", doc.Entries)
	}
}
