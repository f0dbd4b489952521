package queue

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

type stubSitemapService struct {
	pages    []int
	entries  []domain.SitemapEntry
	buildErr bool
}

func (s *stubSitemapService) PlanPages(totalItems int64, perPage int) []int { return s.pages }
func (s *stubSitemapService) PlanFromSource(_ context.Context) []int       { return s.pages }
func (s *stubSitemapService) BuildPage(_ context.Context, pageID, _ int) domain.SitemapDocument {
	if s.buildErr {
		return domain.SitemapDocument{Page: pageID, Entries: []domain.SitemapEntry{}}
	}
	return domain.SitemapDocument{Page: pageID, Entries: s.entries}
}

type memoryStore struct {
	mu   sync.Mutex
	docs map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string]string)}
}

func (s *memoryStore) Put(_ context.Context, name string, page int, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name+":"+strconv.Itoa(page)] = body
	return nil
}

func (s *memoryStore) get(name string, page int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.docs[name+":"+strconv.Itoa(page)]
	return body, ok
}

func renderPageID(doc domain.SitemapDocument) (string, error) {
	return "page-" + strconv.Itoa(doc.Page), nil
}

func TestRevalidator_RebuildStoresRenderedPage(t *testing.T) {
	svc := &stubSitemapService{entries: []domain.SitemapEntry{{URL: "/a"}}}
	store := newMemoryStore()
	r := NewRevalidator("content", svc, store, renderPageID, 10000, time.Hour, 2, zerolog.Nop())

	r.rebuild(context.Background(), 0, 3)

	body, ok := store.get("content", 3)
	if !ok {
		t.Fatalf("rebuilt page not stored")
	}
	if body != "page-3" {
		t.Fatalf("unexpected stored body: %q", body)
	}
}

func TestRevalidator_RenderFailureSkipsStore(t *testing.T) {
	svc := &stubSitemapService{}
	store := newMemoryStore()
	failing := func(domain.SitemapDocument) (string, error) {
		return "", errors.New("marshal failed")
	}
	r := NewRevalidator("content", svc, store, failing, 10000, time.Hour, 2, zerolog.Nop())

	r.rebuild(context.Background(), 0, 1)

	if _, ok := store.get("content", 1); ok {
		t.Fatalf("failed render must not overwrite the store")
	}
}

func TestRevalidator_SweepEnqueuesEveryPlannedPage(t *testing.T) {
	svc := &stubSitemapService{pages: []int{1, 2, 3, 4, 5}}
	r := NewRevalidator("content", svc, newMemoryStore(), renderPageID, 10000, time.Hour, 3, zerolog.Nop())

	r.sweep(context.Background())

	seen := make(map[int]bool)
	for _, ch := range r.workers {
		for {
			select {
			case p := <-ch:
				seen[p] = true
				continue
			default:
			}
			break
		}
	}
	for _, p := range svc.pages {
		if !seen[p] {
			t.Fatalf("page %d not enqueued; got %v", p, seen)
		}
	}
}

func TestRevalidator_ShardIndexIsDeterministic(t *testing.T) {
	r := NewRevalidator("content", &stubSitemapService{}, newMemoryStore(), renderPageID, 10000, time.Hour, 4, zerolog.Nop())

	for page := 1; page <= 20; page++ {
		a := r.shardIndex(page)
		b := r.shardIndex(page)
		if a != b {
			t.Fatalf("shard index for page %d not stable: %d vs %d", page, a, b)
		}
		if a < 0 || a >= len(r.workers) {
			t.Fatalf("shard index out of range: %d", a)
		}
	}
}

func TestRevalidator_WorkersDrainUnderStart(t *testing.T) {
	svc := &stubSitemapService{pages: []int{1, 2, 3}, entries: []domain.SitemapEntry{{URL: "/a"}}}
	store := newMemoryStore()
	r := NewRevalidator("content", svc, store, renderPageID, 10000, time.Hour, 2, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	deadline := time.After(2 * time.Second)
	for {
		done := true
		for _, p := range svc.pages {
			if _, ok := store.get("content", p); !ok {
				done = false
				break
			}
		}
		if done {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("pages not rebuilt before deadline")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
