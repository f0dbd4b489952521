package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// DocumentStore is where rendered sitemap pages land (Redis cache).
type DocumentStore interface {
	Put(ctx context.Context, name string, page int, body string) error
}

// RenderFunc serializes an assembled document to its wire form.
type RenderFunc func(doc domain.SitemapDocument) (string, error)

// Revalidator periodically rebuilds every planned sitemap page and refreshes
// the document store. Pages shard deterministically across a fixed set of
// workers, so a slow page never stalls the rest of the sweep.
type Revalidator struct {
	name     string
	service  ports.SitemapService
	store    DocumentStore
	render   RenderFunc
	perPage  int
	interval time.Duration
	workers  []chan int
	log      zerolog.Logger
}

// NewRevalidator creates a Revalidator with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewRevalidator(
	name string,
	service ports.SitemapService,
	store DocumentStore,
	render RenderFunc,
	perPage int,
	interval time.Duration,
	numWorkers int,
	log zerolog.Logger,
) *Revalidator {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if perPage <= 0 {
		perPage = domain.DefaultSitemapPerPage
	}
	r := &Revalidator{
		name:     name,
		service:  service,
		store:    store,
		render:   render,
		perPage:  perPage,
		interval: interval,
		workers:  make([]chan int, numWorkers),
		log:      log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan int, channelBuffer)
	}
	return r
}

// Start launches the worker goroutines and the sweep ticker. Everything stops
// when ctx is cancelled. The first sweep runs immediately.
func (r *Revalidator) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
	go r.runSweeps(ctx)
}

// Enqueue schedules one page for rebuild. Non-blocking up to channelBuffer.
func (r *Revalidator) Enqueue(page int) {
	r.workers[r.shardIndex(page)] <- page
}

func (r *Revalidator) runSweeps(ctx context.Context) {
	r.sweep(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Revalidator) sweep(ctx context.Context) {
	pages := r.service.PlanFromSource(ctx)
	r.log.Info().Int("pages", len(pages)).Str("sitemap", r.name).Msg("sitemap sweep planned")
	for _, p := range pages {
		r.Enqueue(p)
	}
}

// shardIndex maps a page id deterministically to a worker index.
func (r *Revalidator) shardIndex(page int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.Itoa(page)))
	return int(h.Sum32()) % len(r.workers)
}

func (r *Revalidator) runWorker(ctx context.Context, id int, ch <-chan int) {
	for {
		select {
		case <-ctx.Done():
			return
		case page, ok := <-ch:
			if !ok {
				return
			}
			r.rebuild(ctx, id, page)
		}
	}
}

func (r *Revalidator) rebuild(ctx context.Context, workerID, page int) {
	doc := r.service.BuildPage(ctx, page, r.perPage)

	body, err := r.render(doc)
	if err != nil {
		r.log.Error().Err(err).Int("page", page).Int("worker_id", workerID).Msg("sitemap render failed")
		return
	}

	if err := r.store.Put(ctx, r.name, page, body); err != nil {
		r.log.Error().Err(err).Int("page", page).Int("worker_id", workerID).Msg("sitemap store failed")
	}
}
