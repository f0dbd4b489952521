package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/showcase-api/internal/api/metrics"
	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

// DocumentCache is the read/write interface to the serialized sitemap store.
type DocumentCache interface {
	Get(ctx context.Context, name string, page int) (string, bool, error)
	Put(ctx context.Context, name string, page int, body string) error
}

// SitemapHandler serves the crawler-facing sitemap endpoints. Pages come from
// the cache when fresh; on a miss the document is assembled inline and cached
// for the next revalidation window.
type SitemapHandler struct {
	service ports.SitemapService
	cache   DocumentCache
	render  func(domain.SitemapDocument) (string, error)
	baseURL string
	name    string
	perPage int
}

func NewSitemapHandler(
	service ports.SitemapService,
	cache DocumentCache,
	render func(domain.SitemapDocument) (string, error),
	baseURL, name string,
	perPage int,
) *SitemapHandler {
	if perPage <= 0 {
		perPage = domain.DefaultSitemapPerPage
	}
	return &SitemapHandler{
		service: service,
		cache:   cache,
		render:  render,
		baseURL: baseURL,
		name:    name,
		perPage: perPage,
	}
}

// Index handles GET /sitemap.xml — the sitemap index listing every url-set page.
//
// @Summary      Sitemap index
// @Tags         sitemaps
// @Produce      xml
// @Success      200  {string}  string
// @Router       /sitemap.xml [get]
func (h *SitemapHandler) Index(c echo.Context) error {
	pages := h.service.PlanFromSource(c.Request().Context())

	body, err := renderSitemapIndex(h.baseURL, h.name, pages)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationXML, []byte(body))
}

// Page handles GET /sitemaps/:name/:page — one url-set document.
//
// @Summary      Sitemap url-set page
// @Tags         sitemaps
// @Produce      xml
// @Param        page  path      int  true  "1-based page id"
// @Success      200   {string}  string
// @Failure      404   {object}  errorResponse
// @Router       /sitemaps/content/{page} [get]
func (h *SitemapHandler) Page(c echo.Context) error {
	raw := strings.TrimSuffix(c.Param("page"), ".xml")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return echo.NewHTTPError(http.StatusNotFound, "unknown sitemap page")
	}

	ctx := c.Request().Context()

	if body, ok, err := h.cache.Get(ctx, h.name, page); err == nil && ok {
		metrics.SitemapCacheTotal.WithLabelValues("hit").Inc()
		return c.Blob(http.StatusOK, echo.MIMEApplicationXML, []byte(body))
	}
	metrics.SitemapCacheTotal.WithLabelValues("miss").Inc()

	doc := h.service.BuildPage(ctx, page, h.perPage)
	body, err := h.render(doc)
	if err != nil {
		return err
	}

	// Best effort; a failed write just means the next request rebuilds too.
	_ = h.cache.Put(ctx, h.name, page, body)

	return c.Blob(http.StatusOK, echo.MIMEApplicationXML, []byte(body))
}
