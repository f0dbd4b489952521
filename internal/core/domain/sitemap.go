package domain

const (
	// MaxEntriesPerDocument is the ceiling search providers impose on a single
	// url-set document. The assembler never truncates; configuration must keep
	// the per-page size under this limit.
	MaxEntriesPerDocument = 50000

	// DefaultSitemapPerPage is the number of content items placed on one
	// sitemap page when no override is configured.
	DefaultSitemapPerPage = 10000
)

// SitemapEntry is one (url, last-modified) pair in a url-set document. Both
// fields are always string-typed; missing upstream values become "".
type SitemapEntry struct {
	URL          string `json:"url"`
	LastModified string `json:"last_modified"`
}

// SitemapDocument is an ordered, bounded url-set identified by a 1-based page id.
type SitemapDocument struct {
	Page    int            `json:"page"`
	Entries []SitemapEntry `json:"entries"`
}
