package handler

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// urlSetXML is the sitemaps.org url-set wire form.
type urlSetXML struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// sitemapIndexXML is the sitemaps.org index wire form.
type sitemapIndexXML struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	XMLNS    string       `xml:"xmlns,attr"`
	Sitemaps []sitemapXML `xml:"sitemap"`
}

type sitemapXML struct {
	Loc string `xml:"loc"`
}

// NewURLSetRenderer returns a renderer that serializes a document to
// sitemaps.org XML. Relative permalinks are prefixed with baseURL; empty
// permalinks stay empty rather than becoming the site root.
func NewURLSetRenderer(baseURL string) func(domain.SitemapDocument) (string, error) {
	base := strings.TrimRight(baseURL, "/")
	return func(doc domain.SitemapDocument) (string, error) {
		set := urlSetXML{XMLNS: sitemapXMLNS, URLs: make([]urlXML, 0, len(doc.Entries))}
		for _, e := range doc.Entries {
			set.URLs = append(set.URLs, urlXML{
				Loc:     absoluteURL(base, e.URL),
				LastMod: e.LastModified,
			})
		}
		return marshalSitemap(set)
	}
}

// renderSitemapIndex serializes the index document pointing at every planned
// url-set page.
func renderSitemapIndex(baseURL, name string, pages []int) (string, error) {
	base := strings.TrimRight(baseURL, "/")
	idx := sitemapIndexXML{XMLNS: sitemapXMLNS, Sitemaps: make([]sitemapXML, 0, len(pages))}
	for _, p := range pages {
		idx.Sitemaps = append(idx.Sitemaps, sitemapXML{
			Loc: fmt.Sprintf("%s/sitemaps/%s/%d", base, name, p),
		})
	}
	return marshalSitemap(idx)
}

func marshalSitemap(v any) (string, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sitemap: %w", err)
	}
	return xml.Header + string(body), nil
}

func absoluteURL(base, permalink string) string {
	if permalink == "" {
		return ""
	}
	if strings.HasPrefix(permalink, "http://") || strings.HasPrefix(permalink, "https://") {
		return permalink
	}
	if !strings.HasPrefix(permalink, "/") {
		permalink = "/" + permalink
	}
	return base + permalink
}
