// Copyright (c) 2026 Kasane. All rights reserved.

/*
Package sitemap renders the crawl surface of the catalog.

The surface is two-tiered: a sitemapindex lists the static pages plus one
sitemap per book, and each book sitemap lists its ACTIVE chapters. Both
documents are realm-segregated the same way the catalog is: the restricted
domain's sitemaps never reference the public domain's books.

Documents are rendered with encoding/xml against the sitemaps.org 0.9
schema and cached in redis; crawlers hit these endpoints in bursts and the
underlying data changes far slower than the cache TTL.
*/
package sitemap

import (
	"encoding/xml"
	"fmt"
	"time"
)

// xmlns is the sitemaps.org protocol namespace, required on both roots.
const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// # Document Shapes

// IndexEntry is one <sitemap> element of the index document.
type IndexEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Index is the <sitemapindex> root document.
type Index struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	XMLNS    string       `xml:"xmlns,attr"`
	Sitemaps []IndexEntry `xml:"sitemap"`
}

// URLEntry is one <url> element of a urlset document.
type URLEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// URLSet is the <urlset> root document.
type URLSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []URLEntry `xml:"url"`
}

// # Rendering

// lastMod formats a timestamp as the W3C date form crawlers expect.
func lastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// render marshals a document with the XML declaration prepended.
func render(document any) ([]byte, error) {
	body, err := xml.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sitemap: failed to marshal document: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}
