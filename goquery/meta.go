// Package goquery implements poster.MetaScanner using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/poster"
)

// Ensure MetaScanner implements poster.MetaScanner at compile time.
var _ poster.MetaScanner = (*MetaScanner)(nil)

// MetaScanner reads title, Open Graph, product and schema.org price metadata
// from a page. Pages that render their price with JavaScript usually still
// carry it in one of these tags.
type MetaScanner struct{}

// NewMetaScanner creates a new MetaScanner.
func NewMetaScanner() *MetaScanner {
	return &MetaScanner{}
}

// Scan returns the metadata found in html. Unparseable input yields an empty
// PageMeta.
func (s *MetaScanner) Scan(html string) poster.PageMeta {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return poster.PageMeta{}
	}

	return poster.PageMeta{
		Title: s.first(
			s.metaContent(doc, `meta[property="og:title"]`),
			s.metaContent(doc, `meta[name="twitter:title"]`),
			s.text(doc, "head title"),
		),
		Description: s.first(
			s.metaContent(doc, `meta[property="og:description"]`),
			s.metaContent(doc, `meta[name="description"]`),
		),
		Image: s.first(
			s.metaContent(doc, `meta[property="og:image"]`),
			s.metaContent(doc, `meta[property="og:image:url"]`),
			s.metaContent(doc, `meta[name="twitter:image"]`),
		),
		Price: s.first(
			s.metaContent(doc, `meta[property="product:price:amount"]`),
			s.metaContent(doc, `meta[property="og:price:amount"]`),
			s.metaContent(doc, `meta[itemprop="price"]`),
			s.attr(doc, `[itemprop="price"]`, "content"),
			s.text(doc, `[itemprop="price"]`),
		),
		Currency: s.first(
			s.metaContent(doc, `meta[property="product:price:currency"]`),
			s.metaContent(doc, `meta[property="og:price:currency"]`),
			s.metaContent(doc, `meta[itemprop="priceCurrency"]`),
			s.attr(doc, `[itemprop="priceCurrency"]`, "content"),
		),
	}
}

func (s *MetaScanner) metaContent(doc *goquery.Document, selector string) string {
	return s.attr(doc, selector, "content")
}

func (s *MetaScanner) attr(doc *goquery.Document, selector, name string) string {
	v, _ := doc.Find(selector).First().Attr(name)
	return collapse(v)
}

func (s *MetaScanner) text(doc *goquery.Document, selector string) string {
	return collapse(doc.Find(selector).First().Text())
}

// first returns the first non-empty value.
func (s *MetaScanner) first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// collapse trims v and folds internal whitespace runs into single spaces.
func collapse(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
