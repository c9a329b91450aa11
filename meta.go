package poster

import "strings"

// PageMeta is metadata found in a page's head: title, Open Graph and
// product tags. It often survives where page chrome holding the price does not.
type PageMeta struct {
	Title       string
	Description string
	Image       string
	Price       string
	Currency    string
}

// IsZero reports whether no metadata was found.
func (m PageMeta) IsZero() bool {
	return m == PageMeta{}
}

// Header renders the metadata as a compact block placed ahead of page content.
func (m PageMeta) Header() string {
	if m.IsZero() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<page-meta>\n")
	writeMeta(&sb, "title", m.Title)
	writeMeta(&sb, "description", m.Description)
	writeMeta(&sb, "image", m.Image)
	writeMeta(&sb, "price", strings.TrimSpace(m.Price+" "+m.Currency))
	sb.WriteString("</page-meta>\n")
	return sb.String()
}

func writeMeta(sb *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	sb.WriteString(key)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

// MetaScanner reads PageMeta from raw HTML.
type MetaScanner interface {
	Scan(html string) PageMeta
}
