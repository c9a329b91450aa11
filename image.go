package poster

import (
	"net/url"
	"strconv"
	"strings"
)

// CaptureCap is the maximum number of image references kept per poster.
const CaptureCap = 3

// Image proxy defaults.
const (
	DefaultImageProxy   = "https://wsrv.nl/"
	DefaultImageQuality = 90
)

// ImageProxy rewrites remote image URLs through a cross-origin-safe image
// proxy so that rendered posters can be exported without a tainted canvas.
type ImageProxy struct {
	Endpoint string
	Quality  int
}

// NewImageProxy returns an ImageProxy with the default endpoint and quality.
func NewImageProxy() *ImageProxy {
	return &ImageProxy{Endpoint: DefaultImageProxy, Quality: DefaultImageQuality}
}

// IsLocalImageRef reports whether ref points at a locally created blob or an
// inline data URI.
func IsLocalImageRef(ref string) bool {
	return strings.HasPrefix(ref, "blob:") || strings.HasPrefix(ref, "data:")
}

// Resolve returns the source a renderer should load for ref. Local refs are
// returned unchanged. Remote refs have their scheme stripped and are passed
// to the proxy endpoint as the url query parameter.
func (p *ImageProxy) Resolve(ref string) string {
	if ref == "" || IsLocalImageRef(ref) {
		return ref
	}

	stripped := ref
	if i := strings.Index(stripped, "://"); i >= 0 {
		stripped = stripped[i+3:]
	} else {
		stripped = strings.TrimPrefix(stripped, "//")
	}

	q := url.Values{}
	q.Set("url", stripped)
	if p.Quality > 0 {
		q.Set("q", strconv.Itoa(p.Quality))
	}

	endpoint := p.Endpoint
	if endpoint == "" {
		endpoint = DefaultImageProxy
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + q.Encode()
}

// MergeCaptured appends incoming after existing, preserving arrival order,
// and keeps the first CaptureCap entries. The inputs are not modified.
func MergeCaptured(existing, incoming []string) []string {
	merged := make([]string, 0, CaptureCap)
	for _, list := range [][]string{existing, incoming} {
		for _, ref := range list {
			if len(merged) == CaptureCap {
				return merged
			}
			merged = append(merged, ref)
		}
	}
	return merged
}

// ImageSet holds the image references captured for the current poster.
// It is seeded from a Record's ImageURLs and grows with pasted or uploaded
// images until CaptureCap is reached. ImageSet is not safe for concurrent use.
type ImageSet struct {
	refs []string
}

// NewImageSet returns an ImageSet seeded with refs.
func NewImageSet(seed ...string) *ImageSet {
	s := &ImageSet{}
	s.Add(seed...)
	return s
}

// Add appends refs, dropping whatever exceeds the cap.
func (s *ImageSet) Add(refs ...string) {
	s.refs = MergeCaptured(s.refs, refs)
}

// Clear empties the set so the next capture starts the cap count over.
func (s *ImageSet) Clear() {
	s.refs = nil
}

// Refs returns a copy of the current references.
func (s *ImageSet) Refs() []string {
	return append([]string{}, s.refs...)
}

// Len returns the number of references held.
func (s *ImageSet) Len() int {
	return len(s.refs)
}
