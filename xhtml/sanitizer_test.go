package xhtml_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/poster"
	"github.com/fwojciec/poster/xhtml"
	"github.com/stretchr/testify/assert"
)

// Ensure Sanitizer implements poster.Sanitizer at compile time.
var _ poster.Sanitizer = (*xhtml.Sanitizer)(nil)

func TestSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	t.Run("removes inline script content", func(t *testing.T) {
		t.Parallel()

		src := `<p>Price: $10</p><script>var secret = "tracking-pixel";</script><p>After</p>`

		got := xhtml.NewSanitizer().Sanitize(src)

		assert.Equal(t, `<p>Price: $10</p><p>After</p>`, got)
		assert.NotContains(t, got, "tracking-pixel")
	})

	t.Run("removes script containing markup-like text", func(t *testing.T) {
		t.Parallel()

		src := `<div>a</div><script>if (a < b) { document.write("</div>"); }</script><div>b</div>`

		got := xhtml.NewSanitizer().Sanitize(src)

		assert.Equal(t, `<div>a</div><div>b</div>`, got)
	})

	t.Run("removes style elements", func(t *testing.T) {
		t.Parallel()

		src := `<head><style type="text/css">.price { color: red }</style></head><body>ok</body>`

		got := xhtml.NewSanitizer().Sanitize(src)

		assert.Equal(t, `<head></head><body>ok</body>`, got)
	})

	t.Run("removes comments", func(t *testing.T) {
		t.Parallel()

		src := `<p>one</p><!-- build 1234 --><p>two</p>`

		got := xhtml.NewSanitizer().Sanitize(src)

		assert.Equal(t, `<p>one</p><p>two</p>`, got)
	})

	t.Run("removes nested svg", func(t *testing.T) {
		t.Parallel()

		src := `<span>icon:</span><svg viewBox="0 0 10 10"><svg><path d="M0 0"/></svg><text>label</text></svg><span>end</span>`

		got := xhtml.NewSanitizer().Sanitize(src)

		assert.Equal(t, `<span>icon:</span><span>end</span>`, got)
	})

	t.Run("removes self-closing svg", func(t *testing.T) {
		t.Parallel()

		got := xhtml.NewSanitizer().Sanitize(`<a>x</a><svg/><a>y</a>`)

		assert.Equal(t, `<a>x</a><a>y</a>`, got)
	})

	t.Run("removes content after self-closing script", func(t *testing.T) {
		t.Parallel()

		src := `<p>a</p><script src="x.js"/>payload()</script><p>b</p>`

		got := xhtml.NewSanitizer().Sanitize(src)

		assert.Equal(t, `<p>a</p><p>b</p>`, got)
		assert.NotContains(t, got, "payload")
	})

	t.Run("removes content after self-closing style", func(t *testing.T) {
		t.Parallel()

		src := `<p>a</p><style/>.hidden{display:none}</style><p>b</p>`

		got := xhtml.NewSanitizer().Sanitize(src)

		assert.Equal(t, `<p>a</p><p>b</p>`, got)
	})

	t.Run("keeps other markup byte for byte", func(t *testing.T) {
		t.Parallel()

		src := "<!DOCTYPE html>\n<DIV Class=\"sidebar\">\n  <b>Price:</b> ¥99 &amp; up<br>\n</DIV>"

		got := xhtml.NewSanitizer().Sanitize(src)

		assert.Equal(t, src, got)
	})

	t.Run("uppercase script tags are removed", func(t *testing.T) {
		t.Parallel()

		got := xhtml.NewSanitizer().Sanitize(`<p>a</p><SCRIPT>alert(1)</SCRIPT><p>b</p>`)

		assert.Equal(t, `<p>a</p><p>b</p>`, got)
	})

	t.Run("unterminated script drops the rest", func(t *testing.T) {
		t.Parallel()

		got := xhtml.NewSanitizer().Sanitize(`<p>a</p><script>never closed`)

		assert.Equal(t, `<p>a</p>`, got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, xhtml.NewSanitizer().Sanitize(""))
	})

	t.Run("plain text passes through", func(t *testing.T) {
		t.Parallel()

		src := "# Markdown title\n\nSome *text*."

		assert.Equal(t, src, xhtml.NewSanitizer().Sanitize(src))
	})

	t.Run("large documents shrink", func(t *testing.T) {
		t.Parallel()

		src := "<p>keep</p>" + "<script>" + strings.Repeat("x", 10000) + "</script>"

		got := xhtml.NewSanitizer().Sanitize(src)

		assert.Equal(t, "<p>keep</p>", got)
	})
}
