package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/poster"
)

// posterView is the JSON printed for an analyzed page: the record plus the
// values a poster renderer derives from it.
type posterView struct {
	ID     string             `json:"id,omitempty"`
	URL    string             `json:"url"`
	Record *poster.Record     `json:"record,omitempty"`
	Title  *poster.TitleParts `json:"title,omitempty"`
	Images []string           `json:"images,omitempty"`
	Error  *errorView         `json:"error,omitempty"`
}

type errorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// newPosterView derives the title parts and display sources for rec.
// Images are capped the same way captured images are.
func newPosterView(url string, rec *poster.Record, images *poster.ImageProxy) posterView {
	v := posterView{URL: url, Record: rec}
	if rec == nil {
		return v
	}

	title := poster.SplitTitle(rec.Name)
	v.Title = &title

	set := poster.NewImageSet(rec.ImageURLs...)
	v.Images = make([]string, 0, set.Len())
	for _, ref := range set.Refs() {
		v.Images = append(v.Images, images.Resolve(ref))
	}
	return v
}

func newErrorView(url string, err error) posterView {
	code := poster.ErrorCode(err)
	return posterView{
		URL: url,
		Error: &errorView{
			Code:    code,
			Message: poster.ErrorMessage(err),
			Hint:    poster.ErrorHint(code),
		},
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// ReportError prints err and its remediation hint to w. Application errors
// print their message; other errors print in full.
func ReportError(w io.Writer, err error) {
	msg := err.Error()
	var e *poster.Error
	if errors.As(err, &e) {
		msg = e.Message
	}
	fmt.Fprintf(w, "error: %s\n", msg)
	if hint := poster.ErrorHint(poster.ErrorCode(err)); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
