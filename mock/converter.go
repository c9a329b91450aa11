package mock

import "github.com/fwojciec/poster"

var _ poster.Converter = (*Converter)(nil)

// Converter is a mock implementation of poster.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
