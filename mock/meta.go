package mock

import "github.com/fwojciec/poster"

var _ poster.MetaScanner = (*MetaScanner)(nil)

// MetaScanner is a mock implementation of poster.MetaScanner.
type MetaScanner struct {
	ScanFn func(html string) poster.PageMeta
}

func (s *MetaScanner) Scan(html string) poster.PageMeta {
	return s.ScanFn(html)
}
