package poster

import (
	"regexp"
	"strings"
)

// TitleParts is a title split into its English/code part and its primary
// display part. EngName may be empty.
type TitleParts struct {
	EngName string `json:"engName"`
	CnName  string `json:"cnName"`
}

var (
	dotTitle    = regexp.MustCompile(`^(.+?)\s*·\s*(.+)$`)
	hyphenTitle = regexp.MustCompile(`^([A-Za-z0-9\s]+?)\s*-\s*(.+)$`)
)

// SplitTitle splits a raw title. The first matching rule wins:
//
//  1. "lead · trail", optionally wrapped in a single 【】 pair
//  2. the first " - " separator
//  3. a leading alphanumeric run followed by a bare hyphen
//  4. otherwise the whole trimmed title is the display name
func SplitTitle(raw string) TitleParts {
	name := strings.TrimSpace(raw)

	if m := dotTitle.FindStringSubmatch(unwrap(name)); m != nil {
		return TitleParts{EngName: strings.TrimSpace(m[1]), CnName: strings.TrimSpace(m[2])}
	}

	if lead, trail, ok := strings.Cut(name, " - "); ok {
		return TitleParts{EngName: strings.TrimSpace(lead), CnName: strings.TrimSpace(trail)}
	}

	if m := hyphenTitle.FindStringSubmatch(name); m != nil {
		return TitleParts{EngName: strings.TrimSpace(m[1]), CnName: strings.TrimSpace(m[2])}
	}

	return TitleParts{CnName: name}
}

// unwrap strips one enclosing 【】 pair. Titles with an unpaired or inner
// bracket are returned unchanged.
func unwrap(s string) string {
	inner, ok := strings.CutPrefix(s, "【")
	if !ok {
		return s
	}
	inner, ok = strings.CutSuffix(inner, "】")
	if !ok || strings.ContainsAny(inner, "【】") {
		return s
	}
	return strings.TrimSpace(inner)
}
