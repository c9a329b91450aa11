package poster

import (
	"encoding/json"
	"regexp"
)

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// ParseRecord extracts the JSON payload from a raw model response and
// validates it into a Record.
//
// A ```json fenced block is preferred; without one the whole response is
// parsed. Unparseable JSON fails with EMALFORMEDJSON. A missing, null or
// mistyped field fails with ESCHEMA naming the field. Nothing is defaulted.
func ParseRecord(raw string) (*Record, error) {
	payload := raw
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		payload = m[1]
	}

	data := []byte(payload)
	if !json.Valid(data) {
		return nil, Errorf(EMALFORMEDJSON, "response is not valid JSON (%d bytes)", len(raw))
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, Errorf(ESCHEMA, "response is not a JSON object")
	}

	strs := make(map[string]string, len(RecordFields))
	lists := make(map[string][]string, 2)
	for _, f := range RecordFields {
		v, ok := obj[f.Name]
		if !ok || string(v) == "null" {
			return nil, Errorf(ESCHEMA, "required field %q is missing", f.Name)
		}
		switch f.Kind {
		case FieldString:
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return nil, Errorf(ESCHEMA, "field %q must be a string", f.Name)
			}
			strs[f.Name] = s
		case FieldStringArray:
			list, err := decodeStringArray(v)
			if err != nil {
				return nil, Errorf(ESCHEMA, "field %q must be an array of strings", f.Name)
			}
			lists[f.Name] = list
		}
	}

	return &Record{
		Name:             strs["name"],
		Tag:              strs["tag"],
		ShortDescription: strs["shortDescription"],
		Price:            strs["price"],
		Summary:          strs["summary"],
		Features:         lists["features"],
		ImageURLs:        lists["imageUrls"],
	}, nil
}

// decodeStringArray decodes a JSON array whose elements must all be strings.
// A null element is rejected.
func decodeStringArray(v json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if string(item) == "null" {
			return nil, Errorf(ESCHEMA, "null array element")
		}
		if err := json.Unmarshal(item, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
