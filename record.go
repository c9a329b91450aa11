package poster

// Record is the validated poster data extracted from a page.
// Features and ImageURLs are never nil on a Record returned by ParseRecord.
type Record struct {
	Name             string   `json:"name"`
	Tag              string   `json:"tag"`
	ShortDescription string   `json:"shortDescription"`
	Price            string   `json:"price"`
	Summary          string   `json:"summary"`
	Features         []string `json:"features"`
	ImageURLs        []string `json:"imageUrls"`
}

// Field kinds used by RecordFields.
const (
	FieldString      = "string"
	FieldStringArray = "string_array"
)

// RecordField describes one required Record field as it appears on the wire.
type RecordField struct {
	Name string
	Kind string
}

// RecordFields lists the required fields of a Record in wire order.
// Both the extraction schema and ParseRecord are derived from it.
var RecordFields = []RecordField{
	{Name: "name", Kind: FieldString},
	{Name: "tag", Kind: FieldString},
	{Name: "shortDescription", Kind: FieldString},
	{Name: "price", Kind: FieldString},
	{Name: "summary", Kind: FieldString},
	{Name: "features", Kind: FieldStringArray},
	{Name: "imageUrls", Kind: FieldStringArray},
}
