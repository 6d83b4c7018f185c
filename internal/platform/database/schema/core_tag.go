package schema

// CoreTagTable represents the 'core.tag' table
type CoreTagTable struct {
	Table   string
	ID      string
	Name    string
	Type    string
	SerieID string
}

// CoreTag is the schema definition for core.tag
//
// Tags carry a discriminant on the value side: type GENERAL is a regular
// tag, type PERSON is a person credit. Both share the core.booktag junction.
var CoreTag = CoreTagTable{
	Table:   "core.tag",
	ID:      "id",
	Name:    "name",
	Type:    "type",
	SerieID: "serieid",
}
