package schema

// SerieBookTable represents the 'core.seriebook' table
type SerieBookTable struct {
	Table   string
	SerieID string
	BookID  string
}

// SerieBook is the schema definition for core.seriebook
var SerieBook = SerieBookTable{
	Table:   "core.seriebook",
	SerieID: "serieid",
	BookID:  "bookid",
}
