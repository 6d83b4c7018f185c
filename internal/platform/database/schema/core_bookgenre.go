package schema

// BookGenreTable represents the 'core.bookgenre' table
//
// The composite primary key (bookid, genreid) guarantees at most one row per
// pair. The facet resolver's count-equals-cardinality test depends on it.
type BookGenreTable struct {
	Table   string
	BookID  string
	GenreID string
}

// BookGenre is the schema definition for core.bookgenre
var BookGenre = BookGenreTable{
	Table:   "core.bookgenre",
	BookID:  "bookid",
	GenreID: "genreid",
}
