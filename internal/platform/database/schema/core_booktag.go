package schema

// BookTagTable represents the 'core.booktag' table
//
// The composite primary key (bookid, tagid) guarantees at most one row per
// pair. The facet resolver's count-equals-cardinality test depends on it.
type BookTagTable struct {
	Table  string
	BookID string
	TagID  string
}

// BookTag is the schema definition for core.booktag
var BookTag = BookTagTable{
	Table:  "core.booktag",
	BookID: "bookid",
	TagID:  "tagid",
}
