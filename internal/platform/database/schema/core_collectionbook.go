package schema

// CollectionBookTable represents the 'core.collectionbook' table
type CollectionBookTable struct {
	Table        string
	CollectionID string
	BookID       string
}

// CollectionBook is the schema definition for core.collectionbook
var CollectionBook = CollectionBookTable{
	Table:        "core.collectionbook",
	CollectionID: "collectionid",
	BookID:       "bookid",
}
