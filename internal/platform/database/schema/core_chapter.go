package schema

// CoreChapterTable represents the 'core.chapter' table
type CoreChapterTable struct {
	Table     string
	ID        string
	BookID    string
	Number    string
	Status    string
	CreatedAt string
}

// CoreChapter is the schema definition for core.chapter
var CoreChapter = CoreChapterTable{
	Table:     "core.chapter",
	ID:        "id",
	BookID:    "bookid",
	Number:    "number",
	Status:    "status",
	CreatedAt: "createdat",
}
