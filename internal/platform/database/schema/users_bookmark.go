package schema

// UsersBookmarkTable represents the 'users.bookmark' table
//
// The unique index on (userid, bookid) limits each reader to one bookmark
// per book. Catalog enrichment flattens that single row onto the book.
type UsersBookmarkTable struct {
	Table        string
	ID           string
	UserID       string
	BookID       string
	ChapterID    string
	Type         string
	CustomTypeID string
	IsAdult      string
	CreatedAt    string
	UpdatedAt    string
}

// UsersBookmark is the schema definition for users.bookmark
var UsersBookmark = UsersBookmarkTable{
	Table:        "users.bookmark",
	ID:           "id",
	UserID:       "userid",
	BookID:       "bookid",
	ChapterID:    "chapterid",
	Type:         "type",
	CustomTypeID: "customtypeid",
	IsAdult:      "isadult",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t UsersBookmarkTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.BookID, t.ChapterID, t.Type, t.CustomTypeID,
		t.IsAdult, t.CreatedAt, t.UpdatedAt,
	}
}
