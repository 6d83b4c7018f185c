package schema

// CoreBookTable represents the 'core.book' table
type CoreBookTable struct {
	Table         string
	ID            string
	Slug          string
	Title         string
	TitleEn       string
	Type          string
	Status        string
	IsAdult       string
	Description   string
	CoverURL      string
	LastChapterID string
	CreatedAt     string
	UpdatedAt     string
	NewUploadAt   string
}

// CoreBook is the schema definition for core.book
var CoreBook = CoreBookTable{
	Table:         "core.book",
	ID:            "id",
	Slug:          "slug",
	Title:         "title",
	TitleEn:       "titleen",
	Type:          "type",
	Status:        "status",
	IsAdult:       "isadult",
	Description:   "description",
	CoverURL:      "coverurl",
	LastChapterID: "lastchapterid",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
	NewUploadAt:   "newuploadat",
}

func (t CoreBookTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.TitleEn, t.Type, t.Status, t.IsAdult,
		t.Description, t.CoverURL, t.LastChapterID, t.CreatedAt, t.UpdatedAt,
		t.NewUploadAt,
	}
}
