package schema

// CoreBookAnalyticTable represents the 'core.bookanalytic' table
type CoreBookAnalyticTable struct {
	Table     string
	BookID    string
	Date      string
	Bookmarks string
	Views     string
	Likes     string
}

// CoreBookAnalytic is the schema definition for core.bookanalytic
var CoreBookAnalytic = CoreBookAnalyticTable{
	Table:     "core.bookanalytic",
	BookID:    "bookid",
	Date:      "date",
	Bookmarks: "bookmarks",
	Views:     "views",
	Likes:     "likes",
}
