package schema

// CoreBookStatTable represents the 'core.bookstat' table
type CoreBookStatTable struct {
	Table          string
	BookID         string
	CountBookmarks string
	CountViews     string
	CountLikes     string
}

// CoreBookStat is the schema definition for core.bookstat
var CoreBookStat = CoreBookStatTable{
	Table:          "core.bookstat",
	BookID:         "bookid",
	CountBookmarks: "countbookmarks",
	CountViews:     "countviews",
	CountLikes:     "countlikes",
}
