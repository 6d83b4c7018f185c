package schema

// CoreCollectionTable represents the 'core.collection' table
type CoreCollectionTable struct {
	Table              string
	ID                 string
	Slug               string
	Name               string
	ParentCollectionID string
}

// CoreCollection is the schema definition for core.collection
var CoreCollection = CoreCollectionTable{
	Table:              "core.collection",
	ID:                 "id",
	Slug:               "slug",
	Name:               "name",
	ParentCollectionID: "parentcollectionid",
}
