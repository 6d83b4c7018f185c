package schema

// CoreSerieTable represents the 'core.serie' table
type CoreSerieTable struct {
	Table string
	ID    string
	Name  string
}

// CoreSerie is the schema definition for core.serie
var CoreSerie = CoreSerieTable{
	Table: "core.serie",
	ID:    "id",
	Name:  "name",
}
