package schema

type Table struct {
	Name     string   `json:"table" yaml:"table"`
	Columns  []Column `json:"columns" yaml:"columns"`
	RowCount int64    `json:"row_count" yaml:"row_count"`
	Indexes  []string `json:"indexes" yaml:"indexes"`
}

type Column struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	NotNull    bool   `json:"not_null" yaml:"not_null"`
	PrimaryKey bool   `json:"primary_key" yaml:"primary_key"`
}

// ResultSet is the rows returned by a single statement. Columns holds the
// order the driver reported them in; every row carries exactly those keys.
type ResultSet struct {
	Columns []string
	Rows    []map[string]any
}

// NewResultSet builds a ResultSet from rows that all share the given columns.
func NewResultSet(columns []string, rows ...map[string]any) ResultSet {
	return ResultSet{Columns: columns, Rows: rows}
}

func (r ResultSet) Len() int {
	return len(r.Rows)
}
