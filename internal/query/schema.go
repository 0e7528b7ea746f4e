package query

// Schema is the typed descriptor of one record collection: its table
// name and the columns callers may project or filter on. Columns absent
// from the schema (e.g. password_hash) are unreachable through the
// filtered access layer.
type Schema struct {
	Table   string
	columns map[string]struct{}
	ordered []string
}

func NewSchema(table string, columns ...string) Schema {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return Schema{Table: table, columns: set, ordered: columns}
}

func (s Schema) HasColumn(name string) bool {
	_, ok := s.columns[name]
	return ok
}

// Columns returns the allowed columns in declaration order.
func (s Schema) Columns() []string {
	out := make([]string, len(s.ordered))
	copy(out, s.ordered)
	return out
}
