// Package query translates declarative filter descriptors into store
// predicates. Operators come from a closed allow-list and column names
// are validated against per-collection schemas, so a predicate is never
// assembled from raw caller strings.
package query

// Operator is a filter comparison operator. Only the values declared
// here are ever translated into SQL.
type Operator string

const (
	OpEq       Operator = "eq"
	OpNeq      Operator = "neq"
	OpGte      Operator = "gte"
	OpLte      Operator = "lte"
	OpILike    Operator = "ilike"
	OpContains Operator = "contains"
)

// Valid reports whether op is in the operator allow-list.
func (op Operator) Valid() bool {
	switch op {
	case OpEq, OpNeq, OpGte, OpLte, OpILike, OpContains:
		return true
	default:
		return false
	}
}

// Filter is one (column, operator, value) predicate. Filters in a list
// are AND-combined.
type Filter struct {
	Column string   `json:"column" binding:"required"`
	Op     Operator `json:"operator" binding:"required"`
	Value  any      `json:"value"`
}

// TextSearch is a case-insensitive partial match against any of the
// listed columns (OR-combined). It is the only OR construct the builder
// supports.
type TextSearch struct {
	Columns []string
	Term    string
}

// Order is a fixed ORDER BY expression. Orders are built from schema
// constants by the composing code, never from caller input.
type Order string
