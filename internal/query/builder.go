package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrUnknownOperator = errors.New("unknown filter operator")
	ErrUnknownColumn   = errors.New("unknown filter column")
)

// Apply validates every filter against the operator allow-list and the
// collection schema, then appends the equivalent WHERE clauses to db.
// Values are bound exclusively through placeholders.
func Apply(db *gorm.DB, sch Schema, filters []Filter) (*gorm.DB, error) {
	for _, f := range filters {
		if !f.Op.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, f.Op)
		}
		if !sch.HasColumn(f.Column) {
			return nil, fmt.Errorf("%w: %q on %s", ErrUnknownColumn, f.Column, sch.Table)
		}

		switch f.Op {
		case OpEq:
			db = db.Where(f.Column+" = ?", f.Value)
		case OpNeq:
			db = db.Where(f.Column+" <> ?", f.Value)
		case OpGte:
			db = db.Where(f.Column+" >= ?", f.Value)
		case OpLte:
			db = db.Where(f.Column+" <= ?", f.Value)
		case OpILike:
			db = db.Where(ilikeClause(db, f.Column), likePattern(fmt.Sprint(f.Value)))
		case OpContains:
			clause, arg, err := containsClause(db, f.Column, f.Value)
			if err != nil {
				return nil, err
			}
			db = db.Where(clause, arg)
		}
	}
	return db, nil
}

// ApplySearch appends the free-text OR group: (col1 ILIKE ? OR col2 ILIKE ?).
func ApplySearch(db *gorm.DB, sch Schema, search *TextSearch) (*gorm.DB, error) {
	if search == nil || search.Term == "" {
		return db, nil
	}
	if len(search.Columns) == 0 {
		return nil, fmt.Errorf("%w: text search without columns on %s", ErrUnknownColumn, sch.Table)
	}

	conds := make([]string, 0, len(search.Columns))
	args := make([]any, 0, len(search.Columns))
	pattern := likePattern(search.Term)
	for _, col := range search.Columns {
		if !sch.HasColumn(col) {
			return nil, fmt.Errorf("%w: %q on %s", ErrUnknownColumn, col, sch.Table)
		}
		conds = append(conds, ilikeClause(db, col))
		args = append(args, pattern)
	}
	return db.Where(strings.Join(conds, " OR "), args...), nil
}

// ilikeClause picks the dialect's case-insensitive LIKE. SQLite LIKE is
// case-insensitive by default, so plain LIKE is the fallback.
func ilikeClause(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "postgres" {
		return column + ` ILIKE ? ESCAPE '\'`
	}
	return column + ` LIKE ? ESCAPE '\'`
}

// containsClause matches one element inside a JSON array column. On
// postgres this is a jsonb containment; elsewhere the quoted element is
// matched inside the serialized array text.
func containsClause(db *gorm.DB, column string, value any) (string, any, error) {
	if db.Dialector.Name() == "postgres" {
		elem, err := json.Marshal([]any{value})
		if err != nil {
			return "", nil, fmt.Errorf("encode contains value for %s: %w", column, err)
		}
		return column + " @> ?", string(elem), nil
	}

	quoted, err := json.Marshal(fmt.Sprint(value))
	if err != nil {
		return "", nil, fmt.Errorf("encode contains value for %s: %w", column, err)
	}
	return column + ` LIKE ? ESCAPE '\'`, "%" + EscapeLike(string(quoted)) + "%", nil
}

func likePattern(term string) string {
	return "%" + EscapeLike(term) + "%"
}

// EscapeLike neutralizes LIKE wildcards in caller-supplied match terms.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
