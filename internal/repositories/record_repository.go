package repositories

import (
	"fmt"

	"cleanmatch_backend/internal/query"
	"cleanmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MaxPageSize caps any single fetch window.
const MaxPageSize = 100

// Page is one window of a filtered collection. TotalCount covers every
// row matching the filters, not just the window.
type Page[T any] struct {
	Data       []T   `json:"data"`
	TotalCount int64 `json:"total_count"`
}

// FetchRequest describes one paginated read.
type FetchRequest struct {
	// Columns to project; empty means all schema columns.
	Columns []string
	// Filters are AND-combined predicates.
	Filters []query.Filter
	// Search is the optional free-text OR group.
	Search *query.TextSearch
	// Order is a fixed ordering built from schema constants.
	Order query.Order

	Page     int
	PageSize int
}

// FetchPage runs a filtered, counted, paginated read over one
// collection. Pagination is validated before any store call; an offset
// past the end returns an empty window with the true count.
func FetchPage[T any](db *gorm.DB, sch query.Schema, req FetchRequest) (*Page[T], error) {
	if req.Page < 1 || req.PageSize < 1 || req.PageSize > MaxPageSize {
		return nil, apperrors.ErrInvalidPagination(req.Page, req.PageSize)
	}
	for _, col := range req.Columns {
		if !sch.HasColumn(col) {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("unknown column %q on %s", col, sch.Table))
		}
	}

	base := db.Model(new(T))
	base, err := query.Apply(base, sch, req.Filters)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	base, err = query.ApplySearch(base, sch, req.Search)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	result := &Page[T]{Data: []T{}}

	if err := base.Session(&gorm.Session{}).Count(&result.TotalCount).Error; err != nil {
		return nil, apperrors.DatabaseError(err, "count", sch.Table)
	}

	offset := (req.Page - 1) * req.PageSize
	if result.TotalCount == 0 || int64(offset) >= result.TotalCount {
		return result, nil
	}

	window := base.Session(&gorm.Session{})
	if len(req.Columns) > 0 {
		window = window.Select(req.Columns)
	}
	if req.Order != "" {
		window = window.Order(string(req.Order))
	}
	if err := window.Limit(req.PageSize).Offset(offset).Find(&result.Data).Error; err != nil {
		return nil, apperrors.DatabaseError(err, "fetch", sch.Table)
	}
	return result, nil
}

// Insert appends one record to the collection.
func Insert[T any](db *gorm.DB, sch query.Schema, record *T) error {
	if err := db.Create(record).Error; err != nil {
		return apperrors.DatabaseError(err, "insert", sch.Table)
	}
	return nil
}

// UpdateWhere applies values to every row matching filters and returns
// the number of rows touched. The value columns pass the same schema
// check as filter columns; an empty filter list is rejected so a bug can
// never rewrite a whole collection.
func UpdateWhere[T any](db *gorm.DB, sch query.Schema, filters []query.Filter, values map[string]any) (int64, error) {
	if len(filters) == 0 {
		return 0, apperrors.NewBadRequestError("update requires at least one filter on " + sch.Table)
	}
	for col := range values {
		if !sch.HasColumn(col) {
			return 0, apperrors.NewBadRequestError(
				fmt.Sprintf("unknown column %q on %s", col, sch.Table))
		}
	}

	tx := db.Model(new(T))
	tx, err := query.Apply(tx, sch, filters)
	if err != nil {
		return 0, apperrors.NewBadRequestError(err.Error())
	}
	res := tx.Updates(values)
	if res.Error != nil {
		return 0, apperrors.DatabaseError(res.Error, "update", sch.Table)
	}
	return res.RowsAffected, nil
}

// DeleteWhere removes every row matching filters and returns the number
// of rows removed.
func DeleteWhere[T any](db *gorm.DB, sch query.Schema, filters []query.Filter) (int64, error) {
	if len(filters) == 0 {
		return 0, apperrors.NewBadRequestError("delete requires at least one filter on " + sch.Table)
	}

	tx := db
	tx, err := query.Apply(tx, sch, filters)
	if err != nil {
		return 0, apperrors.NewBadRequestError(err.Error())
	}
	res := tx.Delete(new(T))
	if res.Error != nil {
		return 0, apperrors.DatabaseError(res.Error, "delete", sch.Table)
	}
	return res.RowsAffected, nil
}

// CountWhere counts rows matching filters.
func CountWhere[T any](db *gorm.DB, sch query.Schema, filters []query.Filter) (int64, error) {
	tx := db.Model(new(T))
	tx, err := query.Apply(tx, sch, filters)
	if err != nil {
		return 0, apperrors.NewBadRequestError(err.Error())
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, apperrors.DatabaseError(err, "count", sch.Table)
	}
	return total, nil
}

// ExistsWhere reports whether any row matches filters.
func ExistsWhere[T any](db *gorm.DB, sch query.Schema, filters []query.Filter) (bool, error) {
	total, err := CountWhere[T](db, sch, filters)
	if err != nil {
		return false, err
	}
	return total > 0, nil
}
