package services

import (
	"sort"

	"cleanmatch_backend/internal/models"
	"cleanmatch_backend/internal/query"
	"cleanmatch_backend/internal/repositories"
	"cleanmatch_backend/internal/services/dto"
	"cleanmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// recordOrder keeps generic fetches stable across pages.
const recordOrder = query.Order("created_at ASC, id ASC")

// RecordService is the generic filtered fetch over named collections,
// used by the admin surface. Collections self-register with their typed
// schema; anything else is rejected before a query is built.
type RecordService interface {
	Search(db *gorm.DB, collection string, req *dto.RecordSearchRequest) (*dto.PaginatedResponse, error)
	Collections() []string
}

type recordSearcher func(db *gorm.DB, req *dto.RecordSearchRequest) (any, int64, error)

type recordService struct {
	searchers map[string]recordSearcher
}

func NewRecordService() RecordService {
	s := &recordService{searchers: map[string]recordSearcher{}}
	registerCollection[models.Account](s, repositories.AccountSchema)
	registerCollection[models.Job](s, repositories.JobSchema)
	registerCollection[models.AvailabilitySlot](s, repositories.AvailabilitySchema)
	registerCollection[models.Favorite](s, repositories.FavoriteSchema)
	registerCollection[models.CleanerView](s, repositories.ViewSchema)
	registerCollection[models.JobReport](s, repositories.ReportSchema)
	return s
}

func registerCollection[T any](s *recordService, sch query.Schema) {
	s.searchers[sch.Table] = func(db *gorm.DB, req *dto.RecordSearchRequest) (any, int64, error) {
		page, err := repositories.FetchPage[T](db, sch, repositories.FetchRequest{
			Columns:  req.Columns,
			Filters:  req.Filters,
			Order:    recordOrder,
			Page:     req.Page,
			PageSize: req.PageSize,
		})
		if err != nil {
			return nil, 0, err
		}
		return page.Data, page.TotalCount, nil
	}
}

func (s *recordService) Search(db *gorm.DB, collection string, req *dto.RecordSearchRequest) (*dto.PaginatedResponse, error) {
	searcher, ok := s.searchers[collection]
	if !ok {
		return nil, apperrors.NewBadRequestError("Unknown collection: " + collection)
	}
	data, total, err := searcher(db, req)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(data, total, req.Page, req.PageSize), nil
}

func (s *recordService) Collections() []string {
	names := make([]string, 0, len(s.searchers))
	for name := range s.searchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
