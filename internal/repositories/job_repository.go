package repositories

import (
	"errors"
	"strings"
	"time"

	"cleanmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrNoOwnerColumns = errors.New("status update requires at least one owner column")
)

// CompletedJobQuery filters the completed-work history of a cleaner.
type CompletedJobQuery struct {
	Service  string
	DateFrom *time.Time
	DateTo   *time.Time
	DateAsc  bool
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)

	// UpdateStatusOwned writes the new status with the ownership
	// predicate inside the UPDATE itself: a non-owner's call matches
	// zero rows instead of touching another tenant's job.
	UpdateStatusOwned(db *gorm.DB, jobID string, ownerColumns []string, actorID string, newStatus models.JobStatus) (int64, error)

	ListForCleaner(db *gorm.DB, cleanerID string, statuses []models.JobStatus, dateAsc bool) ([]models.Job, error)
	ListCompleted(db *gorm.DB, cleanerID string, q CompletedJobQuery) ([]models.Job, error)
	ListForHomeowner(db *gorm.DB, homeownerID string) ([]models.Job, error)
	CountByStatus(db *gorm.DB, cleanerID string, status models.JobStatus) (int64, error)
	DistinctCompletedServices(db *gorm.DB, cleanerID string) ([]string, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) UpdateStatusOwned(db *gorm.DB, jobID string, ownerColumns []string, actorID string, newStatus models.JobStatus) (int64, error) {
	if len(ownerColumns) == 0 {
		return 0, ErrNoOwnerColumns
	}

	conds := make([]string, 0, len(ownerColumns))
	args := make([]any, 0, len(ownerColumns))
	for _, col := range ownerColumns {
		conds = append(conds, col+" = ?")
		args = append(args, actorID)
	}

	res := db.Model(&models.Job{}).
		Where("id = ?", jobID).
		Where(strings.Join(conds, " OR "), args...).
		Update("status", newStatus)
	return res.RowsAffected, res.Error
}

func (r *JobRepositoryImpl) ListForCleaner(db *gorm.DB, cleanerID string, statuses []models.JobStatus, dateAsc bool) ([]models.Job, error) {
	var jobs []models.Job
	tx := db.Where("cleaner_id = ?", cleanerID)
	if len(statuses) > 0 {
		tx = tx.Where("status IN ?", statuses)
	}
	if err := tx.Order(dateOrder(dateAsc)).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) ListCompleted(db *gorm.DB, cleanerID string, q CompletedJobQuery) ([]models.Job, error) {
	var jobs []models.Job
	tx := db.Where("cleaner_id = ?", cleanerID).Where("status = ?", models.JobStatusCompleted)
	if q.Service != "" {
		tx = tx.Where("service = ?", q.Service)
	}
	if q.DateFrom != nil {
		tx = tx.Where("date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		tx = tx.Where("date <= ?", *q.DateTo)
	}
	if err := tx.Order(dateOrder(q.DateAsc)).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) ListForHomeowner(db *gorm.DB, homeownerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("homeowner_id = ?", homeownerID).Order("date DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) CountByStatus(db *gorm.DB, cleanerID string, status models.JobStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Job{}).
		Where("cleaner_id = ? AND status = ?", cleanerID, status).
		Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) DistinctCompletedServices(db *gorm.DB, cleanerID string) ([]string, error) {
	var services []string
	err := db.Model(&models.Job{}).
		Where("cleaner_id = ? AND status = ?", cleanerID, models.JobStatusCompleted).
		Distinct("service").
		Order("service ASC").
		Pluck("service", &services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func dateOrder(asc bool) string {
	if asc {
		return "date ASC"
	}
	return "date DESC"
}
