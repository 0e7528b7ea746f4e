package repositories

import (
	"cleanmatch_backend/internal/models"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(db *gorm.DB, report *models.JobReport) error
	ListForJob(db *gorm.DB, jobID string) ([]models.JobReport, error)
}

type ReportRepositoryImpl struct{}

func NewReportRepository() ReportRepository {
	return &ReportRepositoryImpl{}
}

func (r *ReportRepositoryImpl) Create(db *gorm.DB, report *models.JobReport) error {
	return db.Create(report).Error
}

func (r *ReportRepositoryImpl) ListForJob(db *gorm.DB, jobID string) ([]models.JobReport, error) {
	var reports []models.JobReport
	err := db.Where("job_id = ?", jobID).Order("reported_at DESC").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
