package services

import (
	"errors"
	"time"

	"cleanmatch_backend/internal/models"
	"cleanmatch_backend/internal/repositories"
	"cleanmatch_backend/internal/services/dto"
	"cleanmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// jobTransitions is the booking lifecycle table. Anything not listed
// here is rejected, which covers every move out of a terminal state.
var jobTransitions = map[models.JobStatus][]models.JobStatus{
	models.JobStatusPending:  {models.JobStatusApproved, models.JobStatusRejected},
	models.JobStatusApproved: {models.JobStatusCompleted, models.JobStatusCancelled},
}

type JobService interface {
	// CreateBooking inserts a Pending job. It is not blindly retry-safe:
	// a retried call creates a second booking.
	CreateBooking(db *gorm.DB, homeownerID string, req *dto.CreateBookingRequest) (*models.Job, error)

	UpdateJobStatus(db *gorm.DB, jobID, actorID string, newStatus models.JobStatus) error
	ReportJob(db *gorm.DB, jobID, reporterID, reason string) error

	ListBookingsForCleaner(db *gorm.DB, cleanerID string, dateAsc bool) ([]models.Job, error)
	ListCompletedJobs(db *gorm.DB, cleanerID string, req *dto.CompletedJobsRequest) ([]models.Job, error)
	ListHistoryForHomeowner(db *gorm.DB, homeownerID string) ([]models.Job, error)
	CompletedJobCount(db *gorm.DB, cleanerID string) (int64, error)
	DistinctCompletedServices(db *gorm.DB, cleanerID string) ([]string, error)
}

type jobService struct {
	jobRepo     repositories.JobRepository
	accountRepo repositories.AccountRepository
	reportRepo  repositories.ReportRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	accountRepo repositories.AccountRepository,
	reportRepo repositories.ReportRepository,
) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		accountRepo: accountRepo,
		reportRepo:  reportRepo,
	}
}

func (s *jobService) CreateBooking(db *gorm.DB, homeownerID string, req *dto.CreateBookingRequest) (*models.Job, error) {
	cleaner, err := s.accountRepo.FindByID(db, req.CleanerID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrNotFound(err, "jobs", "Cleaner not found")
		}
		return nil, apperrors.DatabaseError(err, "fetch", "accounts")
	}
	if cleaner.AccountType != models.AccountTypeCleaner {
		return nil, apperrors.ErrInvalidOperation("jobs", "Bookings can only target cleaner accounts")
	}
	if cleaner.Status != models.AccountStatusActive {
		return nil, apperrors.ErrInvalidOperation("jobs", "Cleaner is not accepting bookings")
	}

	job := &models.Job{
		CleanerID:   req.CleanerID,
		HomeownerID: homeownerID,
		Service:     req.Service,
		Location:    req.Location,
		Date:        req.Date,
		Status:      models.JobStatusPending,
	}
	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.DatabaseError(err, "insert", "jobs")
	}
	return job, nil
}

func (s *jobService) UpdateJobStatus(db *gorm.DB, jobID, actorID string, newStatus models.JobStatus) error {
	if !newStatus.Valid() {
		return apperrors.ErrInvalidStatus("jobs", "Unknown job status: "+string(newStatus))
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "jobs", "Job not found")
		}
		return apperrors.DatabaseError(err, "fetch", "jobs")
	}

	if !transitionAllowed(job.Status, newStatus) {
		return apperrors.ErrInvalidTransition(string(job.Status), string(newStatus))
	}
	if !actorMayTransition(job, actorID, newStatus) {
		return apperrors.ErrNotOwner
	}

	// The ownership predicate rides inside the UPDATE so a non-owner's
	// write matches zero rows; there is no separate check/act window.
	rows, err := s.jobRepo.UpdateStatusOwned(db, jobID, ownerColumnsFor(newStatus), actorID, newStatus)
	if err != nil {
		return apperrors.DatabaseError(err, "update", "jobs")
	}
	if rows == 0 {
		return apperrors.ErrNotOwner
	}
	return nil
}

func (s *jobService) ReportJob(db *gorm.DB, jobID, reporterID, reason string) error {
	if reason == "" {
		return apperrors.NewBadRequestError("Report reason is required")
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "jobs", "Job not found")
		}
		return apperrors.DatabaseError(err, "fetch", "jobs")
	}

	if reporterID != job.CleanerID && reporterID != job.HomeownerID {
		return apperrors.ErrNotOwner
	}
	if job.Status != models.JobStatusApproved && job.Status != models.JobStatusCompleted {
		return apperrors.ErrInvalidStatus("jobs", "Only approved or completed jobs can be reported")
	}

	report := &models.JobReport{
		JobID:      jobID,
		ReporterID: reporterID,
		Reason:     reason,
		ReportedAt: time.Now().UTC(),
	}
	if err := s.reportRepo.Create(db, report); err != nil {
		return apperrors.DatabaseError(err, "insert", "job_reports")
	}
	return nil
}

func (s *jobService) ListBookingsForCleaner(db *gorm.DB, cleanerID string, dateAsc bool) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListForCleaner(db, cleanerID,
		[]models.JobStatus{models.JobStatusPending, models.JobStatusApproved, models.JobStatusRejected},
		dateAsc)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "fetch", "jobs")
	}
	return jobs, nil
}

func (s *jobService) ListCompletedJobs(db *gorm.DB, cleanerID string, req *dto.CompletedJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListCompleted(db, cleanerID, repositories.CompletedJobQuery{
		Service:  req.Service,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		DateAsc:  req.SortOrder == "asc",
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err, "fetch", "jobs")
	}
	return jobs, nil
}

func (s *jobService) ListHistoryForHomeowner(db *gorm.DB, homeownerID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListForHomeowner(db, homeownerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "fetch", "jobs")
	}
	return jobs, nil
}

func (s *jobService) CompletedJobCount(db *gorm.DB, cleanerID string) (int64, error) {
	count, err := s.jobRepo.CountByStatus(db, cleanerID, models.JobStatusCompleted)
	if err != nil {
		return 0, apperrors.DatabaseError(err, "count", "jobs")
	}
	return count, nil
}

func (s *jobService) DistinctCompletedServices(db *gorm.DB, cleanerID string) ([]string, error) {
	services, err := s.jobRepo.DistinctCompletedServices(db, cleanerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "fetch", "jobs")
	}
	return services, nil
}

func transitionAllowed(from, to models.JobStatus) bool {
	for _, next := range jobTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// actorMayTransition checks the per-transition actor rule against the
// loaded job: completion is open to either side of the job, every other
// decision belongs to the owning cleaner.
func actorMayTransition(job *models.Job, actorID string, to models.JobStatus) bool {
	if to == models.JobStatusCompleted {
		return actorID == job.CleanerID || actorID == job.HomeownerID
	}
	return actorID == job.CleanerID
}

func ownerColumnsFor(to models.JobStatus) []string {
	if to == models.JobStatusCompleted {
		return []string{"cleaner_id", "homeowner_id"}
	}
	return []string{"cleaner_id"}
}
