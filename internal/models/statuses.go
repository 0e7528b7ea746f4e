package models

type AccountType string
type AccountStatus string
type JobStatus string

const (
	AccountTypeHomeowner AccountType = "homeowner"
	AccountTypeCleaner   AccountType = "cleaner"
	AccountTypeAdmin     AccountType = "admin"

	AccountStatusPending  AccountStatus = "pending"
	AccountStatusActive   AccountStatus = "active"
	AccountStatusRejected AccountStatus = "rejected"

	// Job statuses keep the title-case wire values of the jobs collection.
	JobStatusPending   JobStatus = "Pending"
	JobStatusApproved  JobStatus = "Approved"
	JobStatusRejected  JobStatus = "Rejected"
	JobStatusCompleted JobStatus = "Completed"
	JobStatusCancelled JobStatus = "Cancelled"
)

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusApproved, JobStatusRejected, JobStatusCompleted, JobStatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no transition may leave s.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusRejected, JobStatusCompleted, JobStatusCancelled:
		return true
	default:
		return false
	}
}
