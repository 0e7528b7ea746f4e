package apperrors

import (
	"fmt"
	"net/http"
)

// Factories and predefined variables for the marketplace domain.
// Repositories return raw sentinel errors; services translate them
// through these factories before they reach the boundary.

// ErrNotFound converts a repository "no rows" error for a single-record
// lookup into a 404. Empty result sets on list reads are NOT errors.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// DatabaseError wraps a persistence failure with the operation and
// collection it happened on. Store failures are never swallowed.
func DatabaseError(err error, operation, collection string) *AppError {
	return Wrap(err, CodeDatabaseError, "store",
		fmt.Sprintf("%s on %s failed", operation, collection),
		http.StatusInternalServerError)
}

// ErrInvalidTransition rejects a job-status change that is not in the
// transition table, including any move out of a terminal state.
func ErrInvalidTransition(from, to string) *AppError {
	return New(CodeInvalidTransition, "jobs",
		fmt.Sprintf("status transition %s -> %s is not allowed", from, to),
		http.StatusConflict)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidPagination is raised before any store call is issued.
func ErrInvalidPagination(page, pageSize int) *AppError {
	return New(CodeValidationFailed, "query",
		fmt.Sprintf("invalid pagination: page=%d page_size=%d", page, pageSize),
		http.StatusBadRequest)
}

// ErrNotOwner is the zero-rows outcome of an ownership-scoped write: the
// actor does not own the targeted resource, so the write touched nothing.
var ErrNotOwner = New(
	CodeForbidden,
	"business_logic",
	"Actor does not own the targeted resource",
	http.StatusForbidden,
)

// ErrAdminOnly guards moderation operations.
var ErrAdminOnly = New(
	CodeForbidden,
	"business_logic",
	"Operation requires an admin account",
	http.StatusForbidden,
)
