package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err to the gin response. Unknown error types are
// wrapped as internal errors so the raw cause never leaks to clients.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "code", appErr.Code, "domain", appErr.Domain, "error", err)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
