// Package handlers implements the HTTP surface. Handlers validate input,
// check parents before mutating, and translate repository and storage
// failures into the uniform error envelope.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bconolly/MiniatureProjectTracker/internal/util"
)

// Error classes carried in the response envelope.
const (
	ErrTypeValidation     = "validation_error"
	ErrTypeNotFound       = "not_found"
	ErrTypeConflict       = "conflict"
	ErrTypeDatabase       = "database_error"
	ErrTypeInternal       = "internal_server_error"
	ErrTypeInvalidFile    = "invalid_file_type"
	ErrTypeFileTooLarge   = "file_too_large"
	ErrTypeMissingFile    = "missing_file"
	ErrTypeMissingName    = "missing_filename"
	ErrTypeMissingMime    = "missing_mime_type"
	ErrTypeStorageFailure = "storage_error"
)

// AppError is an error destined for the client, with a status and a typed
// envelope body.
type AppError struct {
	Status  int
	Type    string
	Message string
	Details any
}

type errorBody struct {
	ErrorType string    `json:"error_type"`
	Message   string    `json:"message"`
	Details   any       `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func respondError(c *gin.Context, appErr AppError) {
	c.JSON(appErr.Status, errorEnvelope{Error: errorBody{
		ErrorType: appErr.Type,
		Message:   appErr.Message,
		Details:   appErr.Details,
		Timestamp: time.Now().UTC(),
	}})
}

func validationError(c *gin.Context, message string) {
	respondError(c, AppError{Status: http.StatusBadRequest, Type: ErrTypeValidation, Message: message})
}

func notFoundError(c *gin.Context, message string) {
	respondError(c, AppError{Status: http.StatusNotFound, Type: ErrTypeNotFound, Message: message})
}

// databaseError hides the underlying cause from the client and logs it with
// the request id server-side.
func databaseError(c *gin.Context, err error) {
	util.Logger(c).Error("database error", "error", err, "path", c.Request.URL.Path)
	respondError(c, AppError{
		Status:  http.StatusInternalServerError,
		Type:    ErrTypeDatabase,
		Message: "An internal database error occurred",
	})
}

func storageError(c *gin.Context, err error) {
	util.Logger(c).Error("storage error", "error", err, "path", c.Request.URL.Path)
	respondError(c, AppError{
		Status:  http.StatusInternalServerError,
		Type:    ErrTypeStorageFailure,
		Message: "Failed to store file",
	})
}

func uploadError(c *gin.Context, errType, message string) {
	respondError(c, AppError{Status: http.StatusBadRequest, Type: errType, Message: message})
}
