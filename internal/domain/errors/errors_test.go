package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("title is required")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.NotErrorIs(t, detailed, ErrAlertNotFound)
	assert.Equal(t, "input validation failed: title is required", detailed.Error())
	assert.Equal(t, "title is required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrAlertNotFound.WrapMessage("update alert 7")

	assert.ErrorIs(t, wrapped, ErrAlertNotFound)

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "ALERT_NOT_FOUND", appErr.ErrorCode())
}

func TestStorageExecuteError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewStorageExecuteError(cause, "save alerts")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "STORAGE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "save alerts", err.Details())
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}
