package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/tobenna/walletdash/pkg/models"
)

// Normalize maps a transport status and raw message to the application
// error taxonomy. This is the single normalization point for every
// ledger and FX failure; nothing downstream re-interprets statuses.
//
// Retryable is informational only — no retry executor consumes it.
func Normalize(status int, message string) models.AppError {
	appErr := models.AppError{
		Id:        uuid.New().String(),
		Code:      status,
		Timestamp: time.Now(),
	}

	switch {
	case status == 0:
		appErr.Type = models.ErrorTypeNetwork
		appErr.Message = "Network error. Check your connection and try again."
		appErr.Retryable = true
	case status == 401 || status == 403:
		appErr.Type = models.ErrorTypeAPI
		appErr.Message = "Access denied."
		appErr.Retryable = false
	case status == 404:
		appErr.Type = models.ErrorTypeAPI
		appErr.Message = "Requested resource not found."
		appErr.Retryable = false
	case status == 429:
		appErr.Type = models.ErrorTypeAPI
		appErr.Message = "Too many requests. Try again shortly."
		appErr.Retryable = true
	case status >= 500:
		appErr.Type = models.ErrorTypeAPI
		appErr.Message = "Server error. Try again later."
		appErr.Retryable = true
	case status >= 400:
		// Remaining 4xx: pass the upstream message through verbatim.
		appErr.Type = models.ErrorTypeAPI
		appErr.Message = message
		appErr.Retryable = true
	default:
		appErr.Type = models.ErrorTypeUnknown
		appErr.Message = "Something went wrong."
		appErr.Retryable = true
	}

	if appErr.Message == "" {
		appErr.Message = "Something went wrong."
	}
	return appErr
}
