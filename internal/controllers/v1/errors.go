package v1

import (
	"errors"
	"net/http"

	"github.com/walletwatch/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errOwnerIDParameter    = errors.New("the ownerId parameter must be set")
	errBeforeMonthNotSet   = errors.New("the before query parameter must be set to a month in YYYY-MM format")
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
