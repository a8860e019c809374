package controllers

import (
	"errors"

	"property-backend/models"
	"property-backend/services"
	"property-backend/utils"
)

// isClientError reports whether a workflow error was caused by the
// request payload rather than the store.
func isClientError(err error) bool {
	return errors.Is(err, utils.ErrEmptyUpdate) ||
		errors.Is(err, utils.ErrUnknownField) ||
		errors.Is(err, models.ErrUnknownStatus) ||
		errors.Is(err, services.ErrNegativePrice) ||
		errors.Is(err, services.ErrInvalidDateRange)
}
