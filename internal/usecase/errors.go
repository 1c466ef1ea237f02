package usecase

import (
	"errors"

	"salon-booking/internal/data/repository"
	"salon-booking/pkg/apperror"
	"salon-booking/pkg/redislock"
)

// toAppError maps collaborator errors onto the error taxonomy.
func toAppError(err error, notFoundMsg string) *apperror.Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperror.NotFound(notFoundMsg)
	case errors.Is(err, redislock.ErrLockNotAcquired):
		return apperror.Transient("Time slot is being booked by another request, please retry", err)
	case errors.Is(err, redislock.ErrUnavailable):
		return apperror.Transient("Booking lock temporarily unavailable, please retry", err)
	}
	return apperror.From(err)
}
