package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom_PassesTypedErrorsThrough(t *testing.T) {
	original := SlotConflict("Time slot is already booked")
	wrapped := fmt.Errorf("create booking: %w", original)

	got := From(wrapped)

	require.NotNil(t, got)
	assert.Same(t, original, got)
	assert.Equal(t, http.StatusConflict, got.Status)
}

func TestFrom_DeadlineIsTransient(t *testing.T) {
	err := fmt.Errorf("find bookings: %w", context.DeadlineExceeded)

	got := From(err)

	assert.Equal(t, KindTransient, got.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, got.Status)
	assert.True(t, got.Retryable())
	assert.ErrorIs(t, got, context.DeadlineExceeded)
}

func TestFrom_CanceledIsTransient(t *testing.T) {
	err := fmt.Errorf("acquire lock staff-day: %w", context.Canceled)

	got := From(err)

	assert.Equal(t, KindTransient, got.Kind)
	assert.ErrorIs(t, got, context.Canceled)
}

func TestFrom_UnknownIsInternal(t *testing.T) {
	got := From(errors.New("boom"))

	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.False(t, got.Retryable())
}

func TestFrom_Nil(t *testing.T) {
	assert.Nil(t, From(nil))
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NotFound("Booking not found"))

	assert.True(t, Is(err, KindNotFound))
	assert.False(t, Is(err, KindValidation))
	assert.False(t, Is(errors.New("plain"), KindNotFound))
}

func TestInvalidField(t *testing.T) {
	err := InvalidField("time", "Outside working hours")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, []FieldError{{Field: "time", Message: "Outside working hours"}}, err.Fields)
}
