package response

import (
	"errors"
	"net/http"

	"github.com/coreorbit/officehub-backend-go/internal/domain/leave"
	"github.com/coreorbit/officehub-backend-go/internal/domain/schedule"
	"github.com/coreorbit/officehub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "from_date must not be after to_date", nil)
	case errors.Is(err, leave.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, leave.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Weekly schedule not found")
	case errors.Is(err, schedule.ErrIncompleteSchedule):
		BadRequest(w, "Weekly schedule must cover all seven weekdays", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
