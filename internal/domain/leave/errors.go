package leave

import "errors"

var (
	ErrInvalidDateRange = errors.New("from_date must not be after to_date")
	ErrHolidayNotFound  = errors.New("holiday not found")
	ErrHolidayExists    = errors.New("holiday already exists on this date")
)
