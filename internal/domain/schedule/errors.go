package schedule

import "errors"

var (
	// Weekly Schedule Errors
	ErrScheduleNotFound   = errors.New("weekly schedule not found")
	ErrIncompleteSchedule = errors.New("weekly schedule must cover all seven weekdays")
	ErrInvalidDayOfWeek   = errors.New("invalid day of week")
)
