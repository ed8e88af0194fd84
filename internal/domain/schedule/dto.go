package schedule

import (
	"time"

	"github.com/coreorbit/officehub-backend-go/internal/pkg/validator"
)

type DayScheduleInput struct {
	IsWorkingDay bool   `json:"is_working_day"`
	IsHalfDay    bool   `json:"is_half_day"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
}

type UpdateWeeklyScheduleRequest struct {
	CompanyID string                      `json:"-"`
	Days      map[string]DayScheduleInput `json:"days"`
}

func (r *UpdateWeeklyScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days is required",
		})
		return errs
	}

	seen := make(map[time.Weekday]bool, 7)
	for name, day := range r.Days {
		weekday, ok := WeekdayFromName(name)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "days." + name,
				Message: "unknown weekday name",
			})
			continue
		}
		seen[weekday] = true

		if day.StartTime != "" && !validator.IsValidClockTime(day.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "days." + name + ".start_time",
				Message: "start_time must use HH:MM format",
			})
		}
		if day.EndTime != "" && !validator.IsValidClockTime(day.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "days." + name + ".end_time",
				Message: "end_time must use HH:MM format",
			})
		}
	}

	if len(seen) != 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "all seven weekdays must be present",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToWeeklySchedule converts the request payload to the domain schedule.
// Callers must run Validate first; unknown weekday names are dropped.
func (r *UpdateWeeklyScheduleRequest) ToWeeklySchedule() WeeklySchedule {
	ws := make(WeeklySchedule, 7)
	for name, day := range r.Days {
		weekday, ok := WeekdayFromName(name)
		if !ok {
			continue
		}
		ws[weekday] = DaySchedule{
			IsWorkingDay: day.IsWorkingDay,
			IsHalfDay:    day.IsHalfDay,
			StartTime:    day.StartTime,
			EndTime:      day.EndTime,
		}
	}
	return ws
}

type DayScheduleResponse struct {
	IsWorkingDay bool   `json:"is_working_day"`
	IsHalfDay    bool   `json:"is_half_day"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
}

type WeeklyScheduleResponse struct {
	Days map[string]DayScheduleResponse `json:"days"`
}

func NewWeeklyScheduleResponse(ws WeeklySchedule) WeeklyScheduleResponse {
	days := make(map[string]DayScheduleResponse, len(ws))
	for weekday, day := range ws {
		days[NameOfWeekday(weekday)] = DayScheduleResponse{
			IsWorkingDay: day.IsWorkingDay,
			IsHalfDay:    day.IsHalfDay,
			StartTime:    day.StartTime,
			EndTime:      day.EndTime,
		}
	}
	return WeeklyScheduleResponse{Days: days}
}
