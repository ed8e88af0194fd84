package leave

import (
	"errors"

	"github.com/coreorbit/officehub-backend-go/internal/domain/schedule"
	"github.com/coreorbit/officehub-backend-go/internal/pkg/validator"
)

type HolidayInput struct {
	Date string  `json:"holiday_date"`
	Name string  `json:"holiday_name"`
	Type *string `json:"holiday_type,omitempty"`
}

type CalculateLeaveRequest struct {
	CompanyID    string `json:"-"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
	DurationType string `json:"duration_type,omitempty"`

	// Optional policy flags; both default to true when omitted.
	ExcludeHolidays       *bool `json:"exclude_holidays,omitempty"`
	ExcludeNonWorkingDays *bool `json:"exclude_non_working_days,omitempty"`

	// Optional inline overrides. When omitted the company's stored
	// holiday calendar and weekly schedule are used.
	Holidays       []HolidayInput                       `json:"holidays,omitempty"`
	WeeklySchedule map[string]schedule.DayScheduleInput `json:"weekly_schedule,omitempty"`
}

func (r *CalculateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must use YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.ToDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must use YYYY-MM-DD format",
		})
	}

	// duration_type is deliberately not validated: unrecognized values
	// fall back to full_day.

	if r.WeeklySchedule != nil {
		inline := schedule.UpdateWeeklyScheduleRequest{Days: r.WeeklySchedule}
		if err := inline.Validate(); err != nil {
			var scheduleErrs validator.ValidationErrors
			if errors.As(err, &scheduleErrs) {
				for _, e := range scheduleErrs {
					errs = append(errs, validator.ValidationError{
						Field:   "weekly_schedule." + e.Field,
						Message: e.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// InlineWeeklySchedule builds the domain schedule from the inline
// override, or nil when none was supplied.
func (r *CalculateLeaveRequest) InlineWeeklySchedule() schedule.WeeklySchedule {
	if r.WeeklySchedule == nil {
		return nil
	}
	inline := schedule.UpdateWeeklyScheduleRequest{Days: r.WeeklySchedule}
	return inline.ToWeeklySchedule()
}

// InlineHolidays converts inline holiday overrides to domain entities.
func (r *CalculateLeaveRequest) InlineHolidays() []Holiday {
	if r.Holidays == nil {
		return nil
	}
	holidays := make([]Holiday, 0, len(r.Holidays))
	for _, h := range r.Holidays {
		holidays = append(holidays, Holiday{
			CompanyID: r.CompanyID,
			Date:      h.Date,
			Name:      h.Name,
			Type:      h.Type,
		})
	}
	return holidays
}

type CalculateSimpleRequest struct {
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
	DurationType string `json:"duration_type,omitempty"`
}

func (r *CalculateSimpleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must use YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must use YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateHolidayRequest struct {
	CompanyID string  `json:"-"`
	Date      string  `json:"holiday_date"`
	Name      string  `json:"holiday_name"`
	Type      *string `json:"holiday_type,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "holiday_date",
			Message: "holiday_date is required",
		})
	} else if !validator.IsValidDateOrDateTime(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "holiday_date",
			Message: "holiday_date must be a calendar date or ISO8601 timestamp",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "holiday_name",
			Message: "holiday_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "holiday_name",
			Message: "holiday_name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID   string  `json:"id"`
	Date string  `json:"holiday_date"`
	Name string  `json:"holiday_name"`
	Type *string `json:"holiday_type,omitempty"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID,
		Date: h.Date,
		Name: h.Name,
		Type: h.Type,
	}
}

type DayBreakdownResponse struct {
	Date         string  `json:"date"`
	Weekday      string  `json:"weekday"`
	IsWorkingDay bool    `json:"is_working_day"`
	IsHoliday    bool    `json:"is_holiday"`
	IsHalfDay    bool    `json:"is_half_day"`
	HolidayName  *string `json:"holiday_name,omitempty"`
	LeaveUnits   float64 `json:"leave_units"`
}

type CalculationResponse struct {
	TotalCalendarDays  int                    `json:"total_calendar_days"`
	LeaveUnits         float64                `json:"leave_units"`
	HolidayDayCount    int                    `json:"holiday_day_count"`
	NonWorkingDayCount int                    `json:"non_working_day_count"`
	HalfDayCount       int                    `json:"half_day_count"`
	Breakdown          []DayBreakdownResponse `json:"per_day_breakdown"`
}

func NewCalculationResponse(result CalculationResult) CalculationResponse {
	breakdown := make([]DayBreakdownResponse, 0, len(result.Breakdown))
	for _, day := range result.Breakdown {
		breakdown = append(breakdown, DayBreakdownResponse{
			Date:         day.Date,
			Weekday:      day.Weekday,
			IsWorkingDay: day.IsWorkingDay,
			IsHoliday:    day.IsHoliday,
			IsHalfDay:    day.IsHalfDay,
			HolidayName:  day.HolidayName,
			LeaveUnits:   day.LeaveUnits,
		})
	}
	return CalculationResponse{
		TotalCalendarDays:  result.TotalCalendarDays,
		LeaveUnits:         result.LeaveUnits,
		HolidayDayCount:    result.HolidayDayCount,
		NonWorkingDayCount: result.NonWorkingDayCount,
		HalfDayCount:       result.HalfDayCount,
		Breakdown:          breakdown,
	}
}
