package leave

import (
	"time"

	"github.com/coreorbit/officehub-backend-go/internal/domain/schedule"
)

// DurationType maps to leave_duration_enum in DB. The first-half/second-half
// pair applies to single-day requests; the *_to_* values describe how the
// first and last day of a multi-day range are split.
type DurationType string

const (
	DurationFullDay       DurationType = "full_day"
	DurationFirstHalf     DurationType = "first_half"
	DurationSecondHalf    DurationType = "second_half"
	DurationSecondToFull  DurationType = "second_to_full"
	DurationSecondToFirst DurationType = "second_to_first"
	DurationFullToFirst   DurationType = "full_to_first"
)

var DurationTypeValues = []string{
	string(DurationFullDay),
	string(DurationFirstHalf),
	string(DurationSecondHalf),
	string(DurationSecondToFull),
	string(DurationSecondToFirst),
	string(DurationFullToFirst),
}

// Normalize returns the duration type itself when recognized. Anything
// else falls back to a full-day request for backward compatibility with
// older clients.
func (d DurationType) Normalize() DurationType {
	switch d {
	case DurationFullDay, DurationFirstHalf, DurationSecondHalf,
		DurationSecondToFull, DurationSecondToFirst, DurationFullToFirst:
		return d
	}
	return DurationFullDay
}

// Holiday entity. Date is kept as the stored string because holiday
// calendars come from loosely validated sources; it may be a bare
// calendar date ("2026-01-26") or an ISO8601 timestamp.
type Holiday struct {
	ID        string
	CompanyID string
	Date      string
	Name      string
	Type      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CalculationRequest carries everything the calculator needs. It is
// built fresh per call and never mutated.
type CalculationRequest struct {
	FromDate     time.Time
	ToDate       time.Time
	DurationType DurationType

	WeeklySchedule schedule.WeeklySchedule
	Holidays       []Holiday

	ExcludeHolidays       bool
	ExcludeNonWorkingDays bool
}

// DayBreakdown explains how one calendar date contributed to the total.
type DayBreakdown struct {
	Date         string
	Weekday      string
	IsWorkingDay bool
	IsHoliday    bool
	IsHalfDay    bool
	HolidayName  *string
	LeaveUnits   float64
}

// CalculationResult is the full outcome of a leave-duration calculation.
// LeaveUnits is always a non-negative multiple of 0.5.
type CalculationResult struct {
	TotalCalendarDays  int
	LeaveUnits         float64
	HolidayDayCount    int
	NonWorkingDayCount int
	HalfDayCount       int
	Breakdown          []DayBreakdown
}
