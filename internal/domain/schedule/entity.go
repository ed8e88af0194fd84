package schedule

import (
	"strings"
	"time"
)

// DaySchedule describes how the company operates on a single weekday.
// StartTime and EndTime are informational ("09:00", "18:00") and never
// enter the leave-unit math.
type DaySchedule struct {
	IsWorkingDay bool
	IsHalfDay    bool
	StartTime    string
	EndTime      string
}

// WeeklySchedule maps every weekday to its DaySchedule. All seven
// weekdays must be present before the schedule is used for a
// calculation.
type WeeklySchedule map[time.Weekday]DaySchedule

// Validate checks that the schedule covers all seven weekdays.
func (ws WeeklySchedule) Validate() error {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if _, ok := ws[day]; !ok {
			return ErrIncompleteSchedule
		}
	}
	return nil
}

// ScheduleDay is the persisted form of one weekday's configuration.
type ScheduleDay struct {
	ID           string
	CompanyID    string
	DayOfWeek    int // 0=Sunday, ..., 6=Saturday (matches time.Weekday)
	IsWorkingDay bool
	IsHalfDay    bool
	StartTime    string
	EndTime      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WeekdayFromName resolves a lowercase weekday name ("monday") to its
// time.Weekday value.
func WeekdayFromName(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if NameOfWeekday(day) == strings.ToLower(strings.TrimSpace(name)) {
			return day, true
		}
	}
	return time.Sunday, false
}

// NameOfWeekday returns the lowercase weekday name used as the JSON map
// key in schedule payloads.
func NameOfWeekday(day time.Weekday) string {
	return strings.ToLower(day.String())
}
