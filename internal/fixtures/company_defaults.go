package fixtures

import (
	"time"

	"github.com/coreorbit/officehub-backend-go/internal/domain/leave"
	"github.com/coreorbit/officehub-backend-go/internal/domain/schedule"
)

func strPtr(s string) *string { return &s }

// DefaultWeeklySchedule returns the schedule used when a company has
// not configured one: Monday-Friday working 09:00-18:00, weekend off.
// Returned fresh per call so callers can never share mutable state.
func DefaultWeeklySchedule() schedule.WeeklySchedule {
	ws := make(schedule.WeeklySchedule, 7)

	ws[time.Sunday] = schedule.DaySchedule{IsWorkingDay: false}
	ws[time.Saturday] = schedule.DaySchedule{IsWorkingDay: false}

	for day := time.Monday; day <= time.Friday; day++ {
		ws[day] = schedule.DaySchedule{
			IsWorkingDay: true,
			StartTime:    "09:00",
			EndTime:      "18:00",
		}
	}

	return ws
}

// GetDefaultHolidays returns the fixed-date Indonesian public holidays
// seeded into a new company's calendar for the given year. Movable
// holidays (Eid, Nyepi, Vesak) shift every year and are entered by the
// company admin instead.
func GetDefaultHolidays(companyID string, year int) []leave.Holiday {
	dates := []struct {
		month time.Month
		day   int
		name  string
	}{
		{time.January, 1, "Tahun Baru Masehi"},
		{time.May, 1, "Hari Buruh Internasional"},
		{time.June, 1, "Hari Lahir Pancasila"},
		{time.August, 17, "Hari Kemerdekaan"},
		{time.December, 25, "Hari Raya Natal"},
	}

	holidays := make([]leave.Holiday, 0, len(dates))
	for _, d := range dates {
		date := time.Date(year, d.month, d.day, 0, 0, 0, 0, time.UTC)
		holidays = append(holidays, leave.Holiday{
			CompanyID: companyID,
			Date:      date.Format("2006-01-02"),
			Name:      d.name,
			Type:      strPtr("national"),
		})
	}

	return holidays
}
