package leave

import (
	"fmt"
	"time"

	"github.com/coreorbit/officehub-backend-go/internal/domain/leave"
	"github.com/coreorbit/officehub-backend-go/internal/domain/schedule"
)

const dateLayout = "2006-01-02"

// Calculator computes how many leave units an attendance request
// consumes. It is stateless and safe for concurrent use.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate enumerates every calendar date in the inclusive range and
// sums per-day contributions. Per-day rules, in order: holiday
// exclusion, non-working-day exclusion, then the working-day
// contribution for the date's position in the range.
//
// Contributions accumulate as integer half-day units so long ranges
// cannot drift; the result reports units/2 as a float.
func (c *Calculator) Calculate(req leave.CalculationRequest) (leave.CalculationResult, error) {
	from := toCalendarDate(req.FromDate)
	to := toCalendarDate(req.ToDate)

	if from.After(to) {
		return leave.CalculationResult{}, leave.ErrInvalidDateRange
	}

	holidayNames := buildHolidayIndex(req.Holidays)
	durationType := req.DurationType.Normalize()
	singleDay := from.Equal(to)

	var (
		result    leave.CalculationResult
		halfUnits int
	)

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		day, ok := req.WeeklySchedule[date.Weekday()]
		if !ok {
			return leave.CalculationResult{}, fmt.Errorf("%w: missing %s", schedule.ErrIncompleteSchedule, date.Weekday())
		}

		entry := leave.DayBreakdown{
			Date:         date.Format(dateLayout),
			Weekday:      date.Weekday().String(),
			IsWorkingDay: day.IsWorkingDay,
			IsHalfDay:    day.IsHalfDay,
		}

		if name, isHoliday := holidayNames[entry.Date]; isHoliday {
			entry.IsHoliday = true
			entry.HolidayName = &name
		}

		switch {
		case req.ExcludeHolidays && entry.IsHoliday:
			result.HolidayDayCount++
		case !day.IsWorkingDay:
			// A non-working day never consumes leave units; the flag
			// only controls whether it counts toward the exclusion
			// totals.
			if req.ExcludeNonWorkingDays {
				result.NonWorkingDayCount++
			}
		default:
			contribution := dayContribution(date, from, to, singleDay, durationType, day)
			halfUnits += contribution
			if contribution == 1 {
				result.HalfDayCount++
				entry.IsHalfDay = true
			}
			entry.LeaveUnits = float64(contribution) / 2
		}

		result.TotalCalendarDays++
		result.Breakdown = append(result.Breakdown, entry)
	}

	result.LeaveUnits = float64(halfUnits) / 2

	return result, nil
}

// CalculateSimple is the schedule-and-holiday-unaware fallback: the
// inclusive calendar-day count with a flat adjustment for half-day
// boundaries.
func (c *Calculator) CalculateSimple(fromDate, toDate time.Time, durationType leave.DurationType) (float64, error) {
	from := toCalendarDate(fromDate)
	to := toCalendarDate(toDate)

	if from.After(to) {
		return 0, leave.ErrInvalidDateRange
	}

	totalDays := int(to.Sub(from).Hours()/24) + 1
	dt := durationType.Normalize()

	if totalDays == 1 {
		if dt == leave.DurationFirstHalf || dt == leave.DurationSecondHalf {
			return 0.5, nil
		}
		return 1, nil
	}

	total := float64(totalDays)
	switch dt {
	case leave.DurationSecondToFull, leave.DurationFullToFirst:
		return total - 0.5, nil
	case leave.DurationSecondToFirst:
		return total - 1, nil
	}

	return total, nil
}

// dayContribution returns the working-day contribution in half-day
// units (1 = half day, 2 = full day).
func dayContribution(date, from, to time.Time, singleDay bool, dt leave.DurationType, day schedule.DaySchedule) int {
	switch {
	case singleDay:
		if dt == leave.DurationFirstHalf || dt == leave.DurationSecondHalf {
			return 1
		}
	case date.Equal(from):
		// The employee starts from the second half of the first day.
		if dt == leave.DurationSecondToFull || dt == leave.DurationSecondToFirst {
			return 1
		}
	case date.Equal(to):
		// The employee returns at the first half of the last day.
		if dt == leave.DurationFullToFirst || dt == leave.DurationSecondToFirst {
			return 1
		}
	}

	if day.IsHalfDay {
		return 1
	}
	return 2
}

// buildHolidayIndex maps normalized calendar dates to holiday names.
// Entries whose date cannot be parsed are skipped: holiday calendars
// come from loosely validated storage and one bad row must not abort
// the whole calculation.
func buildHolidayIndex(holidays []leave.Holiday) map[string]string {
	index := make(map[string]string, len(holidays))
	for _, h := range holidays {
		date, ok := normalizeHolidayDate(h.Date)
		if !ok {
			continue
		}
		if _, exists := index[date]; !exists {
			index[date] = h.Name
		}
	}
	return index
}

// normalizeHolidayDate strips time and zone from a stored holiday date,
// which may be a bare calendar date or an ISO8601 timestamp.
func normalizeHolidayDate(raw string) (string, bool) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t.Format(dateLayout), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(dateLayout), true
	}
	return "", false
}

func toCalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
