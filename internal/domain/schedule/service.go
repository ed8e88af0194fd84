package schedule

import (
	"context"
)

type ScheduleService interface {
	GetWeeklySchedule(ctx context.Context, companyID string) (WeeklySchedule, error)
	UpdateWeeklySchedule(ctx context.Context, req UpdateWeeklyScheduleRequest) (WeeklySchedule, error)
}
