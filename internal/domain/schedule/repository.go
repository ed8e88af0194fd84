package schedule

import (
	"context"
)

// WeeklyScheduleRepository - interface for the weekly_schedule_days table
type WeeklyScheduleRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) (WeeklySchedule, error)
	Upsert(ctx context.Context, companyID string, ws WeeklySchedule) error
}
