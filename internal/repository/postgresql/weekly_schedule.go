package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/coreorbit/officehub-backend-go/internal/domain/schedule"
	"github.com/coreorbit/officehub-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type weeklyScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWeeklyScheduleRepository(db *database.DB) schedule.WeeklyScheduleRepository {
	return &weeklyScheduleRepositoryImpl{db: db}
}

func (r *weeklyScheduleRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) (schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT day_of_week, is_working_day, is_half_day, start_time, end_time
		FROM weekly_schedule_days
		WHERE company_id = $1
		ORDER BY day_of_week ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly schedule: %w", err)
	}
	defer rows.Close()

	ws := make(schedule.WeeklySchedule, 7)
	for rows.Next() {
		var (
			dayOfWeek int
			day       schedule.DaySchedule
			start     *string
			end       *string
		)
		if err := rows.Scan(&dayOfWeek, &day.IsWorkingDay, &day.IsHalfDay, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan weekly schedule day: %w", err)
		}
		if dayOfWeek < 0 || dayOfWeek > 6 {
			return nil, schedule.ErrInvalidDayOfWeek
		}
		if start != nil {
			day.StartTime = *start
		}
		if end != nil {
			day.EndTime = *end
		}
		ws[time.Weekday(dayOfWeek)] = day
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ws) == 0 {
		return nil, schedule.ErrScheduleNotFound
	}

	return ws, nil
}

func (r *weeklyScheduleRepositoryImpl) Upsert(ctx context.Context, companyID string, ws schedule.WeeklySchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekly_schedule_days (
			id, company_id, day_of_week, is_working_day, is_half_day,
			start_time, end_time, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, NOW(), NOW()
		)
		ON CONFLICT (company_id, day_of_week) DO UPDATE SET
			is_working_day = EXCLUDED.is_working_day,
			is_half_day = EXCLUDED.is_half_day,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			updated_at = NOW()
	`

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day, ok := ws[weekday]
		if !ok {
			return schedule.ErrIncompleteSchedule
		}

		_, err := q.Exec(ctx, query,
			uuid.NewString(), companyID, int(weekday), day.IsWorkingDay, day.IsHalfDay,
			nullableString(day.StartTime), nullableString(day.EndTime),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert weekly schedule day %d: %w", int(weekday), err)
		}
	}

	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
