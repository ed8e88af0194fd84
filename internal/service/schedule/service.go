package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreorbit/officehub-backend-go/internal/domain/schedule"
	"github.com/coreorbit/officehub-backend-go/internal/fixtures"
	"github.com/coreorbit/officehub-backend-go/internal/pkg/database"
	"github.com/coreorbit/officehub-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// txRunner runs fn inside a database transaction. It exists as a field
// so tests can exercise the update path without a live pool.
type txRunner func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error

type scheduleServiceImpl struct {
	db              *database.DB
	weeklySchedRepo schedule.WeeklyScheduleRepository
	runInTx         txRunner
}

func NewScheduleService(db *database.DB, weeklySchedRepo schedule.WeeklyScheduleRepository) schedule.ScheduleService {
	return &scheduleServiceImpl{
		db:              db,
		weeklySchedRepo: weeklySchedRepo,
		runInTx:         postgresql.WithTransaction,
	}
}

// GetWeeklySchedule implements schedule.ScheduleService. Companies that
// have never configured a schedule get the default Monday-Friday one.
func (s *scheduleServiceImpl) GetWeeklySchedule(ctx context.Context, companyID string) (schedule.WeeklySchedule, error) {
	ws, err := s.weeklySchedRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return fixtures.DefaultWeeklySchedule(), nil
		}
		return nil, fmt.Errorf("failed to get weekly schedule: %w", err)
	}

	if err := ws.Validate(); err != nil {
		return nil, err
	}

	return ws, nil
}

// UpdateWeeklySchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateWeeklySchedule(ctx context.Context, req schedule.UpdateWeeklyScheduleRequest) (schedule.WeeklySchedule, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ws := req.ToWeeklySchedule()
	if err := ws.Validate(); err != nil {
		return nil, err
	}

	err := s.runInTx(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.weeklySchedRepo.Upsert(txCtx, req.CompanyID, ws)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update weekly schedule: %w", err)
	}

	return ws, nil
}
