package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/coreorbit/officehub-backend-go/internal/domain/leave"
	"github.com/coreorbit/officehub-backend-go/internal/domain/schedule"
	"github.com/coreorbit/officehub-backend-go/internal/fixtures"
	"github.com/coreorbit/officehub-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type leaveServiceImpl struct {
	db           *database.DB
	holidayRepo  leave.HolidayRepository
	scheduleRepo schedule.WeeklyScheduleRepository
	calculator   *Calculator
}

func NewLeaveService(
	db *database.DB,
	holidayRepo leave.HolidayRepository,
	scheduleRepo schedule.WeeklyScheduleRepository,
	calculator *Calculator,
) leave.LeaveService {
	return &leaveServiceImpl{
		db:           db,
		holidayRepo:  holidayRepo,
		scheduleRepo: scheduleRepo,
		calculator:   calculator,
	}
}

// CalculateLeave implements leave.LeaveService.
func (s *leaveServiceImpl) CalculateLeave(ctx context.Context, req leave.CalculateLeaveRequest) (leave.CalculationResult, error) {
	if err := req.Validate(); err != nil {
		return leave.CalculationResult{}, err
	}

	fromDate, err := time.Parse(dateLayout, req.FromDate)
	if err != nil {
		return leave.CalculationResult{}, fmt.Errorf("failed to parse from date: %w", err)
	}

	toDate, err := time.Parse(dateLayout, req.ToDate)
	if err != nil {
		return leave.CalculationResult{}, fmt.Errorf("failed to parse to date: %w", err)
	}

	weeklySchedule, err := s.resolveWeeklySchedule(ctx, req)
	if err != nil {
		return leave.CalculationResult{}, err
	}

	holidays, err := s.resolveHolidays(ctx, req, fromDate, toDate)
	if err != nil {
		return leave.CalculationResult{}, err
	}

	calcReq := leave.CalculationRequest{
		FromDate:              fromDate,
		ToDate:                toDate,
		DurationType:          leave.DurationType(req.DurationType),
		WeeklySchedule:        weeklySchedule,
		Holidays:              holidays,
		ExcludeHolidays:       boolOrDefault(req.ExcludeHolidays, true),
		ExcludeNonWorkingDays: boolOrDefault(req.ExcludeNonWorkingDays, true),
	}

	return s.calculator.Calculate(calcReq)
}

// CalculateLeaveSimple implements leave.LeaveService.
func (s *leaveServiceImpl) CalculateLeaveSimple(ctx context.Context, req leave.CalculateSimpleRequest) (float64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	fromDate, err := time.Parse(dateLayout, req.FromDate)
	if err != nil {
		return 0, fmt.Errorf("failed to parse from date: %w", err)
	}

	toDate, err := time.Parse(dateLayout, req.ToDate)
	if err != nil {
		return 0, fmt.Errorf("failed to parse to date: %w", err)
	}

	return s.calculator.CalculateSimple(fromDate, toDate, leave.DurationType(req.DurationType))
}

// CreateHoliday implements leave.LeaveService.
func (s *leaveServiceImpl) CreateHoliday(ctx context.Context, req leave.CreateHolidayRequest) (leave.Holiday, error) {
	if err := req.Validate(); err != nil {
		return leave.Holiday{}, err
	}

	holiday := leave.Holiday{
		ID:        uuid.NewString(),
		CompanyID: req.CompanyID,
		Date:      req.Date,
		Name:      req.Name,
		Type:      req.Type,
	}

	created, err := s.holidayRepo.Create(ctx, holiday)
	if err != nil {
		if errors.Is(err, leave.ErrHolidayExists) {
			return leave.Holiday{}, err
		}
		return leave.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

// ListHolidays implements leave.LeaveService.
func (s *leaveServiceImpl) ListHolidays(ctx context.Context, companyID string) ([]leave.HolidayResponse, error) {
	holidays, err := s.holidayRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]leave.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, leave.NewHolidayResponse(h))
	}

	return responses, nil
}

// DeleteHoliday implements leave.LeaveService.
func (s *leaveServiceImpl) DeleteHoliday(ctx context.Context, id string, companyID string) error {
	if err := s.holidayRepo.Delete(ctx, id, companyID); err != nil {
		return err
	}
	return nil
}

// resolveWeeklySchedule prefers the inline override, then the company's
// stored schedule, then the default Monday-Friday schedule when the
// company has never configured one.
func (s *leaveServiceImpl) resolveWeeklySchedule(ctx context.Context, req leave.CalculateLeaveRequest) (schedule.WeeklySchedule, error) {
	if inline := req.InlineWeeklySchedule(); inline != nil {
		return inline, nil
	}

	ws, err := s.scheduleRepo.GetByCompanyID(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			slog.Debug("no weekly schedule configured, using default", "company_id", req.CompanyID)
			return fixtures.DefaultWeeklySchedule(), nil
		}
		return nil, fmt.Errorf("failed to resolve weekly schedule: %w", err)
	}

	return ws, nil
}

func (s *leaveServiceImpl) resolveHolidays(ctx context.Context, req leave.CalculateLeaveRequest, from, to time.Time) ([]leave.Holiday, error) {
	if inline := req.InlineHolidays(); inline != nil {
		return inline, nil
	}

	holidays, err := s.holidayRepo.GetByDateRange(ctx, req.CompanyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve holidays: %w", err)
	}

	return holidays, nil
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
