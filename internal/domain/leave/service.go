package leave

import (
	"context"
)

type LeaveService interface {
	// Calculation
	CalculateLeave(ctx context.Context, req CalculateLeaveRequest) (CalculationResult, error)
	CalculateLeaveSimple(ctx context.Context, req CalculateSimpleRequest) (float64, error)
	// Holiday calendar
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (Holiday, error)
	ListHolidays(ctx context.Context, companyID string) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string, companyID string) error
}
