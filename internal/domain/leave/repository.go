package leave

import (
	"context"
	"time"
)

// HolidayRepository - interface for the holidays table
type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]Holiday, error)
	GetByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id string, companyID string) error
}
