package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coreorbit/officehub-backend-go/internal/domain/leave"
	"github.com/coreorbit/officehub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) leave.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, holiday leave.Holiday) (leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (
			id, company_id, holiday_date, name, holiday_type,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		holiday.ID, holiday.CompanyID, holiday.Date, holiday.Name, holiday.Type,
	).Scan(&holiday.CreatedAt, &holiday.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.Holiday{}, leave.ErrHolidayExists
		}
		return leave.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday, nil
}

func (r *holidayRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, holiday_date, name, holiday_type, created_at, updated_at
		FROM holidays
		WHERE company_id = $1
		ORDER BY holiday_date ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

func (r *holidayRepositoryImpl) GetByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, holiday_date, name, holiday_type, created_at, updated_at
		FROM holidays
		WHERE company_id = $1 AND holiday_date BETWEEN $2 AND $3
		ORDER BY holiday_date ASC
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays in range: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM holidays
		WHERE id = $1 AND company_id = $2
	`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrHolidayNotFound
	}

	return nil
}

func scanHolidays(rows pgx.Rows) ([]leave.Holiday, error) {
	var holidays []leave.Holiday
	for rows.Next() {
		var (
			h    leave.Holiday
			date time.Time
		)
		err := rows.Scan(
			&h.ID,
			&h.CompanyID,
			&date,
			&h.Name,
			&h.Type,
			&h.CreatedAt,
			&h.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		// holiday_date is a DATE column; keep the entity's string form.
		h.Date = date.Format("2006-01-02")
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return holidays, nil
}
