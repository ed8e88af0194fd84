package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coreorbit/officehub-backend-go/internal/domain/leave"
	"github.com/coreorbit/officehub-backend-go/internal/domain/schedule"
	"github.com/coreorbit/officehub-backend-go/internal/fixtures"
	"github.com/coreorbit/officehub-backend-go/internal/pkg/jwt"
	leaveService "github.com/coreorbit/officehub-backend-go/internal/service/leave"
	scheduleService "github.com/coreorbit/officehub-backend-go/internal/service/schedule"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type stubHolidayRepo struct {
	holidays []leave.Holiday
}

func (f *stubHolidayRepo) Create(ctx context.Context, holiday leave.Holiday) (leave.Holiday, error) {
	f.holidays = append(f.holidays, holiday)
	return holiday, nil
}

func (f *stubHolidayRepo) GetByCompanyID(ctx context.Context, companyID string) ([]leave.Holiday, error) {
	return f.holidays, nil
}

func (f *stubHolidayRepo) GetByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]leave.Holiday, error) {
	var matched []leave.Holiday
	for _, h := range f.holidays {
		d, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			continue
		}
		if !d.Before(from) && !d.After(to) {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

func (f *stubHolidayRepo) Delete(ctx context.Context, id string, companyID string) error {
	for i, h := range f.holidays {
		if h.ID == id {
			f.holidays = append(f.holidays[:i], f.holidays[i+1:]...)
			return nil
		}
	}
	return leave.ErrHolidayNotFound
}

type stubScheduleRepo struct {
	ws schedule.WeeklySchedule
}

func (f *stubScheduleRepo) GetByCompanyID(ctx context.Context, companyID string) (schedule.WeeklySchedule, error) {
	if f.ws == nil {
		return nil, schedule.ErrScheduleNotFound
	}
	return f.ws, nil
}

func (f *stubScheduleRepo) Upsert(ctx context.Context, companyID string, ws schedule.WeeklySchedule) error {
	f.ws = ws
	return nil
}

func newTestRouter(holidayRepo *stubHolidayRepo, scheduleRepo *stubScheduleRepo) (*chi.Mux, jwt.Service) {
	JWTService := jwt.NewJWTService(handlerTestSecret, "1h")

	calculator := leaveService.NewCalculator()
	leaveSvc := leaveService.NewLeaveService(nil, holidayRepo, scheduleRepo, calculator)
	scheduleSvc := scheduleService.NewScheduleService(nil, scheduleRepo)

	router := NewRouter(JWTService, NewLeaveHandler(leaveSvc), NewScheduleHandler(scheduleSvc))
	return router, JWTService
}

func authHeader(t *testing.T, JWTService jwt.Service) string {
	token, _, err := JWTService.GenerateAccessToken("u1", "user@example.com", "c1", "admin")
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, router *chi.Mux, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCalculateEndpoint(t *testing.T) {
	router, JWTService := newTestRouter(&stubHolidayRepo{}, &stubScheduleRepo{ws: fixtures.DefaultWeeklySchedule()})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/leave/calculate", authHeader(t, JWTService), map[string]string{
		"from_date":     "2026-02-06",
		"to_date":       "2026-02-09",
		"duration_type": "full_day",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool                      `json:"success"`
		Data    leave.CalculationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 2.0, resp.Data.LeaveUnits)
	assert.Equal(t, 4, resp.Data.TotalCalendarDays)
	assert.Equal(t, 2, resp.Data.NonWorkingDayCount)
	assert.Len(t, resp.Data.Breakdown, 4)
}

func TestCalculateEndpoint_SeededHolidays(t *testing.T) {
	holidayRepo := &stubHolidayRepo{holidays: fixtures.GetDefaultHolidays("c1", 2026)}
	router, JWTService := newTestRouter(holidayRepo, &stubScheduleRepo{ws: fixtures.DefaultWeeklySchedule()})

	// 2026-08-17 (Hari Kemerdekaan) is a Monday.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/leave/calculate", authHeader(t, JWTService), map[string]string{
		"from_date": "2026-08-17",
		"to_date":   "2026-08-21",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool                      `json:"success"`
		Data    leave.CalculationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 4.0, resp.Data.LeaveUnits)
	assert.Equal(t, 1, resp.Data.HolidayDayCount)
	require.Len(t, resp.Data.Breakdown, 5)
	assert.True(t, resp.Data.Breakdown[0].IsHoliday)
	require.NotNil(t, resp.Data.Breakdown[0].HolidayName)
	assert.Equal(t, "Hari Kemerdekaan", *resp.Data.Breakdown[0].HolidayName)
}

func TestCalculateEndpoint_Unauthorized(t *testing.T) {
	router, _ := newTestRouter(&stubHolidayRepo{}, &stubScheduleRepo{ws: fixtures.DefaultWeeklySchedule()})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/leave/calculate", "", map[string]string{
		"from_date": "2026-02-06",
		"to_date":   "2026-02-09",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCalculateEndpoint_ValidationError(t *testing.T) {
	router, JWTService := newTestRouter(&stubHolidayRepo{}, &stubScheduleRepo{ws: fixtures.DefaultWeeklySchedule()})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/leave/calculate", authHeader(t, JWTService), map[string]string{
		"from_date": "06-02-2026",
		"to_date":   "2026-02-09",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCalculateEndpoint_InvalidRange(t *testing.T) {
	router, JWTService := newTestRouter(&stubHolidayRepo{}, &stubScheduleRepo{ws: fixtures.DefaultWeeklySchedule()})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/leave/calculate", authHeader(t, JWTService), map[string]string{
		"from_date": "2026-02-09",
		"to_date":   "2026-02-06",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculateSimpleEndpoint(t *testing.T) {
	router, JWTService := newTestRouter(&stubHolidayRepo{}, &stubScheduleRepo{ws: fixtures.DefaultWeeklySchedule()})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/leave/calculate/simple", authHeader(t, JWTService), map[string]string{
		"from_date":     "2026-02-02",
		"to_date":       "2026-02-05",
		"duration_type": "second_to_full",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool               `json:"success"`
		Data    map[string]float64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 3.5, resp.Data["leave_units"])
}

func TestHolidayEndpoints(t *testing.T) {
	holidayRepo := &stubHolidayRepo{}
	router, JWTService := newTestRouter(holidayRepo, &stubScheduleRepo{ws: fixtures.DefaultWeeklySchedule()})
	auth := authHeader(t, JWTService)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/leave/holidays", auth, map[string]string{
		"holiday_date": "2026-08-17",
		"holiday_name": "Hari Kemerdekaan",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/leave/holidays", auth, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Data    []leave.HolidayResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Hari Kemerdekaan", resp.Data[0].Name)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/leave/holidays/not-a-uuid", auth, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/leave/holidays/"+resp.Data[0].ID, auth, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/leave/holidays/"+resp.Data[0].ID, auth, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetWeeklyScheduleEndpoint_DefaultsWhenUnconfigured(t *testing.T) {
	router, JWTService := newTestRouter(&stubHolidayRepo{}, &stubScheduleRepo{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/schedules/weekly", authHeader(t, JWTService), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool                            `json:"success"`
		Data    schedule.WeeklyScheduleResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Data.Days, 7)
	assert.True(t, resp.Data.Days["monday"].IsWorkingDay)
	assert.False(t, resp.Data.Days["sunday"].IsWorkingDay)
}
