package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/coreorbit/officehub-backend-go/internal/domain/leave"
	"github.com/coreorbit/officehub-backend-go/internal/handler/http/response"
	"github.com/coreorbit/officehub-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	CalculateSimple(w http.ResponseWriter, r *http.Request)

	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Calculate implements LeaveHandler.
func (l *LeaveHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req leave.CalculateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Calculate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	companyID, ok := companyIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "company_id claim is missing or invalid")
		return
	}
	req.CompanyID = companyID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := l.leaveService.CalculateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewCalculationResponse(result))
}

// CalculateSimple implements LeaveHandler.
func (l *LeaveHandlerImpl) CalculateSimple(w http.ResponseWriter, r *http.Request) {
	var req leave.CalculateSimpleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CalculateSimple decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	units, err := l.leaveService.CalculateLeaveSimple(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]float64{"leave_units": units})
}

// CreateHoliday implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	companyID, ok := companyIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "company_id claim is missing or invalid")
		return
	}
	req.CompanyID = companyID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	holiday, err := l.leaveService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", leave.NewHolidayResponse(holiday))
}

// ListHolidays implements LeaveHandler.
func (l *LeaveHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "company_id claim is missing or invalid")
		return
	}

	holidays, err := l.leaveService.ListHolidays(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// DeleteHoliday implements LeaveHandler.
func (l *LeaveHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Holiday ID must be a valid UUID", nil)
		return
	}

	companyID, ok := companyIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "company_id claim is missing or invalid")
		return
	}

	if err := l.leaveService.DeleteHoliday(r.Context(), id, companyID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

func companyIDFromClaims(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", false
	}

	return companyID, true
}
