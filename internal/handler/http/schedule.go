package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/coreorbit/officehub-backend-go/internal/domain/schedule"
	"github.com/coreorbit/officehub-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetWeekly(w http.ResponseWriter, r *http.Request)
	UpdateWeekly(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GetWeekly implements ScheduleHandler.
func (s *ScheduleHandlerImpl) GetWeekly(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "company_id claim is missing or invalid")
		return
	}

	ws, err := s.scheduleService.GetWeeklySchedule(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedule.NewWeeklyScheduleResponse(ws))
}

// UpdateWeekly implements ScheduleHandler.
func (s *ScheduleHandlerImpl) UpdateWeekly(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateWeeklyScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateWeekly decode error", "error", err)
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

	ws, err := s.scheduleService.UpdateWeeklySchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly schedule updated successfully", schedule.NewWeeklyScheduleResponse(ws))
}
