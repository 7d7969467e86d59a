package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ListStatuses(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)
	SaveDay(w http.ResponseWriter, r *http.Request)
	ClearDay(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListStatuses implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListStatuses(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.attendanceService.ListStatuses())
}

// ListHolidays implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "Query parameter 'month' is required", nil)
		return
	}

	holidays, err := h.attendanceService.ListHolidays(month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// GetMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := chi.URLParam(r, "month")

	result, err := h.attendanceService.GetMonth(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) SaveDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		response.BadRequest(w, "Day must be a number", nil)
		return
	}

	var req attendance.SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveDay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")
	req.Month = chi.URLParam(r, "month")
	req.Day = day

	result, err := h.attendanceService.SaveDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", result)
}

// ClearDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClearDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		response.BadRequest(w, "Day must be a number", nil)
		return
	}

	req := attendance.ClearDayRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Month:      chi.URLParam(r, "month"),
		Day:        day,
	}
	if err := h.attendanceService.ClearDay(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance entry removed", nil)
}
