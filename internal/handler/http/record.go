package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RecordHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	recordService record.RecordService
}

func NewRecordHandler(recordService record.RecordService) RecordHandler {
	return &recordHandlerImpl{
		recordService: recordService,
	}
}

func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

// List implements RecordHandler. Filters: project_id, employee_id, month.
func (h *recordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := record.RecordFilter{
		ProjectID:  optionalQuery(r, "project_id"),
		EmployeeID: optionalQuery(r, "employee_id"),
		Month:      optionalQuery(r, "month"),
	}

	result, err := h.recordService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Get implements RecordHandler.
func (h *recordHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.recordService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements RecordHandler.
func (h *recordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req record.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recordService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Record created successfully", result)
}

// Update implements RecordHandler.
func (h *recordHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req record.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.recordService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Record updated successfully", result)
}

// Delete implements RecordHandler.
func (h *recordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.recordService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Record deleted successfully", nil)
}
