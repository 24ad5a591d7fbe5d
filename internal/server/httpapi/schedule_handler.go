package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jkalnins/daybook/internal/logging"
	"github.com/jkalnins/daybook/internal/server/models"
	"github.com/jkalnins/daybook/internal/server/services"
)

type ScheduleHandler struct {
	service *services.ScheduleService
	log     logging.Logger
}

func NewScheduleHandler(s *services.ScheduleService, log logging.Logger) *ScheduleHandler {
	return &ScheduleHandler{service: s, log: log}
}

type scheduleRequest struct {
	CourseName string   `json:"course_name"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Location   string   `json:"location"`
	DaysOfWeek []string `json:"days_of_week"`
}

type scheduleResponse struct {
	ID         string   `json:"id"`
	CourseName string   `json:"course_name"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Location   string   `json:"location"`
	DaysOfWeek []string `json:"days_of_week"`
}

func toScheduleResponse(s *models.Schedule) scheduleResponse {
	return scheduleResponse{
		ID: s.ID, CourseName: s.CourseName, StartTime: s.StartTime,
		EndTime: s.EndTime, Location: s.Location, DaysOfWeek: s.DaysOfWeek,
	}
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CourseName == "" {
		writeError(w, http.StatusBadRequest, "course_name is required")
		return
	}

	schedule, err := h.service.Create(r.Context(), userID, &models.Schedule{
		CourseName: req.CourseName, StartTime: req.StartTime, EndTime: req.EndTime,
		Location: req.Location, DaysOfWeek: req.DaysOfWeek,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toScheduleResponse(schedule))
}

func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	resp := make([]scheduleResponse, 0, len(items))
	for _, s := range items {
		resp = append(resp, toScheduleResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	schedule, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleResponse(schedule))
}

func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	err := h.service.Update(r.Context(), userID, &models.Schedule{
		ID: id, CourseName: req.CourseName, StartTime: req.StartTime, EndTime: req.EndTime,
		Location: req.Location, DaysOfWeek: req.DaysOfWeek,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
