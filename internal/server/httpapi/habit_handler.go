package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jkalnins/daybook/internal/logging"
	"github.com/jkalnins/daybook/internal/server/models"
	"github.com/jkalnins/daybook/internal/server/services"
)

type HabitHandler struct {
	service *services.HabitService
	log     logging.Logger
}

func NewHabitHandler(s *services.HabitService, log logging.Logger) *HabitHandler {
	return &HabitHandler{service: s, log: log}
}

type habitRequest struct {
	Title     string `json:"title"`
	Frequency string `json:"frequency"`
	Progress  int    `json:"progress"`
	Goal      int    `json:"goal"`
}

type habitResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Frequency string    `json:"frequency"`
	Progress  int       `json:"progress"`
	Goal      int       `json:"goal"`
	CreatedAt time.Time `json:"created_at"`
}

func toHabitResponse(hb *models.Habit) habitResponse {
	return habitResponse{
		ID: hb.ID, Title: hb.Title, Frequency: hb.Frequency,
		Progress: hb.Progress, Goal: hb.Goal, CreatedAt: hb.CreatedAt,
	}
}

func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req habitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	habit, err := h.service.Create(r.Context(), userID, &models.Habit{
		Title: req.Title, Frequency: req.Frequency, Progress: req.Progress, Goal: req.Goal,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHabitResponse(habit))
}

func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
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

	resp := make([]habitResponse, 0, len(items))
	for _, hb := range items {
		resp = append(resp, toHabitResponse(hb))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HabitHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	habit, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHabitResponse(habit))
}

func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req habitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	err := h.service.Update(r.Context(), userID, &models.Habit{
		ID: id, Title: req.Title, Frequency: req.Frequency, Progress: req.Progress, Goal: req.Goal,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
