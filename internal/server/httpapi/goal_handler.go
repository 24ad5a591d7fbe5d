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

type GoalHandler struct {
	service *services.GoalService
	log     logging.Logger
}

func NewGoalHandler(s *services.GoalService, log logging.Logger) *GoalHandler {
	return &GoalHandler{service: s, log: log}
}

type goalRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Milestones  []string  `json:"milestones"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
}

type goalResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Milestones  []string  `json:"milestones"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

func toGoalResponse(g *models.Goal) goalResponse {
	return goalResponse{
		ID: g.ID, Title: g.Title, Description: g.Description, Milestones: g.Milestones,
		DueDate: g.DueDate, IsCompleted: g.IsCompleted, CreatedAt: g.CreatedAt,
	}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	goal, err := h.service.Create(r.Context(), userID, &models.Goal{
		Title: req.Title, Description: req.Description, Milestones: req.Milestones,
		DueDate: req.DueDate, IsCompleted: req.IsCompleted,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalResponse(goal))
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
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

	resp := make([]goalResponse, 0, len(items))
	for _, g := range items {
		resp = append(resp, toGoalResponse(g))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	goal, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	err := h.service.Update(r.Context(), userID, &models.Goal{
		ID: id, Title: req.Title, Description: req.Description, Milestones: req.Milestones,
		DueDate: req.DueDate, IsCompleted: req.IsCompleted,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
