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

type MoodHandler struct {
	service *services.MoodService
	log     logging.Logger
}

func NewMoodHandler(s *services.MoodService, log logging.Logger) *MoodHandler {
	return &MoodHandler{service: s, log: log}
}

type moodRequest struct {
	Mood   string `json:"mood"`
	Note   string `json:"note"`
	Rating int    `json:"rating"`
}

type moodResponse struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

func toMoodResponse(m *models.Mood) moodResponse {
	return moodResponse{ID: m.ID, Mood: m.Mood, Note: m.Note, Rating: m.Rating, CreatedAt: m.CreatedAt}
}

func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Mood == "" {
		writeError(w, http.StatusBadRequest, "mood is required")
		return
	}

	mood, err := h.service.Create(r.Context(), userID, &models.Mood{
		Mood: req.Mood, Note: req.Note, Rating: req.Rating,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMoodResponse(mood))
}

func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
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

	resp := make([]moodResponse, 0, len(items))
	for _, m := range items {
		resp = append(resp, toMoodResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *MoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	mood, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMoodResponse(mood))
}

func (h *MoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	err := h.service.Update(r.Context(), userID, &models.Mood{
		ID: id, Mood: req.Mood, Note: req.Note, Rating: req.Rating,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *MoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
