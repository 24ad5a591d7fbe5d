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

type GratitudeHandler struct {
	service *services.GratitudeService
	log     logging.Logger
}

func NewGratitudeHandler(s *services.GratitudeService, log logging.Logger) *GratitudeHandler {
	return &GratitudeHandler{service: s, log: log}
}

type gratitudeRequest struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type gratitudeResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

func toGratitudeResponse(g *models.Gratitude) gratitudeResponse {
	return gratitudeResponse{ID: g.ID, Content: g.Content, Tags: g.Tags, CreatedAt: g.CreatedAt}
}

func (h *GratitudeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req gratitudeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	note, err := h.service.Create(r.Context(), userID, &models.Gratitude{
		Content: req.Content, Tags: req.Tags,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGratitudeResponse(note))
}

func (h *GratitudeHandler) List(w http.ResponseWriter, r *http.Request) {
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

	resp := make([]gratitudeResponse, 0, len(items))
	for _, g := range items {
		resp = append(resp, toGratitudeResponse(g))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *GratitudeHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	note, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGratitudeResponse(note))
}

func (h *GratitudeHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req gratitudeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	err := h.service.Update(r.Context(), userID, &models.Gratitude{
		ID: id, Content: req.Content, Tags: req.Tags,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *GratitudeHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
