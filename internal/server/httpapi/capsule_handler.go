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

type CapsuleHandler struct {
	service *services.CapsuleService
	log     logging.Logger
}

func NewCapsuleHandler(s *services.CapsuleService, log logging.Logger) *CapsuleHandler {
	return &CapsuleHandler{service: s, log: log}
}

type capsuleRequest struct {
	Content  string    `json:"content"`
	OpenDate time.Time `json:"open_date"`
}

type capsuleResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content,omitempty"`
	OpenDate  time.Time `json:"open_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Create accepts a capsule. The response omits the content: once sealed, the
// message is not shown again until the open date.
func (h *CapsuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req capsuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" || req.OpenDate.IsZero() {
		writeError(w, http.StatusBadRequest, "content and open_date are required")
		return
	}

	capsule, err := h.service.Create(r.Context(), userID, req.Content, req.OpenDate)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, capsuleResponse{
		ID: capsule.ID, OpenDate: capsule.OpenDate, CreatedAt: capsule.CreatedAt,
	})
}

// List returns only capsules whose open date has passed.
func (h *CapsuleHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := h.service.ListOpen(r.Context(), userID)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	resp := make([]capsuleResponse, 0, len(items))
	for _, c := range items {
		resp = append(resp, toCapsuleResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CapsuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	capsule, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCapsuleResponse(capsule))
}

func (h *CapsuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func toCapsuleResponse(c *models.Capsule) capsuleResponse {
	return capsuleResponse{ID: c.ID, Content: c.Content, OpenDate: c.OpenDate, CreatedAt: c.CreatedAt}
}
