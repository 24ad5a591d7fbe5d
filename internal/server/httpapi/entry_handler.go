package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jkalnins/daybook/internal/logging"
	"github.com/jkalnins/daybook/internal/server/models"
	"github.com/jkalnins/daybook/internal/server/services"
)

// EntryVault is the slice of EntryService the entry handler needs.
type EntryVault interface {
	Create(ctx context.Context, userID models.UserID, title, content string, tags []string) (*models.DecryptedEntry, error)
	List(ctx context.Context, userID models.UserID) ([]*models.EntrySummary, error)
	Read(ctx context.Context, userID models.UserID, id string) (*models.DecryptedEntry, error)
	Update(ctx context.Context, userID models.UserID, id string, patch services.EntryPatch) error
	Delete(ctx context.Context, userID models.UserID, id string) error
}

type EntryHandler struct {
	service EntryVault
	log     logging.Logger
}

func NewEntryHandler(s EntryVault, log logging.Logger) *EntryHandler {
	return &EntryHandler{service: s, log: log}
}

type entryRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// entryUpdateRequest uses pointers so an omitted field is distinguishable
// from an explicitly empty one; omitted fields keep their stored values.
type entryUpdateRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

type entryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

type entrySummaryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

func toEntryResponse(e *models.DecryptedEntry) entryResponse {
	return entryResponse{
		ID: e.ID, Title: e.Title, Content: e.Content, Tags: e.Tags, CreatedAt: e.CreatedAt,
	}
}

func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.service.Create(r.Context(), userID, req.Title, req.Content, req.Tags)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	summaries, err := h.service.List(r.Context(), userID)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	resp := make([]entrySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, entrySummaryResponse{
			ID: s.ID, Title: s.Title, Tags: s.Tags, CreatedAt: s.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	entry, err := h.service.Read(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req entryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	patch := services.EntryPatch{Title: req.Title, Content: req.Content, Tags: req.Tags}
	if err := h.service.Update(r.Context(), userID, id, patch); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
