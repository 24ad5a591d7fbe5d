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

// AttachmentStore is the slice of AttachmentService the handler needs.
type AttachmentStore interface {
	RequestUpload(ctx context.Context, userID models.UserID, entryID, fileName string) (*services.AttachmentUpload, error)
	List(ctx context.Context, userID models.UserID, entryID string) ([]*models.Attachment, error)
	GetDownloadURL(ctx context.Context, userID models.UserID, attachmentID string) (string, error)
	Delete(ctx context.Context, userID models.UserID, attachmentID string) error
}

type AttachmentHandler struct {
	service AttachmentStore
	log     logging.Logger
}

func NewAttachmentHandler(s AttachmentStore, log logging.Logger) *AttachmentHandler {
	return &AttachmentHandler{service: s, log: log}
}

type attachmentUploadRequest struct {
	FileName string `json:"file_name"`
}

type attachmentResponse struct {
	ID        string    `json:"id"`
	EntryID   string    `json:"entry_id"`
	FileName  string    `json:"file_name"`
	CreatedAt time.Time `json:"created_at"`
	URL       string    `json:"url,omitempty"`
}

func (h *AttachmentHandler) RequestUpload(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req attachmentUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FileName == "" {
		writeError(w, http.StatusBadRequest, "file_name is required")
		return
	}

	upload, err := h.service.RequestUpload(r.Context(), userID, chi.URLParam(r, "id"), req.FileName)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	a := upload.Attachment
	writeJSON(w, http.StatusCreated, attachmentResponse{
		ID: a.ID, EntryID: a.EntryID, FileName: a.FileName, CreatedAt: a.CreatedAt,
		URL: upload.UploadURL,
	})
}

// List returns attachment metadata with a fresh presigned GET URL per item.
func (h *AttachmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := h.service.List(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	resp := make([]attachmentResponse, 0, len(items))
	for _, a := range items {
		url, err := h.service.GetDownloadURL(r.Context(), userID, a.ID)
		if err != nil {
			respondError(r.Context(), w, h.log, err)
			return
		}
		resp = append(resp, attachmentResponse{
			ID: a.ID, EntryID: a.EntryID, FileName: a.FileName, CreatedAt: a.CreatedAt, URL: url,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "attachmentID")); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
