// Package httpapi exposes the Daybook REST surface over chi.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jkalnins/daybook/internal/common"
	"github.com/jkalnins/daybook/internal/logging"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// respondError translates service errors into HTTP statuses. Decryption
// failures are logged as data-integrity faults but surface as a generic 500.
func respondError(ctx context.Context, w http.ResponseWriter, log logging.Logger, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, common.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
	case errors.Is(err, common.ErrDecryptionFailed):
		log.Error(ctx, "stored entry failed to decrypt", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		log.Error(ctx, "request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
