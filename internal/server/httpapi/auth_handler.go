package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jkalnins/daybook/internal/logging"
	"github.com/jkalnins/daybook/internal/server/models"
)

// AuthService is the slice of UserService the auth handler needs.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthHandler struct {
	service AuthService
	log     logging.Logger
}

func NewAuthHandler(s AuthService, log logging.Logger) *AuthHandler {
	return &AuthHandler{service: s, log: log}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	h.log.Info(r.Context(), "user registered", "username", user.Username)
	writeJSON(w, http.StatusCreated, registerResponse{ID: user.ID.String(), Username: user.Username})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token})
}
