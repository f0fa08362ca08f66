package listener

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pixil98/go-survival/internal/accounts"
)

// Accounts creates and checks user accounts.
type Accounts interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Verify(ctx context.Context, username, password string) (*accounts.User, error)
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accountResponse struct {
	Success bool   `json:"success"`
	UserID  int64  `json:"userId,omitempty"`
	Message string `json:"message,omitempty"`
}

func (l *WebListener) handleLogin(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeAccount(w, http.StatusBadRequest, accountResponse{Message: "Malformed request."})
		return
	}

	u, err := l.accounts.Verify(r.Context(), c.Username, c.Password)
	switch {
	case errors.Is(err, accounts.ErrInvalidCredentials):
		writeAccount(w, http.StatusUnauthorized, accountResponse{Message: "Invalid username or password."})
	case err != nil:
		slog.ErrorContext(r.Context(), "login", "error", err)
		writeAccount(w, http.StatusInternalServerError, accountResponse{Message: "Server error."})
	default:
		writeAccount(w, http.StatusOK, accountResponse{Success: true, UserID: u.ID})
	}
}

func (l *WebListener) handleRegister(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeAccount(w, http.StatusBadRequest, accountResponse{Message: "Malformed request."})
		return
	}

	id, err := l.accounts.Register(r.Context(), c.Username, c.Password)
	switch {
	case errors.Is(err, accounts.ErrUsernameTaken):
		writeAccount(w, http.StatusConflict, accountResponse{Message: "That username is taken."})
	case errors.Is(err, accounts.ErrInvalidUsername), errors.Is(err, accounts.ErrInvalidPassword):
		writeAccount(w, http.StatusBadRequest, accountResponse{Message: err.Error()})
	case err != nil:
		slog.ErrorContext(r.Context(), "register", "error", err)
		writeAccount(w, http.StatusInternalServerError, accountResponse{Message: "Server error."})
	default:
		writeAccount(w, http.StatusCreated, accountResponse{Success: true, UserID: id})
	}
}

func writeAccount(w http.ResponseWriter, status int, resp accountResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Debug("writing account response", "error", err)
	}
}
