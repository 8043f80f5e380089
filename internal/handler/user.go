package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mkendrick/inkwell/internal/auth"
	"github.com/mkendrick/inkwell/internal/domain"
	"github.com/mkendrick/inkwell/internal/service"
)

// UserHandler handles profile HTTP requests.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleGet returns a public profile.
// GET /api/users/{user_uid}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if !requireAction(w, r, auth.ActionViewProfile) {
		return
	}

	user, err := h.users.GetByID(r.Context(), r.PathValue("user_uid"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		slog.Error("get user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toProfileDTO(user)})
}

// HandleUpdate updates the caller's own profile. Updating another user's
// profile is forbidden regardless of role.
// PUT /api/users/{user_uid}
// Request: {"username":"..."}
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if !requireAction(w, r, auth.ActionUpdateProfile) {
		return
	}
	actor := UserFromContext(r.Context())

	var req struct {
		Username string `json:"username"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err := h.users.UpdateUsername(r.Context(), actor.ID, r.PathValue("user_uid"), req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusForbidden, "You may only update your own profile.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		slog.Error("update user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Profile updated"})
}
