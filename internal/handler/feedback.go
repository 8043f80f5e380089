package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mkendrick/inkwell/internal/auth"
	"github.com/mkendrick/inkwell/internal/domain"
	"github.com/mkendrick/inkwell/internal/service"
)

// FeedbackHandler handles site feedback submissions.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// HandleSubmit stores a feedback entry. Anonymous submissions are allowed;
// when the request is authenticated the entry is attributed to the acting
// identity, never to a client-supplied value.
// POST /api/feedback
// Request: {"message":"...","rating":1..5}
func (h *FeedbackHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if !requireAction(w, r, auth.ActionSubmitFeedback) {
		return
	}

	var req struct {
		Message string `json:"message"`
		Rating  int    `json:"rating"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var userID *string
	if actor := UserFromContext(r.Context()); actor != nil {
		userID = &actor.ID
	}

	entry, err := h.feedback.Submit(r.Context(), userID, req.Message, req.Rating)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("submit feedback", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"message":      "Feedback submitted",
		"feedback_uid": entry.ID,
	})
}
