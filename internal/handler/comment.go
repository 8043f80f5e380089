package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mkendrick/inkwell/internal/auth"
	"github.com/mkendrick/inkwell/internal/domain"
	"github.com/mkendrick/inkwell/internal/service"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	comments *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// HandleList returns a post's comments.
// GET /api/comments?post_uid=...
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !requireAction(w, r, auth.ActionViewComments) {
		return
	}

	postID := r.URL.Query().Get("post_uid")
	if postID == "" {
		writeError(w, http.StatusBadRequest, "post_uid query parameter is required.")
		return
	}

	comments, err := h.comments.ListByPost(r.Context(), postID)
	if err != nil {
		slog.Error("list comments", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"comments": toCommentDTOs(comments)})
}

// HandleCreate creates a comment attributed to the authenticated user. Any
// commenter field in the request body is ignored.
// POST /api/comments
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !requireAction(w, r, auth.ActionCreateComment) {
		return
	}
	actor := UserFromContext(r.Context())

	var req struct {
		PostID string `json:"post_uid"`
		Body   string `json:"comment_text"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comment, err := h.comments.Create(r.Context(), actor.ID, req.PostID, req.Body)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create comment", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":     true,
		"message":     "Comment added successfully",
		"comment_uid": comment.ID,
	})
}
