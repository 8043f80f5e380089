package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mkendrick/inkwell/internal/auth"
	"github.com/mkendrick/inkwell/internal/domain"
	"github.com/mkendrick/inkwell/internal/service"
)

// PostHandler handles blog post HTTP requests.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleList returns all posts, optionally filtered by tag or category
// substring.
// GET /api/blog_posts?tags=...&categories=...
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !requireAction(w, r, auth.ActionBrowsePosts) {
		return
	}

	filter := domain.PostFilter{
		Tags:       r.URL.Query().Get("tags"),
		Categories: r.URL.Query().Get("categories"),
	}

	posts, err := h.posts.List(r.Context(), filter)
	if err != nil {
		slog.Error("list posts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": toPostDTOs(posts)})
}

// HandleGet returns a single post.
// GET /api/blog_posts/{post_uid}
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if !requireAction(w, r, auth.ActionViewPost) {
		return
	}

	post, err := h.posts.GetByID(r.Context(), r.PathValue("post_uid"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		slog.Error("get post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": toPostDTO(post)})
}

// HandleCreate creates a post attributed to the authenticated user. Any
// author field in the request body is ignored.
// POST /api/blog_posts
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !requireAction(w, r, auth.ActionCreatePost) {
		return
	}
	actor := UserFromContext(r.Context())

	var req struct {
		Title      string `json:"title"`
		Body       string `json:"body_content"`
		Tags       string `json:"tags"`
		Categories string `json:"categories"`
		Status     string `json:"status"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post := &domain.BlogPost{
		Title:      req.Title,
		Body:       req.Body,
		Tags:       req.Tags,
		Categories: req.Categories,
		Status:     req.Status,
	}

	if err := h.posts.Create(r.Context(), actor.ID, post); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "Blog post created successfully",
		"post_uid": post.ID,
	})
}
