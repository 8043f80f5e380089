package handler

import (
	"net/http"

	"github.com/mkendrick/inkwell/internal/service"
)

// RegisterRoutes sets up all API routes on the given mux. Every /api route
// passes through ResolveIdentity so that a presented-but-bad credential is
// rejected uniformly, while the per-action policy decides what anonymous
// callers may do.
func RegisterRoutes(
	mux *http.ServeMux,
	authSvc *service.AuthService,
	users *service.UserService,
	posts *service.PostService,
	comments *service.CommentService,
	feedback *service.FeedbackService,
	stats *service.StatsService,
) {
	authH := NewAuthHandler(authSvc)
	userH := NewUserHandler(users)
	postH := NewPostHandler(posts)
	commentH := NewCommentHandler(comments)
	feedbackH := NewFeedbackHandler(feedback)
	adminH := NewAdminHandler(feedback, stats)

	resolve := func(h http.HandlerFunc) http.Handler {
		return ResolveIdentity(authSvc, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/register", authH.HandleRegister)
	mux.HandleFunc("POST /api/login", authH.HandleLogin)

	mux.Handle("GET /api/blog_posts", resolve(postH.HandleList))
	mux.Handle("POST /api/blog_posts", resolve(postH.HandleCreate))
	mux.Handle("GET /api/blog_posts/{post_uid}", resolve(postH.HandleGet))

	mux.Handle("GET /api/comments", resolve(commentH.HandleList))
	mux.Handle("POST /api/comments", resolve(commentH.HandleCreate))

	mux.Handle("GET /api/users/{user_uid}", resolve(userH.HandleGet))
	mux.Handle("PUT /api/users/{user_uid}", resolve(userH.HandleUpdate))

	mux.Handle("POST /api/feedback", resolve(feedbackH.HandleSubmit))

	mux.Handle("GET /api/reports", resolve(adminH.HandleReports))
	mux.Handle("GET /api/stats", resolve(adminH.HandleStats))
}
