package handler

import (
	"log/slog"
	"net/http"

	"github.com/mkendrick/inkwell/internal/auth"
	"github.com/mkendrick/inkwell/internal/service"
)

// AdminHandler serves the admin dashboard data: feedback reports and site
// totals. All routes require the admin role.
type AdminHandler struct {
	feedback *service.FeedbackService
	stats    *service.StatsService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(feedback *service.FeedbackService, stats *service.StatsService) *AdminHandler {
	return &AdminHandler{feedback: feedback, stats: stats}
}

// HandleReports returns recent feedback entries.
// GET /api/reports
func (h *AdminHandler) HandleReports(w http.ResponseWriter, r *http.Request) {
	if !requireAction(w, r, auth.ActionViewReports) {
		return
	}

	entries, err := h.feedback.ListRecent(r.Context())
	if err != nil {
		slog.Error("list reports", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reports": toFeedbackDTOs(entries)})
}

// HandleStats returns site-wide totals.
// GET /api/stats
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if !requireAction(w, r, auth.ActionViewSiteStats) {
		return
	}

	totals, err := h.stats.Totals(r.Context())
	if err != nil {
		slog.Error("site stats", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"stats": toStatsDTO(totals)})
}
