package auth

import "github.com/mkendrick/inkwell/internal/domain"

// Action names an operation subject to the authorization policy.
type Action string

const (
	ActionRegister       Action = "register"
	ActionLogin          Action = "login"
	ActionBrowsePosts    Action = "browse_posts"
	ActionViewPost       Action = "view_post"
	ActionViewComments   Action = "view_comments"
	ActionViewProfile    Action = "view_profile"
	ActionSubmitFeedback Action = "submit_feedback"

	ActionCreatePost    Action = "create_post"
	ActionCreateComment Action = "create_comment"
	ActionUpdateProfile Action = "update_profile"

	ActionViewAdminDashboard Action = "view_admin_dashboard"
	ActionViewReports        Action = "view_reports"
	ActionViewSiteStats      Action = "view_site_stats"
)

type tier int

const (
	tierAnyone tier = iota
	tierAuthenticated
	tierAdmin
)

// actionTiers is the single source of truth for who may perform what.
// New actions are added here, not as scattered role checks.
var actionTiers = map[Action]tier{
	ActionRegister:       tierAnyone,
	ActionLogin:          tierAnyone,
	ActionBrowsePosts:    tierAnyone,
	ActionViewPost:       tierAnyone,
	ActionViewComments:   tierAnyone,
	ActionViewProfile:    tierAnyone,
	ActionSubmitFeedback: tierAnyone,

	ActionCreatePost:    tierAuthenticated,
	ActionCreateComment: tierAuthenticated,
	ActionUpdateProfile: tierAuthenticated,

	ActionViewAdminDashboard: tierAdmin,
	ActionViewReports:        tierAdmin,
	ActionViewSiteStats:      tierAdmin,
}

// Authorize decides whether user (nil for anonymous) may perform action.
// A nil return is a permit; for create actions the attribution to stamp
// onto the new resource is always user.ID, never a client-supplied value.
// The user's role is the one freshly loaded for this request, so role
// changes take effect on the next request even for live tokens.
func Authorize(action Action, user *domain.User) error {
	t, ok := actionTiers[action]
	if !ok {
		return domain.ErrForbidden
	}
	switch t {
	case tierAnyone:
		return nil
	case tierAuthenticated:
		if user == nil {
			return domain.ErrUnauthenticated
		}
		return nil
	default:
		if user == nil {
			return domain.ErrUnauthenticated
		}
		if !user.IsAdmin() {
			return domain.ErrForbidden
		}
		return nil
	}
}
