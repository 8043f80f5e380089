package domain

import "context"

// SiteStats holds the totals shown on the admin dashboard.
type SiteStats struct {
	Users    int
	Posts    int
	Comments int
	Feedback int
}

// StatsRepository computes aggregate counts over the store.
type StatsRepository interface {
	Totals(ctx context.Context) (*SiteStats, error)
}
