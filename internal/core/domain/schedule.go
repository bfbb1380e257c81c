package domain

import "time"

// DemoSchedule describes the periodic demo data reset
type DemoSchedule struct {
	Enabled  bool       `json:"enabled"`
	CronExpr string     `json:"cron_expr,omitempty"` // e.g. "0 3 * * *" = every day at 03:00
	NextRun  *time.Time `json:"next_run,omitempty"`
	LastRun  *time.Time `json:"last_run,omitempty"`
	LastErr  string     `json:"last_error,omitempty"`
}
