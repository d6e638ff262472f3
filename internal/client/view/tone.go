package view

import "github.com/dmitrijs2005/rentadmin/internal/client/models"

// Tone is the color family a status chip renders with. One shared lookup
// table serves every screen instead of per-screen switch statements.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneError   Tone = "error"
	ToneDefault Tone = "default"
)

// Resource names used as lookup keys.
const (
	ResourceUsers         = "users"
	ResourcePosts         = "posts"
	ResourceReports       = "reports"
	ResourceNotifications = "notifications"
	ResourceBlogs         = "blogs"
)

var statusTones = map[string]map[string]Tone{
	ResourcePosts: {
		models.PostStatusActive:  ToneSuccess,
		models.PostStatusPending: ToneWarning,
		models.PostStatusDeleted: ToneError,
	},
	ResourceReports: {
		models.ReportStatusResolved:   ToneSuccess,
		models.ReportStatusProcessing: ToneWarning,
		models.ReportStatusPending:    ToneError,
	},
	ResourceUsers: {
		models.UserStatusActive:  ToneSuccess,
		models.UserStatusBlocked: ToneError,
	},
}

// StatusTone returns the tone for a (resource, status) pair, ToneDefault
// for anything unknown.
func StatusTone(resource, status string) Tone {
	if t, ok := statusTones[resource][status]; ok {
		return t
	}
	return ToneDefault
}
