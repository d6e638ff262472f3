package models

// Workflow states of an abuse report. Transitions only move forward:
// Pending -> Processing -> Resolved.
const (
	ReportStatusPending    = "Pending"
	ReportStatusProcessing = "Processing"
	ReportStatusResolved   = "Resolved"
)

type Reporter struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type ReportedPost struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// Report is a user complaint about a listing. The reporter and the post are
// populated references resolved by the backend.
type Report struct {
	ID          string       `json:"_id"`
	Reporter    Reporter     `json:"id_user"`
	Post        ReportedPost `json:"id_post"`
	Reason      string       `json:"report_reason"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
}

func (r Report) EntityID() string { return r.ID }
