package entities

import "time"

// CustomResponse is a tenant-authored override rule. Pattern holds a
// comma-separated keyword list; Response is returned verbatim when any
// keyword appears in the visitor's message. Intent is a free-text label
// chosen by the business admin, not restricted to the fixed intent set.
type CustomResponse struct {
	ID         int       `json:"id"`
	BusinessID int       `json:"business_id"`
	Intent     string    `json:"intent"`
	Pattern    string    `json:"pattern"`
	Response   string    `json:"response"`
	CreatedAt  time.Time `json:"created_at"`
}
