package entities

import "time"

// ChatSession is one visitor conversation with a business's widget.
// The token is client-generated and opaque; at most one session per
// (token, business) pair may be open at a time.
type ChatSession struct {
	ID         int        `json:"id"`
	Token      string     `json:"session_id"`
	BusinessID int        `json:"business_id"`
	VisitorIP  string     `json:"visitor_ip"`
	UserAgent  string     `json:"user_agent"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at"`
}

// Open reports whether the session has not been ended.
func (s *ChatSession) Open() bool {
	return s.EndedAt == nil
}

// Message is one line of a session's append-only transcript.
type Message struct {
	ID        int       `json:"id"`
	SessionID int       `json:"session_id"`
	Text      string    `json:"message"`
	IsBot     bool      `json:"is_bot"`
	CreatedAt time.Time `json:"created_at"`
}
