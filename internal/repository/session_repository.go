package repository

import (
	"context"

	"chatwidget/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository persists chat sessions and their append-only message
// logs. Implements interfaces.SessionStore.
type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// GetOrCreate returns the open session for (token, business), creating
// one when none exists. Concurrent first messages for the same token are
// serialized by the partial unique index on (session_id, business_id)
// WHERE ended_at IS NULL: the losing insert hits the conflict, returns no
// row, and the follow-up select picks up the winner's session.
func (r *SessionRepository) GetOrCreate(token string, businessID int, visitorIP, userAgent string) (*entities.ChatSession, error) {
	ctx := context.Background()

	if s, err := r.findOpen(ctx, token, businessID); err != nil || s != nil {
		return s, err
	}

	var s entities.ChatSession
	err := r.db.QueryRow(ctx, `
		INSERT INTO chat_sessions (session_id, business_id, visitor_ip, user_agent)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, business_id) WHERE ended_at IS NULL DO NOTHING
		RETURNING id, started_at
	`, token, businessID, visitorIP, userAgent).Scan(&s.ID, &s.StartedAt)

	if err == pgx.ErrNoRows {
		// Lost the race; the other request's session is now open.
		return r.mustFindOpen(ctx, token, businessID)
	}
	if err != nil {
		return nil, err
	}

	s.Token = token
	s.BusinessID = businessID
	s.VisitorIP = visitorIP
	s.UserAgent = userAgent
	return &s, nil
}

func (r *SessionRepository) findOpen(ctx context.Context, token string, businessID int) (*entities.ChatSession, error) {
	var s entities.ChatSession
	err := r.db.QueryRow(ctx, `
		SELECT id, session_id, business_id, visitor_ip, user_agent, started_at, ended_at
		FROM chat_sessions
		WHERE session_id = $1 AND business_id = $2 AND ended_at IS NULL
	`, token, businessID).Scan(&s.ID, &s.Token, &s.BusinessID, &s.VisitorIP, &s.UserAgent, &s.StartedAt, &s.EndedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) mustFindOpen(ctx context.Context, token string, businessID int) (*entities.ChatSession, error) {
	s, err := r.findOpen(ctx, token, businessID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, entities.ErrNoOpenSession
	}
	return s, nil
}

// Append adds one message to a session's log. Permitted on closed
// sessions as well; the log is append-only and never edited.
func (r *SessionRepository) Append(sessionID int, text string, isBot bool) (*entities.Message, error) {
	m := &entities.Message{SessionID: sessionID, Text: text, IsBot: isBot}
	err := r.db.QueryRow(context.Background(), `
		INSERT INTO messages (session_id, message, is_bot)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, sessionID, text, isBot).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Close ends the open session for (token, business). Returns
// entities.ErrNoOpenSession when there is nothing to close.
func (r *SessionRepository) Close(token string, businessID int) error {
	tag, err := r.db.Exec(context.Background(), `
		UPDATE chat_sessions SET ended_at = CURRENT_TIMESTAMP
		WHERE session_id = $1 AND business_id = $2 AND ended_at IS NULL
	`, token, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrNoOpenSession
	}
	return nil
}

// History returns a session's transcript ordered by creation time, with
// insertion order as the tie-break for equal timestamps.
func (r *SessionRepository) History(sessionID int) ([]entities.Message, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, session_id, message, is_bot, created_at
		FROM messages WHERE session_id = $1
		ORDER BY created_at ASC, id ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []entities.Message{}
	for rows.Next() {
		var m entities.Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Text, &m.IsBot, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// ListByBusiness returns a business's sessions, newest first, for the
// dashboard conversation browser.
func (r *SessionRepository) ListByBusiness(businessID, limit int) ([]entities.ChatSession, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, session_id, business_id, visitor_ip, user_agent, started_at, ended_at
		FROM chat_sessions WHERE business_id = $1
		ORDER BY started_at DESC, id DESC
		LIMIT $2
	`, businessID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []entities.ChatSession{}
	for rows.Next() {
		var s entities.ChatSession
		if err := rows.Scan(&s.ID, &s.Token, &s.BusinessID, &s.VisitorIP, &s.UserAgent, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetForBusiness fetches one session, scoped to the owning business so a
// dashboard user cannot read another tenant's transcript.
func (r *SessionRepository) GetForBusiness(sessionID, businessID int) (*entities.ChatSession, error) {
	var s entities.ChatSession
	err := r.db.QueryRow(context.Background(), `
		SELECT id, session_id, business_id, visitor_ip, user_agent, started_at, ended_at
		FROM chat_sessions WHERE id = $1 AND business_id = $2
	`, sessionID, businessID).Scan(&s.ID, &s.Token, &s.BusinessID, &s.VisitorIP, &s.UserAgent, &s.StartedAt, &s.EndedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
