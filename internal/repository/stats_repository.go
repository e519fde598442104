package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository aggregates conversation activity for the dashboard
// analytics views.
type StatsRepository struct {
	db *pgxpool.Pool
}

type DailyActivity struct {
	Date            time.Time `json:"date"`
	VisitorMessages int       `json:"visitor_messages"`
	BotMessages     int       `json:"bot_messages"`
	Sessions        int       `json:"sessions"`
}

type BusinessStats struct {
	TotalSessions   int `json:"total_sessions"`
	OpenSessions    int `json:"open_sessions"`
	TotalMessages   int `json:"total_messages"`
	VisitorMessages int `json:"visitor_messages"`
	CustomResponses int `json:"custom_responses"`
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetBusinessStats returns headline counters for one tenant.
func (r *StatsRepository) GetBusinessStats(businessID int) (*BusinessStats, error) {
	ctx := context.Background()
	stats := &BusinessStats{}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE ended_at IS NULL)
		FROM chat_sessions WHERE business_id = $1
	`, businessID).Scan(&stats.TotalSessions, &stats.OpenSessions)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE NOT is_bot)
		FROM messages m
		JOIN chat_sessions s ON s.id = m.session_id
		WHERE s.business_id = $1
	`, businessID).Scan(&stats.TotalMessages, &stats.VisitorMessages)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM responses WHERE business_id = $1", businessID).Scan(&stats.CustomResponses)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// GetDailyActivity returns per-day message and session counts for the
// last N days, oldest first, for the analytics chart.
func (r *StatsRepository) GetDailyActivity(businessID, days int) ([]DailyActivity, error) {
	startDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")
	rows, err := r.db.Query(context.Background(), `
		SELECT m.created_at::date AS day,
		       COUNT(*) FILTER (WHERE NOT m.is_bot),
		       COUNT(*) FILTER (WHERE m.is_bot),
		       COUNT(DISTINCT m.session_id)
		FROM messages m
		JOIN chat_sessions s ON s.id = m.session_id
		WHERE s.business_id = $1 AND m.created_at >= $2
		GROUP BY day
		ORDER BY day ASC
	`, businessID, startDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activity := []DailyActivity{}
	for rows.Next() {
		var a DailyActivity
		if err := rows.Scan(&a.Date, &a.VisitorMessages, &a.BotMessages, &a.Sessions); err != nil {
			return nil, err
		}
		activity = append(activity, a)
	}
	return activity, rows.Err()
}

// GetPlatformStats returns whole-platform counters for the super admin
// overview.
func (r *StatsRepository) GetPlatformStats() (map[string]int, error) {
	ctx := context.Background()
	stats := map[string]int{}

	queries := map[string]string{
		"businesses": "SELECT COUNT(*) FROM businesses",
		"users":      "SELECT COUNT(*) FROM users",
		"sessions":   "SELECT COUNT(*) FROM chat_sessions",
		"messages":   "SELECT COUNT(*) FROM messages",
	}
	for name, q := range queries {
		var count int
		if err := r.db.QueryRow(ctx, q).Scan(&count); err != nil {
			return nil, err
		}
		stats[name] = count
	}
	return stats, nil
}
