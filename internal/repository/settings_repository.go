package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WidgetSetting is one appearance/behavior knob for a business's widget
// (widget_title, widget_color, welcome_message, position).
type WidgetSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns a setting value, empty when unset. Unset is not an error;
// the widget falls back to its built-in defaults.
func (r *SettingsRepository) Get(businessID int, key string) (string, error) {
	var value string
	err := r.db.QueryRow(context.Background(),
		"SELECT value FROM widget_settings WHERE business_id=$1 AND key=$2",
		businessID, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (r *SettingsRepository) Set(businessID int, key, value string) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO widget_settings (business_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (business_id, key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()
	`, businessID, key, value)
	return err
}

func (r *SettingsRepository) All(businessID int) ([]WidgetSetting, error) {
	rows, err := r.db.Query(context.Background(),
		"SELECT key, value, updated_at FROM widget_settings WHERE business_id=$1 ORDER BY key",
		businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := []WidgetSetting{}
	for rows.Next() {
		var s WidgetSetting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, nil
}
