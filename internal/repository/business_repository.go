package repository

import (
	"context"

	"chatwidget/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BusinessRepository struct {
	db *pgxpool.Pool
}

func NewBusinessRepository(db *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// ResolveAPIKey returns the business owning the key, or nil when the key
// does not resolve. Implements interfaces.BusinessDirectory.
func (r *BusinessRepository) ResolveAPIKey(apiKey string) (*entities.Business, error) {
	var b entities.Business
	err := r.db.QueryRow(context.Background(),
		"SELECT id, name, category, api_key, notify_chat_id, admin_id, created_at FROM businesses WHERE api_key = $1",
		apiKey).Scan(&b.ID, &b.Name, &b.Category, &b.APIKey, &b.NotifyChatID, &b.AdminID, &b.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepository) GetByID(id int) (*entities.Business, error) {
	var b entities.Business
	err := r.db.QueryRow(context.Background(),
		"SELECT id, name, category, api_key, notify_chat_id, admin_id, created_at FROM businesses WHERE id = $1",
		id).Scan(&b.ID, &b.Name, &b.Category, &b.APIKey, &b.NotifyChatID, &b.AdminID, &b.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a business with a freshly generated API key.
func (r *BusinessRepository) Create(b *entities.Business) error {
	b.APIKey = uuid.NewString()
	return r.db.QueryRow(context.Background(), `
		INSERT INTO businesses (name, category, api_key, notify_chat_id, admin_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, b.Name, b.Category, b.APIKey, b.NotifyChatID, b.AdminID).Scan(&b.ID, &b.CreatedAt)
}

// Update changes the business profile fields editable from the dashboard.
func (r *BusinessRepository) Update(id int, name string, category entities.BusinessCategory, notifyChatID int64) error {
	_, err := r.db.Exec(context.Background(),
		"UPDATE businesses SET name=$1, category=$2, notify_chat_id=$3, updated_at=NOW() WHERE id=$4",
		name, category, notifyChatID, id)
	return err
}

// RotateAPIKey replaces the business credential and returns the new key.
// Widgets embedded with the old key stop resolving immediately.
func (r *BusinessRepository) RotateAPIKey(id int) (string, error) {
	key := uuid.NewString()
	_, err := r.db.Exec(context.Background(),
		"UPDATE businesses SET api_key=$1, updated_at=NOW() WHERE id=$2", key, id)
	if err != nil {
		return "", err
	}
	return key, nil
}

func (r *BusinessRepository) GetAll() ([]entities.Business, error) {
	rows, err := r.db.Query(context.Background(),
		"SELECT id, name, category, api_key, notify_chat_id, admin_id, created_at FROM businesses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	businesses := []entities.Business{}
	for rows.Next() {
		var b entities.Business
		if err := rows.Scan(&b.ID, &b.Name, &b.Category, &b.APIKey, &b.NotifyChatID, &b.AdminID, &b.CreatedAt); err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	return businesses, nil
}

func (r *BusinessRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(context.Background(), "SELECT COUNT(*) FROM businesses").Scan(&count)
	return count, err
}
