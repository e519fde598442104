package repository

import (
	"context"

	"chatwidget/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.User) error {
	return r.db.QueryRow(context.Background(),
		"INSERT INTO users (username, password_hash, email, role, business_id) VALUES ($1, $2, $3, $4, NULLIF($5, 0)) RETURNING id",
		user.Username, user.PasswordHash, user.Email, user.Role, user.BusinessID).Scan(&user.ID)
}

func (r *UserRepository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	var businessID *int
	err := r.db.QueryRow(context.Background(),
		"SELECT id, username, password_hash, email, role, business_id FROM users WHERE username = $1",
		username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.Role, &businessID)

	if err == pgx.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	if businessID != nil {
		user.BusinessID = *businessID
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id int) (*entities.User, error) {
	var user entities.User
	var businessID *int
	err := r.db.QueryRow(context.Background(),
		"SELECT id, username, password_hash, email, role, business_id FROM users WHERE id = $1",
		id).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.Role, &businessID)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if businessID != nil {
		user.BusinessID = *businessID
	}
	return &user, nil
}

// AssignBusiness links a dashboard user to the business it administers.
func (r *UserRepository) AssignBusiness(userID, businessID int) error {
	_, err := r.db.Exec(context.Background(),
		"UPDATE users SET business_id = $1 WHERE id = $2", businessID, userID)
	return err
}
