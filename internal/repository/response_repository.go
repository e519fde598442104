package repository

import (
	"context"

	"chatwidget/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResponseRepository stores the tenant-authored custom response rules.
type ResponseRepository struct {
	db *pgxpool.Pool
}

func NewResponseRepository(db *pgxpool.Pool) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// ListByBusiness returns the business's rules in precedence order:
// creation order, oldest first. The resolver relies on this ordering for
// first-match-wins semantics. Implements interfaces.RuleStore.
func (r *ResponseRepository) ListByBusiness(businessID int) ([]entities.CustomResponse, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, business_id, intent, pattern, response, created_at
		FROM responses WHERE business_id = $1
		ORDER BY created_at ASC, id ASC
	`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []entities.CustomResponse{}
	for rows.Next() {
		var resp entities.CustomResponse
		if err := rows.Scan(&resp.ID, &resp.BusinessID, &resp.Intent, &resp.Pattern, &resp.Response, &resp.CreatedAt); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}

func (r *ResponseRepository) GetByID(id int) (*entities.CustomResponse, error) {
	var resp entities.CustomResponse
	err := r.db.QueryRow(context.Background(),
		"SELECT id, business_id, intent, pattern, response, created_at FROM responses WHERE id = $1",
		id).Scan(&resp.ID, &resp.BusinessID, &resp.Intent, &resp.Pattern, &resp.Response, &resp.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *ResponseRepository) Create(resp *entities.CustomResponse) error {
	return r.db.QueryRow(context.Background(), `
		INSERT INTO responses (business_id, intent, pattern, response)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, resp.BusinessID, resp.Intent, resp.Pattern, resp.Response).Scan(&resp.ID, &resp.CreatedAt)
}

func (r *ResponseRepository) Update(resp *entities.CustomResponse) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE responses SET intent=$1, pattern=$2, response=$3, updated_at=NOW()
		WHERE id=$4 AND business_id=$5
	`, resp.Intent, resp.Pattern, resp.Response, resp.ID, resp.BusinessID)
	return err
}

func (r *ResponseRepository) Delete(id, businessID int) error {
	_, err := r.db.Exec(context.Background(),
		"DELETE FROM responses WHERE id=$1 AND business_id=$2", id, businessID)
	return err
}
