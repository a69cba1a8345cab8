package persistence

import (
	"context"
	"database/sql"
	"time"

	"granitereply/domain/model"
)

// ResponseRepository records reply attempts, generated or manual.
type ResponseRepository struct {
	db *sql.DB
}

func NewResponseRepository(db *sql.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

func (r *ResponseRepository) Insert(ctx context.Context, resp *model.Response) (*model.Response, error) {
	now := time.Now().UTC()
	q := `INSERT INTO responses (review_id, response_text, is_ai_generated, ai_model_used, tokens_used, status, posted_at, error_message, created_at)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	      RETURNING id`
	row := r.db.QueryRowContext(ctx, q, resp.ReviewID, resp.ResponseText, resp.IsAIGenerated, resp.AIModelUsed, resp.TokensUsed, resp.Status, resp.PostedAt, resp.ErrorMessage, now)
	if err := row.Scan(&resp.ID); err != nil {
		return nil, err
	}
	resp.CreatedAt = now
	return resp, nil
}
