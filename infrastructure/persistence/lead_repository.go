package persistence

import (
	"context"
	"database/sql"
	"time"

	"granitereply/domain/model"
)

// LeadRepository stores marketing-site signups.
type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, `INSERT INTO leads (full_name, email, business_name, plan, created_at) VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		lead.FullName, lead.Email, lead.BusinessName, lead.Plan, now)
	if err := row.Scan(&lead.ID); err != nil {
		return nil, err
	}
	lead.CreatedAt = now
	return lead, nil
}
