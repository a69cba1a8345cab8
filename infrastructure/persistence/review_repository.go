package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"granitereply/domain/model"
)

// ReviewRepository persists synced reviews in PostgreSQL.
type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Upsert inserts the review or refreshes its mutable fields when the pair
// (platform, platform_review_id) already exists. Re-running a sync over the
// same reviews leaves exactly one row per review.
func (r *ReviewRepository) Upsert(ctx context.Context, review *model.Review) error {
	meta, err := json.Marshal(review.Metadata)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	q := `INSERT INTO reviews (location_id, platform, platform_review_id, reviewer_name, reviewer_avatar_url, rating, review_text, review_date, has_response, status, metadata, created_at, updated_at)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$12)
	      ON CONFLICT (platform, platform_review_id) DO UPDATE SET
	        reviewer_name = EXCLUDED.reviewer_name,
	        reviewer_avatar_url = EXCLUDED.reviewer_avatar_url,
	        rating = EXCLUDED.rating,
	        review_text = EXCLUDED.review_text,
	        review_date = EXCLUDED.review_date,
	        has_response = EXCLUDED.has_response,
	        metadata = EXCLUDED.metadata,
	        updated_at = EXCLUDED.updated_at
	      RETURNING id, created_at`
	row := r.db.QueryRowContext(ctx, q,
		review.LocationID, review.Platform, review.PlatformReviewID,
		review.ReviewerName, review.ReviewerAvatar, review.Rating,
		review.ReviewText, review.ReviewDate, review.HasResponse,
		review.Status, meta, now)
	if err := row.Scan(&review.ID, &review.CreatedAt); err != nil {
		return err
	}
	review.UpdatedAt = now
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, location_id, platform, platform_review_id, reviewer_name, reviewer_avatar_url, rating, review_text, review_date, has_response, status, metadata, created_at, updated_at FROM reviews WHERE id=$1`, id)
	rec := &model.Review{}
	var avatar sql.NullString
	var meta []byte
	if err := row.Scan(&rec.ID, &rec.LocationID, &rec.Platform, &rec.PlatformReviewID, &rec.ReviewerName, &avatar, &rec.Rating, &rec.ReviewText, &rec.ReviewDate, &rec.HasResponse, &rec.Status, &meta, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	if avatar.Valid {
		rec.ReviewerAvatar = &avatar.String
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &rec.Metadata); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func (r *ReviewRepository) MarkResponded(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE reviews SET has_response=TRUE, status='posted', updated_at=$1 WHERE id=$2`, time.Now().UTC(), id)
	return err
}

func (r *ReviewRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE reviews SET status=$1, updated_at=$2 WHERE id=$3`, status, time.Now().UTC(), id)
	return err
}
