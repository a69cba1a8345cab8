package persistence

import (
	"context"
	"database/sql"
	"time"

	"granitereply/domain/model"
)

// LocationRepository stores business locations discovered during sync.
type LocationRepository struct {
	db *sql.DB
}

func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// UpsertByPlaceID inserts the location or refreshes its name and address when
// the platform place identifier is already known.
func (r *LocationRepository) UpsertByPlaceID(ctx context.Context, loc *model.Location) (*model.Location, error) {
	now := time.Now().UTC()
	q := `INSERT INTO locations (organization_id, name, address, city, state, zip_code, google_place_id, created_at, updated_at)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
	      ON CONFLICT (google_place_id) WHERE google_place_id <> '' DO UPDATE SET
	        name = EXCLUDED.name,
	        address = EXCLUDED.address,
	        city = EXCLUDED.city,
	        state = EXCLUDED.state,
	        zip_code = EXCLUDED.zip_code,
	        updated_at = EXCLUDED.updated_at
	      RETURNING id, created_at`
	row := r.db.QueryRowContext(ctx, q, loc.OrganizationID, loc.Name, loc.Address, loc.City, loc.State, loc.ZipCode, loc.GooglePlaceID, now)
	if err := row.Scan(&loc.ID, &loc.CreatedAt); err != nil {
		return nil, err
	}
	loc.UpdatedAt = now
	return loc, nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*model.Location, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, organization_id, name, address, city, state, zip_code, google_place_id, created_at, updated_at FROM locations WHERE id=$1`, id)
	rec := &model.Location{}
	if err := row.Scan(&rec.ID, &rec.OrganizationID, &rec.Name, &rec.Address, &rec.City, &rec.State, &rec.ZipCode, &rec.GooglePlaceID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	return rec, nil
}
