package persistence

import (
	"context"
	"database/sql"
	"time"

	"granitereply/domain/model"
)

// ConnectionRepository stores OAuth credential sets per organization and
// platform.
type ConnectionRepository struct {
	db *sql.DB
}

func NewConnectionRepository(db *sql.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

const connectionColumns = `id, organization_id, platform, access_token, refresh_token, token_expires_at, is_active, created_at, updated_at`

func scanConnection(row interface{ Scan(...any) error }) (*model.PlatformConnection, error) {
	rec := &model.PlatformConnection{}
	var refresh sql.NullString
	var expires sql.NullTime
	if err := row.Scan(&rec.ID, &rec.OrganizationID, &rec.Platform, &rec.AccessToken, &refresh, &expires, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	if refresh.Valid {
		rec.RefreshToken = &refresh.String
	}
	if expires.Valid {
		rec.TokenExpiresAt = &expires.Time
	}
	return rec, nil
}

// ListActive returns every active connection for a platform, oldest first.
func (r *ConnectionRepository) ListActive(ctx context.Context, platform string) ([]*model.PlatformConnection, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+connectionColumns+` FROM platform_connections WHERE platform=$1 AND is_active=TRUE ORDER BY created_at ASC`, platform)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*model.PlatformConnection
	for rows.Next() {
		rec, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func (r *ConnectionRepository) GetActive(ctx context.Context, platform string) (*model.PlatformConnection, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+connectionColumns+` FROM platform_connections WHERE platform=$1 AND is_active=TRUE ORDER BY created_at ASC LIMIT 1`, platform)
	return scanConnection(row)
}

// Upsert stores a connection keyed on (organization_id, platform); a repeat
// OAuth consent replaces the stored tokens.
func (r *ConnectionRepository) Upsert(ctx context.Context, conn *model.PlatformConnection) error {
	now := time.Now().UTC()
	q := `INSERT INTO platform_connections (organization_id, platform, access_token, refresh_token, token_expires_at, is_active, created_at, updated_at)
	      VALUES ($1,$2,$3,$4,$5,TRUE,$6,$6)
	      ON CONFLICT (organization_id, platform) DO UPDATE SET
	        access_token = EXCLUDED.access_token,
	        refresh_token = COALESCE(EXCLUDED.refresh_token, platform_connections.refresh_token),
	        token_expires_at = EXCLUDED.token_expires_at,
	        is_active = TRUE,
	        updated_at = EXCLUDED.updated_at
	      RETURNING id, created_at`
	row := r.db.QueryRowContext(ctx, q, conn.OrganizationID, conn.Platform, conn.AccessToken, conn.RefreshToken, conn.TokenExpiresAt, now)
	if err := row.Scan(&conn.ID, &conn.CreatedAt); err != nil {
		return err
	}
	conn.IsActive = true
	conn.UpdatedAt = now
	return nil
}

// UpdateTokens replaces the access token and expiry after a refresh.
func (r *ConnectionRepository) UpdateTokens(ctx context.Context, id int64, tokens *model.PlatformConnection) error {
	_, err := r.db.ExecContext(ctx, `UPDATE platform_connections SET access_token=$1, token_expires_at=$2, updated_at=$3 WHERE id=$4`,
		tokens.AccessToken, tokens.TokenExpiresAt, time.Now().UTC(), id)
	return err
}
