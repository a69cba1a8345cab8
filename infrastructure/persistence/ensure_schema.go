package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnsureSchema creates the tables the service needs if they are missing.
// Safe to call at startup; every statement is idempotent.
func EnsureSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			user_name TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			organization_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS locations (
			id BIGSERIAL PRIMARY KEY,
			organization_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			zip_code TEXT NOT NULL DEFAULT '',
			google_place_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS locations_google_place_id_key
			ON locations (google_place_id) WHERE google_place_id <> ''`,
		`CREATE TABLE IF NOT EXISTS platform_connections (
			id BIGSERIAL PRIMARY KEY,
			organization_id TEXT NOT NULL DEFAULT '',
			platform TEXT NOT NULL,
			access_token TEXT NOT NULL,
			refresh_token TEXT,
			token_expires_at TIMESTAMPTZ,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (organization_id, platform)
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id BIGSERIAL PRIMARY KEY,
			location_id BIGINT NOT NULL REFERENCES locations(id),
			platform TEXT NOT NULL,
			platform_review_id TEXT NOT NULL,
			reviewer_name TEXT NOT NULL DEFAULT '',
			reviewer_avatar_url TEXT,
			rating INT NOT NULL DEFAULT 0,
			review_text TEXT NOT NULL DEFAULT '',
			review_date TIMESTAMPTZ NOT NULL,
			has_response BOOLEAN NOT NULL DEFAULT FALSE,
			status TEXT NOT NULL DEFAULT 'pending',
			metadata JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (platform, platform_review_id)
		)`,
		`CREATE TABLE IF NOT EXISTS responses (
			id BIGSERIAL PRIMARY KEY,
			review_id BIGINT NOT NULL REFERENCES reviews(id),
			response_text TEXT NOT NULL,
			is_ai_generated BOOLEAN NOT NULL DEFAULT FALSE,
			ai_model_used TEXT,
			tokens_used INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			posted_at TIMESTAMPTZ,
			error_message TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS brand_voice_settings (
			id BIGSERIAL PRIMARY KEY,
			organization_id TEXT NOT NULL UNIQUE,
			tone TEXT NOT NULL DEFAULT 'professional',
			response_length TEXT NOT NULL DEFAULT 'medium',
			personality_description TEXT,
			custom_instructions TEXT,
			include_owner_signature BOOLEAN NOT NULL DEFAULT FALSE,
			owner_name TEXT,
			owner_title TEXT,
			always_apologize_negative BOOLEAN NOT NULL DEFAULT TRUE,
			offer_resolution_negative BOOLEAN NOT NULL DEFAULT TRUE,
			include_call_to_action BOOLEAN NOT NULL DEFAULT FALSE,
			call_to_action_text TEXT,
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS leads (
			id BIGSERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			business_name TEXT NOT NULL DEFAULT '',
			plan TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring schema failed: %w", err)
		}
	}

	// Columns added after the initial release; conditional ALTER keeps older
	// databases working without a migration tool.
	checks := []struct {
		table  string
		column string
		ddl    string
	}{
		{"reviews", "metadata", "ALTER TABLE reviews ADD COLUMN metadata JSONB NOT NULL DEFAULT '{}'"},
		{"responses", "tokens_used", "ALTER TABLE responses ADD COLUMN tokens_used INT NOT NULL DEFAULT 0"},
	}
	for _, c := range checks {
		exists, err := columnExists(ctx, db, c.table, c.column)
		if err != nil {
			return err
		}
		if !exists {
			if _, err := db.ExecContext(ctx, c.ddl); err != nil {
				return fmt.Errorf("adding column %s.%s failed: %w", c.table, c.column, err)
			}
		}
	}
	return nil
}

func columnExists(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	row := db.QueryRowContext(ctx, `SELECT 1 FROM information_schema.columns WHERE table_name=$1 AND column_name=$2`, table, column)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
