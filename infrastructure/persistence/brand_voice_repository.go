package persistence

import (
	"context"
	"database/sql"

	"granitereply/domain/model"
)

// BrandVoiceRepository reads per-organization voice settings. A missing record
// surfaces as sql.ErrNoRows so callers can fall back to the default voice.
type BrandVoiceRepository struct {
	db *sql.DB
}

func NewBrandVoiceRepository(db *sql.DB) *BrandVoiceRepository {
	return &BrandVoiceRepository{db: db}
}

const brandVoiceColumns = `id, organization_id, tone, response_length, personality_description, custom_instructions, include_owner_signature, owner_name, owner_title, always_apologize_negative, offer_resolution_negative, include_call_to_action, call_to_action_text, is_default, created_at, updated_at`

func scanBrandVoice(row interface{ Scan(...any) error }) (*model.BrandVoiceSettings, error) {
	rec := &model.BrandVoiceSettings{}
	var personality, custom, ownerName, ownerTitle, cta sql.NullString
	if err := row.Scan(&rec.ID, &rec.OrganizationID, &rec.Tone, &rec.ResponseLength,
		&personality, &custom, &rec.IncludeOwnerSignature, &ownerName, &ownerTitle,
		&rec.AlwaysApologizeNegative, &rec.OfferResolutionNegative,
		&rec.IncludeCallToAction, &cta, &rec.IsDefault, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	if personality.Valid {
		rec.PersonalityDescription = &personality.String
	}
	if custom.Valid {
		rec.CustomInstructions = &custom.String
	}
	if ownerName.Valid {
		rec.OwnerName = &ownerName.String
	}
	if ownerTitle.Valid {
		rec.OwnerTitle = &ownerTitle.String
	}
	if cta.Valid {
		rec.CallToActionText = &cta.String
	}
	return rec, nil
}

func (r *BrandVoiceRepository) GetByOrganization(ctx context.Context, organizationID string) (*model.BrandVoiceSettings, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+brandVoiceColumns+` FROM brand_voice_settings WHERE organization_id=$1`, organizationID)
	return scanBrandVoice(row)
}

func (r *BrandVoiceRepository) GetByID(ctx context.Context, id int64) (*model.BrandVoiceSettings, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+brandVoiceColumns+` FROM brand_voice_settings WHERE id=$1`, id)
	return scanBrandVoice(row)
}
