package persistence_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"granitereply/infrastructure/persistence"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var brandVoiceColumns = []string{"id", "organization_id", "tone", "response_length", "personality_description", "custom_instructions", "include_owner_signature", "owner_name", "owner_title", "always_apologize_negative", "offer_resolution_negative", "include_call_to_action", "call_to_action_text", "is_default", "created_at", "updated_at"}

func TestBrandVoiceRepository_GetByOrganization(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(brandVoiceColumns).
		AddRow(int64(3), "org-1", "friendly", "medium", "Family-run trattoria", nil, true, "Maria", "Owner", true, true, true, "See you soon!", false, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM brand_voice_settings WHERE organization_id=$1")).
		WithArgs("org-1").
		WillReturnRows(rows)

	repo := persistence.NewBrandVoiceRepository(db)
	voice, err := repo.GetByOrganization(context.Background(), "org-1")

	require.NoError(t, err)
	require.Equal(t, "friendly", voice.Tone)
	require.NotNil(t, voice.PersonalityDescription)
	require.Nil(t, voice.CustomInstructions)
	require.NotNil(t, voice.OwnerName)
	require.Equal(t, "Maria", *voice.OwnerName)
	require.Equal(t, "See you soon!", *voice.CallToActionText)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandVoiceRepository_GetByOrganization_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM brand_voice_settings WHERE organization_id=$1")).
		WithArgs("org-missing").
		WillReturnError(sql.ErrNoRows)

	repo := persistence.NewBrandVoiceRepository(db)
	voice, err := repo.GetByOrganization(context.Background(), "org-missing")

	require.ErrorIs(t, err, sql.ErrNoRows)
	require.Nil(t, voice)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandVoiceRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(brandVoiceColumns).
		AddRow(int64(3), "org-1", "formal", "short", nil, nil, false, nil, nil, false, false, false, nil, true, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM brand_voice_settings WHERE id=$1")).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	repo := persistence.NewBrandVoiceRepository(db)
	voice, err := repo.GetByID(context.Background(), 3)

	require.NoError(t, err)
	require.Equal(t, "formal", voice.Tone)
	require.Nil(t, voice.OwnerName)
	require.True(t, voice.IsDefault)
	require.NoError(t, mock.ExpectationsWereMet())
}
