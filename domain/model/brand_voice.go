package model

import "time"

// Tone values accepted by brand voice settings.
const (
	ToneProfessional = "professional"
	ToneFriendly     = "friendly"
	ToneCasual       = "casual"
	ToneFormal       = "formal"
)

// Response length values accepted by brand voice settings.
const (
	LengthShort    = "short"
	LengthMedium   = "medium"
	LengthDetailed = "detailed"
)

// BrandVoiceSettings controls tone, length and boilerplate of generated
// responses for one organization.
type BrandVoiceSettings struct {
	ID                      int64     `json:"id"`
	OrganizationID          string    `json:"organization_id"`
	Tone                    string    `json:"tone"`
	ResponseLength          string    `json:"response_length"`
	PersonalityDescription  *string   `json:"personality_description,omitempty"`
	CustomInstructions      *string   `json:"custom_instructions,omitempty"`
	IncludeOwnerSignature   bool      `json:"include_owner_signature"`
	OwnerName               *string   `json:"owner_name,omitempty"`
	OwnerTitle              *string   `json:"owner_title,omitempty"`
	AlwaysApologizeNegative bool      `json:"always_apologize_negative"`
	OfferResolutionNegative bool      `json:"offer_resolution_negative"`
	IncludeCallToAction     bool      `json:"include_call_to_action"`
	CallToActionText        *string   `json:"call_to_action_text,omitempty"`
	IsDefault               bool      `json:"is_default"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// DefaultBrandVoice returns the hard-coded settings used when an organization
// has no stored record.
func DefaultBrandVoice(organizationID string) *BrandVoiceSettings {
	cta := "We hope to see you again soon!"
	return &BrandVoiceSettings{
		OrganizationID:          organizationID,
		Tone:                    ToneProfessional,
		ResponseLength:          LengthMedium,
		AlwaysApologizeNegative: true,
		OfferResolutionNegative: true,
		IncludeCallToAction:     true,
		CallToActionText:        &cta,
	}
}
