package dto

// GenerateRequest is the body of POST /api/ai/generate.
type GenerateRequest struct {
	ReviewID       int64  `json:"reviewId"`
	ReviewText     string `json:"reviewText"`
	Rating         int    `json:"rating"`
	ReviewerName   string `json:"reviewerName,omitempty"`
	Platform       string `json:"platform"`
	BusinessName   string `json:"businessName"`
	OrganizationID string `json:"organizationId"`
	BrandVoiceID   int64  `json:"brandVoiceId,omitempty"`
}

// GenerateResult is the payload returned for a successful generation.
type GenerateResult struct {
	Response   string `json:"response"`
	TokensUsed int    `json:"tokensUsed"`
}

// SentimentRequest is the body of POST /api/ai/sentiment.
type SentimentRequest struct {
	ReviewText string `json:"reviewText"`
}

// SentimentAnalysis is the structured output of a sentiment call.
// Score is in [-1, 1]; Label is positive, neutral or negative.
type SentimentAnalysis struct {
	Score     float64  `json:"score"`
	Label     string   `json:"label"`
	KeyTopics []string `json:"keyTopics"`
}

// ImproveRequest is the body of POST /api/ai/improve.
type ImproveRequest struct {
	OriginalResponse string `json:"originalResponse"`
	Feedback         string `json:"feedback"`
	OrganizationID   string `json:"organizationId"`
}
