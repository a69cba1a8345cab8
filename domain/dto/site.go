package dto

import "granitereply/domain/model"

// ChatRequest is the body of POST /api/chat (marketing-site widget).
type ChatRequest struct {
	SessionID string              `json:"sessionId,omitempty"`
	Messages  []model.ChatMessage `json:"messages"`
}

// ChatResponse carries the assistant reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// DemoRequest is the body of POST /api/demo/generate.
type DemoRequest struct {
	BusinessDescription string `json:"businessDescription"`
	Review              string `json:"review"`
	ReviewerName        string `json:"reviewerName,omitempty"`
	Rating              int    `json:"rating,omitempty"`
}

// DemoResponse carries the demo reply text.
type DemoResponse struct {
	Response string `json:"response"`
}

// LeadRequest is the body of POST /api/leads/submit.
type LeadRequest struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
	Plan         string `json:"plan"`
}
