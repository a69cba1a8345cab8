package dto

import "time"

// SyncResultEntry reports the outcome for one connection or one location
// within a sync run. Exactly one of (Account+Location) or Error is populated.
type SyncResultEntry struct {
	ConnectionID int64  `json:"connectionId,omitempty"`
	Account      string `json:"account,omitempty"`
	Location     string `json:"location,omitempty"`
	Synced       int    `json:"synced"`
	Errors       int    `json:"errors"`
	Error        string `json:"error,omitempty"`
}

// SyncResponse is the body returned by POST /api/reviews/sync.
type SyncResponse struct {
	Success   bool              `json:"success"`
	Results   []SyncResultEntry `json:"results"`
	Timestamp time.Time         `json:"timestamp"`
}

// RespondRequest is the body of POST /api/reviews/respond.
type RespondRequest struct {
	ReviewID     int64  `json:"reviewId"`
	Response     string `json:"response,omitempty"`
	AutoGenerate bool   `json:"autoGenerate,omitempty"`
	BrandVoiceID int64  `json:"brandVoiceId,omitempty"`
}

// RespondResult is the outcome of a respond call.
type RespondResult struct {
	Success  bool        `json:"success"`
	Response interface{} `json:"response,omitempty"`
	Posted   bool        `json:"posted"`
	Message  string      `json:"message,omitempty"`
	Error    string      `json:"error,omitempty"`
}
