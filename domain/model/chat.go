package model

import "time"

// ChatMessage is a single turn in a widget conversation. Role is either
// "user" or "assistant".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatTranscript is the stored record of one request/response exchange.
type ChatTranscript struct {
	SessionID string        `bson:"session_id" json:"session_id"`
	Messages  []ChatMessage `bson:"messages" json:"messages"`
	Reply     string        `bson:"reply" json:"reply"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
