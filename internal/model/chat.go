package model

import "time"

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a consultation conversation
type ChatMessage struct {
	Role    string `json:"role" bson:"role"`
	Content string `json:"content" bson:"content"`
}

// ChatReply is the assistant's answer to a consultation message
type ChatReply struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatTranscript is the stored history of one websocket consultation
type ChatTranscript struct {
	SessionID string        `json:"sessionId" bson:"_id"`
	Messages  []ChatMessage `json:"messages" bson:"messages"`
	StartedAt time.Time     `json:"startedAt" bson:"startedAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}
