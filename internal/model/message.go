package model

import (
	"time"

	"github.com/penomovu/Unveil/internal/knowledge"
)

// QueryResult outcome of processing one question.
// Transient: built per request and discarded after the response.
type QueryResult struct {
	Text     string
	Category knowledge.Category
	Elapsed  time.Duration
}

// AskRequest question submission
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse answer payload.
// ResponseTime is milliseconds, for observability only.
type AskResponse struct {
	Response     string  `json:"response"`
	Category     string  `json:"category"`
	ResponseTime float64 `json:"responseTime"`
}

// ChatMessage websocket chat message
type ChatMessage struct {
	MessageID  string    `json:"messageId"`
	Type       string    `json:"type"` // CHAT, HEARTBEAT, AI_RESPONSE
	Content    string    `json:"content"`
	Category   string    `json:"category,omitempty"`
	Sender     int64     `json:"sender"`
	SenderName string    `json:"senderName,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ChatAck immediate acknowledgement for a received chat message
type ChatAck struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message"`
}

// WriteupUpload writeup ingestion request.
// Patterns and Techniques, when present, are folded into the
// category's knowledge table.
type WriteupUpload struct {
	Title      string   `json:"title" binding:"required"`
	Category   string   `json:"category"`
	Content    string   `json:"content"`
	Patterns   []string `json:"patterns"`
	Techniques []string `json:"techniques"`
}
