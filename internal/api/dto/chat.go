package dto

import (
	"time"

	"github.com/google/uuid"
)

// SendMessageRequest represents the request to send a chat message
type SendMessageRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
}

// ChatSessionResponse represents a chat session in API responses
type ChatSessionResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary,omitempty"`
	MessageCount  int       `json:"message_count"`
	IsActive      bool      `json:"is_active"`
	StartedAt     time.Time `json:"started_at"`
	LastMessageAt time.Time `json:"last_message_at"`
}

// ChatMessageResponse represents a chat message in API responses
type ChatMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Tokens    int       `json:"tokens,omitempty"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationResponse represents a session with its messages
type ConversationResponse struct {
	Session  ChatSessionResponse   `json:"session"`
	Messages []ChatMessageResponse `json:"messages"`
}

// SendMessageResponse represents the outcome of a chat exchange
type SendMessageResponse struct {
	UserMessage      ChatMessageResponse `json:"user_message"`
	AssistantMessage ChatMessageResponse `json:"assistant_message"`
	XPEarned         int                 `json:"xp_earned"`
}
