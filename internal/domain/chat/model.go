package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message roles understood by the completion API.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Session groups a user's messages into one conversation.
type Session struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_sessions_user" json:"userId"`
	Title         string    `gorm:"not null;default:'New Conversation'" json:"title"`
	Summary       string    `json:"summary,omitempty"`
	MessageCount  int       `gorm:"not null;default:0" json:"messageCount"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	StartedAt     time.Time `json:"startedAt"`
	LastMessageAt time.Time `gorm:"index:idx_chat_sessions_user" json:"lastMessageAt"`
}

func (Session) TableName() string {
	return "chat_sessions"
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now()
	if s.StartedAt.IsZero() {
		s.StartedAt = now
	}
	if s.LastMessageAt.IsZero() {
		s.LastMessageAt = now
	}
	return nil
}

// Message is a single turn in a conversation. Tokens and Model are only
// set on assistant messages.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_messages_session" json:"sessionId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	Role      string    `gorm:"not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Tokens    int       `json:"tokens,omitempty"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `gorm:"index:idx_chat_messages_session" json:"createdAt"`
}

func (Message) TableName() string {
	return "chat_messages"
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
