package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("chat session not found")

type Repository interface {
	CreateSession(ctx context.Context, session *Session) error
	FindSession(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Session, error)
	FindSessions(ctx context.Context, userID uuid.UUID, limit int) ([]Session, error)
	TouchSession(ctx context.Context, id uuid.UUID, userID uuid.UUID, at time.Time, added int) error
	DeleteSession(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	CreateMessage(ctx context.Context, message *Message) error
	FindMessages(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID) ([]Message, error)
	FindRecentMessages(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID, limit int) ([]Message, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSession(ctx context.Context, session *Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *repository) FindSession(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Session, error) {
	var session Session
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *repository) FindSessions(ctx context.Context, userID uuid.UUID, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 50
	}
	var sessions []Session
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_message_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// TouchSession bumps the activity timestamp and message count.
func (r *repository) TouchSession(ctx context.Context, id uuid.UUID, userID uuid.UUID, at time.Time, added int) error {
	result := r.db.WithContext(ctx).
		Model(&Session{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"last_message_at": at,
			"message_count":   gorm.Expr("message_count + ?", added),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSession removes the session and all of its messages.
func (r *repository) DeleteSession(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ? AND user_id = ?", id, userID).Delete(&Message{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&Session{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSessionNotFound
		}
		return nil
	})
}

func (r *repository) CreateMessage(ctx context.Context, message *Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// FindMessages returns the full conversation, oldest first.
func (r *repository) FindMessages(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID) ([]Message, error) {
	var messages []Message
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// FindRecentMessages returns the newest messages first; callers reverse
// them when building completion context.
func (r *repository) FindRecentMessages(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID, limit int) ([]Message, error) {
	var messages []Message
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
