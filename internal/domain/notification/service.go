package notification

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Dispatcher delivers a notification over an out-of-band channel (push, email).
// Delivery is best effort; callers never fail a mutation on dispatch errors.
type Dispatcher interface {
	Send(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error
}

// LogDispatcher is the default dispatcher; it only records the delivery attempt.
type LogDispatcher struct {
	logger *logger.Logger
}

func NewLogDispatcher(logger *logger.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Send(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error {
	d.logger.Info("push delivery skipped (no transport configured)",
		zap.String("user_id", userID.String()),
		zap.String("title", title))
	return nil
}

type Service interface {
	CreateForUser(ctx context.Context, userID uuid.UUID, typ Type, title, content string, data map[string]string) error
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type service struct {
	repo       Repository
	dispatcher Dispatcher
	logger     *logger.Logger
}

func NewService(repo Repository, dispatcher Dispatcher, logger *logger.Logger) Service {
	return &service{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateForUser stores the notification and attempts out-of-band delivery.
// Dispatch failures are swallowed and logged.
func (s *service) CreateForUser(ctx context.Context, userID uuid.UUID, typ Type, title, content string, data map[string]string) error {
	metadata := datatypes.JSON("{}")
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			metadata = datatypes.JSON(b)
		}
	}

	n := &Notification{
		ID:       uuid.New(),
		UserID:   userID,
		Type:     typ,
		Title:    title,
		Content:  content,
		Metadata: metadata,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.Send(ctx, userID, title, content, data); err != nil {
			s.logger.Error("notification dispatch failed",
				zap.String("user_id", userID.String()),
				zap.String("type", string(typ)),
				zap.Error(err))
		}
	}

	return nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]Notification, error) {
	return s.repo.FindByUser(ctx, userID, unreadOnly, limit)
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
