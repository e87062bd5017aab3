package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patelajay005/Saathi/pkg/logger"
)

type recordingRepo struct {
	created []*Notification
}

func (r *recordingRepo) Create(ctx context.Context, n *Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *recordingRepo) FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]Notification, error) {
	return nil, nil
}

func (r *recordingRepo) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return nil
}

func (r *recordingRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

type failingDispatcher struct{}

func (failingDispatcher) Send(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error {
	return errors.New("push gateway down")
}

func TestCreateForUserEncodesMetadata(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo, nil, logger.NewLogger())

	userID := uuid.New()
	err := svc.CreateForUser(context.Background(), userID, StreakMilestone, "Streak Milestone", "7 days!", map[string]string{
		"habit_id": "abc",
		"streak":   "7",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(repo.created[0].Metadata, &decoded))
	assert.Equal(t, "abc", decoded["habit_id"])
	assert.Equal(t, "7", decoded["streak"])
}

func TestCreateForUserWithoutData(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo, nil, logger.NewLogger())

	err := svc.CreateForUser(context.Background(), uuid.New(), HabitReminder, "Habit Reminder", "go run", nil)
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.JSONEq(t, "{}", string(repo.created[0].Metadata))
}

func TestCreateForUserSwallowsDispatchFailure(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo, failingDispatcher{}, logger.NewLogger())

	err := svc.CreateForUser(context.Background(), uuid.New(), LevelUp, "Level Up", "level 3", nil)
	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
}
