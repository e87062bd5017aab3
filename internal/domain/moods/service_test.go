package moods

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patelajay005/Saathi/internal/domain/users"
	"github.com/patelajay005/Saathi/pkg/logger"
)

type stubRepo struct {
	created *Mood
}

func (r *stubRepo) Create(ctx context.Context, mood *Mood) error {
	r.created = mood
	return nil
}

func (r *stubRepo) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Mood, error) {
	return nil, ErrMoodNotFound
}

func (r *stubRepo) FindAll(ctx context.Context, filter MoodFilter) ([]Mood, error) {
	return nil, nil
}

func (r *stubRepo) FindRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]Mood, error) {
	return nil, nil
}

func (r *stubRepo) Update(ctx context.Context, mood *Mood) error { return nil }

func (r *stubRepo) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error { return nil }

type recordingRewarder struct {
	userID uuid.UUID
	points int
	calls  int
}

func (r *recordingRewarder) Award(ctx context.Context, userID uuid.UUID, points int) error {
	r.calls++
	r.userID = userID
	r.points = points
	return nil
}

func TestLogMoodAwardsMoodXP(t *testing.T) {
	userID := uuid.New()
	repo := &stubRepo{}
	rewarder := &recordingRewarder{}
	svc := NewService(repo, rewarder, time.UTC, logger.NewLoggerWithLevel("error"))

	mood, err := svc.LogMood(context.Background(), userID, LogMoodInput{
		Score:   7,
		Emotion: EmotionCalm,
	})
	require.NoError(t, err)
	require.NotNil(t, mood)

	assert.Equal(t, 1, rewarder.calls)
	assert.Equal(t, userID, rewarder.userID)
	assert.Equal(t, users.XPMoodLog, rewarder.points)
}

func TestLogMoodRejectsInvalidInputBeforeAwarding(t *testing.T) {
	repo := &stubRepo{}
	rewarder := &recordingRewarder{}
	svc := NewService(repo, rewarder, time.UTC, logger.NewLoggerWithLevel("error"))

	_, err := svc.LogMood(context.Background(), uuid.New(), LogMoodInput{
		Score:   11,
		Emotion: EmotionCalm,
	})
	assert.ErrorIs(t, err, ErrInvalidMood)
	assert.Nil(t, repo.created)
	assert.Zero(t, rewarder.calls)
}
