package exercises

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
	exercise   *Exercise
	createdLog *Log
}

func (r *stubRepo) CreateExercise(ctx context.Context, exercise *Exercise) error { return nil }

func (r *stubRepo) FindExerciseByID(ctx context.Context, id uuid.UUID) (*Exercise, error) {
	if r.exercise == nil {
		return nil, ErrExerciseNotFound
	}
	return r.exercise, nil
}

func (r *stubRepo) FindExercises(ctx context.Context, category *Category) ([]Exercise, error) {
	return nil, nil
}

func (r *stubRepo) CreateLog(ctx context.Context, log *Log) error {
	r.createdLog = log
	return nil
}

func (r *stubRepo) FindLogs(ctx context.Context, userID uuid.UUID, limit int) ([]Log, error) {
	return nil, nil
}

func (r *stubRepo) FindLogsRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]Log, error) {
	return nil, nil
}

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

func TestCompleteExerciseAwardsExerciseXP(t *testing.T) {
	userID := uuid.New()
	repo := &stubRepo{exercise: &Exercise{
		ID:       uuid.New(),
		Title:    "Box breathing",
		Category: CategoryBreathing,
		Duration: 5,
		IsActive: true,
	}}
	rewarder := &recordingRewarder{}
	svc := NewService(repo, rewarder, time.UTC, logger.NewLoggerWithLevel("error"))

	log, err := svc.CompleteExercise(context.Background(), repo.exercise.ID, userID, CompleteInput{})
	require.NoError(t, err)
	require.NotNil(t, log)

	// The catalog duration backfills an omitted session duration.
	require.NotNil(t, log.Duration)
	assert.Equal(t, 5, *log.Duration)

	assert.Equal(t, 1, rewarder.calls)
	assert.Equal(t, userID, rewarder.userID)
	assert.Equal(t, users.XPExerciseCompleted, rewarder.points)
}

func TestCompleteExerciseRejectsOutOfRangeRating(t *testing.T) {
	repo := &stubRepo{exercise: &Exercise{ID: uuid.New(), Duration: 5}}
	rewarder := &recordingRewarder{}
	svc := NewService(repo, rewarder, time.UTC, logger.NewLoggerWithLevel("error"))

	rating := 6
	_, err := svc.CompleteExercise(context.Background(), repo.exercise.ID, uuid.New(), CompleteInput{Rating: &rating})
	assert.ErrorIs(t, err, ErrInvalidLog)
	assert.Nil(t, repo.createdLog)
	assert.Zero(t, rewarder.calls)
}
