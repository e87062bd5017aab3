package habits

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/patelajay005/Saathi/internal/domain/users"
	"github.com/patelajay005/Saathi/pkg/logger"
)

type stubRepo struct {
	habit        *Habit
	fresh        *Habit
	recordErr    error
	findCalls    int
	recordCalled bool
}

func (r *stubRepo) Create(ctx context.Context, habit *Habit) error { return nil }

func (r *stubRepo) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Habit, error) {
	r.findCalls++
	if r.findCalls > 1 && r.fresh != nil {
		return r.fresh, nil
	}
	return r.habit, nil
}

func (r *stubRepo) FindAll(ctx context.Context, filter HabitFilter) ([]Habit, error) {
	return nil, nil
}

func (r *stubRepo) FindActiveWithCompletionsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]Habit, error) {
	return nil, nil
}

func (r *stubRepo) Update(ctx context.Context, habit *Habit) error { return nil }

func (r *stubRepo) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error { return nil }

func (r *stubRepo) RecordCompletion(ctx context.Context, habit *Habit, entry *Completion) error {
	r.recordCalled = true
	return r.recordErr
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

func newTestHabit(userID uuid.UUID) *Habit {
	return &Habit{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     "Evening walk",
		Category: CategoryExercise,
		IsActive: true,
	}
}

func TestRecordCompletionAwardsHabitXP(t *testing.T) {
	userID := uuid.New()
	repo := &stubRepo{habit: newTestHabit(userID)}
	rewarder := &recordingRewarder{}
	svc := NewService(repo, nil, rewarder, time.UTC, logger.NewLoggerWithLevel("error"))

	outcome, err := svc.RecordCompletion(context.Background(), repo.habit.ID, userID, "")
	require.NoError(t, err)

	assert.False(t, outcome.AlreadyCompleted)
	assert.Equal(t, users.XPHabitCompletion, outcome.XPEarned)
	assert.Equal(t, 1, rewarder.calls)
	assert.Equal(t, userID, rewarder.userID)
	assert.Equal(t, users.XPHabitCompletion, rewarder.points)
}

func TestRecordCompletionLostRaceIsIdempotent(t *testing.T) {
	userID := uuid.New()
	habit := newTestHabit(userID)

	// The concurrent winner already persisted today's entry and counters.
	fresh := newTestHabit(userID)
	fresh.ID = habit.ID
	fresh.CurrentStreak = 4
	fresh.BestStreak = 9
	fresh.TotalCompletions = 23

	repo := &stubRepo{habit: habit, fresh: fresh, recordErr: ErrCompletionExists}
	rewarder := &recordingRewarder{}
	svc := NewService(repo, nil, rewarder, time.UTC, logger.NewLoggerWithLevel("error"))

	outcome, err := svc.RecordCompletion(context.Background(), habit.ID, userID, "")
	require.NoError(t, err)

	assert.True(t, outcome.AlreadyCompleted)
	assert.Equal(t, 4, outcome.Streak)
	assert.Equal(t, 9, outcome.BestStreak)
	assert.Equal(t, 23, outcome.TotalCompletions)
	assert.Zero(t, outcome.XPEarned)
	assert.Zero(t, rewarder.calls)
}

func TestIsDuplicateDay(t *testing.T) {
	assert.True(t, isDuplicateDay(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateDay(fmt.Errorf("record completion: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, isDuplicateDay(gorm.ErrRecordNotFound))
	assert.False(t, isDuplicateDay(fmt.Errorf("connection reset")))
}
