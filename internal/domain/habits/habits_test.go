package habits

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func habitWithCompletions(dates ...time.Time) *Habit {
	h := &Habit{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Name:      "Morning run",
		Frequency: FrequencyDaily,
	}
	for _, d := range dates {
		h.MarkComplete(d, "")
	}
	return h
}

func TestMarkCompleteStreaks(t *testing.T) {
	tests := []struct {
		name           string
		priorDates     []time.Time
		now            time.Time
		expectedStreak int
		expectedBest   int
		alreadyDone    bool
	}{
		{
			name:           "First completion starts streak at 1",
			priorDates:     nil,
			now:            day(2024, 3, 10),
			expectedStreak: 1,
			expectedBest:   1,
		},
		{
			name:           "Consecutive day extends streak",
			priorDates:     []time.Time{day(2024, 3, 9)},
			now:            day(2024, 3, 10),
			expectedStreak: 2,
			expectedBest:   2,
		},
		{
			name:           "Gap resets streak to 1",
			priorDates:     []time.Time{day(2024, 3, 5), day(2024, 3, 6)},
			now:            day(2024, 3, 10),
			expectedStreak: 1,
			expectedBest:   2,
		},
		{
			name:           "Same day is idempotent",
			priorDates:     []time.Time{day(2024, 3, 9), day(2024, 3, 10)},
			now:            day(2024, 3, 10).Add(5 * time.Hour),
			expectedStreak: 2,
			expectedBest:   2,
			alreadyDone:    true,
		},
		{
			name: "Best streak survives a reset",
			priorDates: []time.Time{
				day(2024, 3, 1), day(2024, 3, 2), day(2024, 3, 3),
				day(2024, 3, 4), day(2024, 3, 8),
			},
			now:            day(2024, 3, 9),
			expectedStreak: 2,
			expectedBest:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := habitWithCompletions(tt.priorDates...)
			result := h.MarkComplete(tt.now, "")

			assert.Equal(t, tt.alreadyDone, result.AlreadyCompleted)
			assert.Equal(t, tt.expectedStreak, result.Streak)
			assert.Equal(t, tt.expectedStreak, h.CurrentStreak)
			assert.Equal(t, tt.expectedBest, h.BestStreak)
		})
	}
}

func TestMarkCompleteIdempotentDoesNotGrowHistory(t *testing.T) {
	h := habitWithCompletions(day(2024, 3, 10))
	before := len(h.Completions)
	beforeTotal := h.TotalCompletions

	result := h.MarkComplete(day(2024, 3, 10).Add(8*time.Hour), "again")

	assert.True(t, result.AlreadyCompleted)
	assert.Len(t, h.Completions, before)
	assert.Equal(t, beforeTotal, h.TotalCompletions)
}

func TestCompletionRate(t *testing.T) {
	now := day(2024, 3, 30)

	tests := []struct {
		name       string
		habit      *Habit
		windowDays int
		expected   int
	}{
		{
			name:       "No completions",
			habit:      habitWithCompletions(),
			windowDays: 30,
			expected:   0,
		},
		{
			name: "Half the window completed",
			habit: habitWithCompletions(
				day(2024, 3, 26), day(2024, 3, 27),
				day(2024, 3, 28), day(2024, 3, 29), day(2024, 3, 30),
			),
			windowDays: 10,
			expected:   50,
		},
		{
			name: "Completions outside the window are ignored",
			habit: habitWithCompletions(
				day(2024, 1, 5), day(2024, 3, 29), day(2024, 3, 30),
			),
			windowDays: 7,
			expected:   29,
		},
		{
			name: "Non-daily habits report 0",
			habit: func() *Habit {
				h := habitWithCompletions(day(2024, 3, 29), day(2024, 3, 30))
				h.Frequency = FrequencyWeekly
				return h
			}(),
			windowDays: 7,
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.habit.CompletionRate(now, tt.windowDays))
		})
	}
}

func TestCompletedOn(t *testing.T) {
	h := habitWithCompletions(day(2024, 3, 10))

	assert.True(t, h.CompletedOn(day(2024, 3, 10).Add(10*time.Hour)))
	assert.False(t, h.CompletedOn(day(2024, 3, 11)))
}

func TestShouldSendStreakNotification(t *testing.T) {
	svc := NewNotificationService(nil)

	tests := []struct {
		streak   int
		expected bool
	}{
		{0, false},
		{1, false},
		{6, false},
		{7, true},
		{8, false},
		{14, true},
		{21, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, svc.ShouldSendStreakNotification(tt.streak), "streak %d", tt.streak)
	}
}
