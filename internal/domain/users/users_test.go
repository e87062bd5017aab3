package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddXP(t *testing.T) {
	tests := []struct {
		name          string
		startXP       int
		startLevel    int
		points        int
		expectedXP    int
		expectedLevel int
		leveledUp     bool
	}{
		{
			name:          "Small award stays on level 1",
			startLevel:    1,
			points:        XPMoodLog,
			expectedXP:    5,
			expectedLevel: 1,
		},
		{
			name:          "Crossing 100 XP reaches level 2",
			startXP:       95,
			startLevel:    1,
			points:        XPHabitCompletion,
			expectedXP:    105,
			expectedLevel: 2,
			leveledUp:     true,
		},
		{
			name:          "Large award skips levels",
			startXP:       10,
			startLevel:    1,
			points:        250,
			expectedXP:    260,
			expectedLevel: 3,
			leveledUp:     true,
		},
		{
			name:          "Landing exactly on a boundary levels up",
			startXP:       85,
			startLevel:    1,
			points:        XPExerciseCompleted,
			expectedXP:    100,
			expectedLevel: 2,
			leveledUp:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Gamification: Gamification{XP: tt.startXP, Level: tt.startLevel}}
			result := u.AddXP(tt.points)

			assert.Equal(t, tt.expectedXP, result.XP)
			assert.Equal(t, tt.expectedLevel, result.NewLevel)
			assert.Equal(t, tt.leveledUp, result.LeveledUp)
			assert.Equal(t, tt.expectedLevel, u.Gamification.Level)
		})
	}
}

func TestCheckIn(t *testing.T) {
	noon := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}

	t.Run("First check-in starts streak at 1", func(t *testing.T) {
		u := &User{}
		assert.Equal(t, 1, u.CheckIn(noon(2024, 6, 1)))
		assert.NotNil(t, u.Gamification.LastCheckIn)
	})

	t.Run("Consecutive day extends streak", func(t *testing.T) {
		u := &User{}
		u.CheckIn(noon(2024, 6, 1))
		assert.Equal(t, 2, u.CheckIn(noon(2024, 6, 2)))
	})

	t.Run("Same day is a no-op", func(t *testing.T) {
		u := &User{}
		u.CheckIn(noon(2024, 6, 1))
		assert.Equal(t, 1, u.CheckIn(noon(2024, 6, 1).Add(6*time.Hour)))
		assert.Equal(t, 1, u.Gamification.Streak)
	})

	t.Run("Missed day resets to 1", func(t *testing.T) {
		u := &User{}
		u.CheckIn(noon(2024, 6, 1))
		u.CheckIn(noon(2024, 6, 2))
		assert.Equal(t, 1, u.CheckIn(noon(2024, 6, 5)))
	})
}
