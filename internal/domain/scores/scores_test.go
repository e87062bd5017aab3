package scores

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/patelajay005/Saathi/internal/domain/moods"
)

var scoreDate = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

func TestCalculateComponents(t *testing.T) {
	tests := []struct {
		name             string
		input            ScoreInput
		expectedOverall  float64
		expectedMood     float64
		expectedHabit    float64
		expectedExercise float64
	}{
		{
			name: "Typical mixed day",
			input: ScoreInput{
				MoodScores:         []int{8},
				TotalHabits:        2,
				HabitsCompleted:    1,
				ExercisesCompleted: 0,
			},
			expectedMood:     8,
			expectedHabit:    5,
			expectedExercise: 0,
			expectedOverall:  4.4, // 8*0.3 + 5*0.4 + 0*0.3
		},
		{
			name: "Exercises only",
			input: ScoreInput{
				ExercisesCompleted: 4,
				ExerciseMinutes:    60,
			},
			expectedExercise: 10,
			expectedOverall:  3,
		},
		{
			name:            "Empty day scores zero",
			input:           ScoreInput{},
			expectedOverall: 0,
		},
		{
			name: "Exercise score caps at 10",
			input: ScoreInput{
				ExercisesCompleted: 7,
			},
			expectedExercise: 10,
			expectedOverall:  3,
		},
		{
			name: "Mood averages multiple entries",
			input: ScoreInput{
				MoodScores:  []int{4, 7, 9},
				TotalHabits: 3,
			},
			expectedMood:    6.7,
			expectedOverall: 2, // avg 6.666... * 0.3 = 2.0, rounded after weighting
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Calculate(uuid.New(), scoreDate, tt.input)

			assert.InDelta(t, tt.expectedOverall, score.OverallScore, 0.001)
			assert.InDelta(t, tt.expectedMood, score.Components.MoodScore, 0.001)
			assert.InDelta(t, tt.expectedHabit, score.Components.HabitScore, 0.001)
			assert.InDelta(t, tt.expectedExercise, score.Components.ExerciseScore, 0.001)
			assert.Equal(t, tt.input.ExerciseMinutes, score.Summary.ExerciseMinutes)
		})
	}
}

func TestCalculateRoundsOverallAfterWeighting(t *testing.T) {
	// Unrounded components: mood 6.333..., habit 3.333...
	// 6.333*0.3 + 3.333*0.4 = 3.2333 -> 3.2. Rounding the components
	// first would give 6.3*0.3 + 3.3*0.4 = 3.21 -> 3.2 here, but the
	// summary values prove the stored components were rounded separately.
	score := Calculate(uuid.New(), scoreDate, ScoreInput{
		MoodScores:      []int{5, 6, 8},
		TotalHabits:     3,
		HabitsCompleted: 1,
	})

	assert.InDelta(t, 3.2, score.OverallScore, 0.001)
	assert.InDelta(t, 6.3, score.Components.MoodScore, 0.001)
	assert.InDelta(t, 3.3, score.Components.HabitScore, 0.001)
}

func TestCalculateInsights(t *testing.T) {
	tests := []struct {
		name     string
		input    ScoreInput
		expected []string
	}{
		{
			name: "High mood and full habits",
			input: ScoreInput{
				MoodScores:      []int{9},
				TotalHabits:     2,
				HabitsCompleted: 2,
			},
			expected: []string{
				"Great mood today! Keep up the positive energy! 🌟",
				"Excellent habit completion! You're building strong routines! 💪",
			},
		},
		{
			name: "Low mood and missed habits",
			input: ScoreInput{
				MoodScores:  []int{3},
				TotalHabits: 4,
			},
			expected: []string{
				"Your mood seems low. Consider trying a mindfulness exercise.",
				"Try to complete more habits tomorrow for a better score.",
			},
		},
		{
			name: "Exercise count appears in insight",
			input: ScoreInput{
				MoodScores:         []int{6},
				ExercisesCompleted: 2,
			},
			expected: []string{
				"Try to complete more habits tomorrow for a better score.",
				"You completed 2 wellness exercise(s) today! 🎯",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Calculate(uuid.New(), scoreDate, tt.input)
			assert.Equal(t, tt.expected, []string(score.Insights))
		})
	}
}

func TestCalculateRecommendations(t *testing.T) {
	score := Calculate(uuid.New(), scoreDate, ScoreInput{
		MoodScores:      []int{4},
		TotalHabits:     3,
		HabitsCompleted: 1,
	})

	assert.Equal(t, []string{
		"Try a 5-minute breathing exercise",
		"Practice gratitude journaling",
		"Focus on one habit at a time",
	}, []string(score.Recommendations))

	// A strong day earns no recommendations.
	strong := Calculate(uuid.New(), scoreDate, ScoreInput{
		MoodScores:         []int{8},
		TotalHabits:        2,
		HabitsCompleted:    2,
		ExercisesCompleted: 1,
	})
	assert.Empty(t, strong.Recommendations)
}

func TestOverallTrend(t *testing.T) {
	withOveralls := func(values ...float64) []DailyScore {
		scores := make([]DailyScore, len(values))
		for i, v := range values {
			scores[i].OverallScore = v
		}
		return scores
	}

	tests := []struct {
		name     string
		scores   []DailyScore
		expected string
	}{
		{"Single day is stable", withOveralls(5), moods.TrendStable},
		{"Rising scores improve", withOveralls(3, 3, 6, 7), moods.TrendImproving},
		{"Falling scores decline", withOveralls(8, 7, 4, 3), moods.TrendDeclining},
		{"Small movement is stable", withOveralls(5, 5.2, 5.4, 5.5), moods.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, overallTrend(tt.scores))
		})
	}
}
