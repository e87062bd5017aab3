package dto

import (
	"time"

	"github.com/google/uuid"
)

// CalculateScoreRequest represents the request to recompute a daily score
type CalculateScoreRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
}

// ScoreComponentsResponse represents the per-area scores
type ScoreComponentsResponse struct {
	MoodScore       float64 `json:"mood_score"`
	HabitScore      float64 `json:"habit_score"`
	ExerciseScore   float64 `json:"exercise_score"`
	SleepScore      float64 `json:"sleep_score"`
	EngagementScore float64 `json:"engagement_score"`
}

// ScoreSummaryResponse represents the raw counts behind the score
type ScoreSummaryResponse struct {
	MoodEntries        int `json:"mood_entries"`
	HabitsCompleted    int `json:"habits_completed"`
	TotalHabits        int `json:"total_habits"`
	ExercisesCompleted int `json:"exercises_completed"`
	ExerciseMinutes    int `json:"minutes_spent_on_exercises"`
}

// ScoreResponse represents a daily score in API responses
type ScoreResponse struct {
	ID              uuid.UUID               `json:"id"`
	UserID          uuid.UUID               `json:"user_id"`
	Date            time.Time               `json:"date"`
	OverallScore    float64                 `json:"overall_score"`
	Components      ScoreComponentsResponse `json:"components"`
	Summary         ScoreSummaryResponse    `json:"summary"`
	Insights        []string                `json:"insights"`
	Recommendations []string                `json:"recommendations"`
	CreatedAt       time.Time               `json:"created_at"`
}

// ScoreHistoryFilter represents the query parameters for score history
type ScoreHistoryFilter struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Limit     int    `form:"limit"`
}

// ScoreStatsResponse represents aggregate score statistics
type ScoreStatsResponse struct {
	AverageScore      float64            `json:"average_score"`
	TotalDays         int                `json:"total_days"`
	Trend             string             `json:"trend"`
	BestDay           *BestDayResponse   `json:"best_day"`
	ComponentAverages map[string]float64 `json:"component_averages"`
	Period            int                `json:"period"`
}

// BestDayResponse represents the highest-scoring day in a period
type BestDayResponse struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}
