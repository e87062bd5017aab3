package dto

import (
	"time"

	"github.com/google/uuid"
)

// LogMoodRequest represents the request to record a mood entry
type LogMoodRequest struct {
	Score      int      `json:"score" binding:"required,min=1,max=10"`
	Emotion    string   `json:"emotion" binding:"required"`
	Notes      string   `json:"notes"`
	Triggers   []string `json:"triggers"`
	Activities []string `json:"activities"`
	TimeOfDay  string   `json:"time_of_day"`
	SleepHours float64  `json:"sleep_hours"`
}

// UpdateMoodRequest represents the request to edit a mood entry
type UpdateMoodRequest struct {
	Score      *int     `json:"score,omitempty" binding:"omitempty,min=1,max=10"`
	Emotion    *string  `json:"emotion,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	Triggers   []string `json:"triggers,omitempty"`
	Activities []string `json:"activities,omitempty"`
}

// MoodResponse represents a mood entry in API responses
type MoodResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Score      int       `json:"score"`
	Emotion    string    `json:"emotion"`
	Notes      string    `json:"notes,omitempty"`
	Triggers   []string  `json:"triggers,omitempty"`
	Activities []string  `json:"activities,omitempty"`
	TimeOfDay  string    `json:"time_of_day,omitempty"`
	SleepHours float64   `json:"sleep_hours,omitempty"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

// MoodHistoryFilter represents the query parameters for mood history
type MoodHistoryFilter struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Limit     int    `form:"limit"`
}

// MoodStatsResponse represents aggregate mood statistics
type MoodStatsResponse struct {
	AverageScore     float64        `json:"average_score"`
	TotalEntries     int            `json:"total_entries"`
	EmotionBreakdown map[string]int `json:"emotion_breakdown"`
	Trend            string         `json:"trend"`
	PeriodDays       int            `json:"period_days"`
}
