package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateHabitRequest represents the request to create a new habit
type CreateHabitRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Frequency    string  `json:"frequency"`
	TargetDays   []int64 `json:"target_days"`
	ReminderTime string  `json:"reminder_time"`
	Color        string  `json:"color"`
	Icon         string  `json:"icon"`
}

// UpdateHabitRequest represents the request to update an existing habit
type UpdateHabitRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	Frequency    *string `json:"frequency,omitempty"`
	TargetDays   []int64 `json:"target_days,omitempty"`
	ReminderTime *string `json:"reminder_time,omitempty"`
	Color        *string `json:"color,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// CompleteHabitRequest represents the request to mark a habit complete
type CompleteHabitRequest struct {
	Notes string `json:"notes"`
}

// HabitResponse represents a habit in API responses
type HabitResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	Frequency        string    `json:"frequency"`
	TargetDays       []int64   `json:"target_days,omitempty"`
	ReminderTime     string    `json:"reminder_time,omitempty"`
	Color            string    `json:"color"`
	Icon             string    `json:"icon"`
	CurrentStreak    int       `json:"current_streak"`
	BestStreak       int       `json:"best_streak"`
	TotalCompletions int       `json:"total_completions"`
	CompletedToday   bool      `json:"completed_today"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HabitCompletionResponse represents the outcome of a completion request
type HabitCompletionResponse struct {
	AlreadyCompleted bool `json:"already_completed"`
	CurrentStreak    int  `json:"current_streak"`
	BestStreak       int  `json:"best_streak"`
	TotalCompletions int  `json:"total_completions"`
	XPEarned         int  `json:"xp_earned"`
}

// HabitStatsResponse represents statistics about a single habit
type HabitStatsResponse struct {
	CurrentStreak     int `json:"current_streak"`
	BestStreak        int `json:"best_streak"`
	TotalCompletions  int `json:"total_completions"`
	CompletionRate    int `json:"completion_rate"`
	RecentCompletions int `json:"recent_completions"`
	CreatedDaysAgo    int `json:"created_days_ago"`
}
