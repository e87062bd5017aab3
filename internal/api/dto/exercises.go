package dto

import (
	"time"

	"github.com/google/uuid"
)

// CompleteExerciseRequest represents the request to log a finished exercise
type CompleteExerciseRequest struct {
	Duration   *int   `json:"duration,omitempty" binding:"omitempty,min=1"`
	Rating     *int   `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	MoodBefore *int   `json:"mood_before,omitempty" binding:"omitempty,min=1,max=10"`
	MoodAfter  *int   `json:"mood_after,omitempty" binding:"omitempty,min=1,max=10"`
	Notes      string `json:"notes"`
}

// ExerciseResponse represents a catalog exercise in API responses
type ExerciseResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Duration     int       `json:"duration"`
	Difficulty   string    `json:"difficulty"`
	Instructions []string  `json:"instructions,omitempty"`
	Benefits     []string  `json:"benefits,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	AudioURL     string    `json:"audio_url,omitempty"`
}

// ExerciseLogResponse represents a completed exercise in API responses
type ExerciseLogResponse struct {
	ID          uuid.UUID `json:"id"`
	ExerciseID  uuid.UUID `json:"exercise_id"`
	CompletedAt time.Time `json:"completed_at"`
	Duration    *int      `json:"duration,omitempty"`
	Rating      *int      `json:"rating,omitempty"`
	MoodBefore  *int      `json:"mood_before,omitempty"`
	MoodAfter   *int      `json:"mood_after,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}
