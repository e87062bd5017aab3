package dto

import (
	"time"

	"github.com/google/uuid"
)

// QuizAnswer is one submitted answer. Value carries the chosen option
// text, the scale number or "yes"/"no" as a string.
type QuizAnswer struct {
	QuestionID string `json:"question_id" binding:"required"`
	Value      string `json:"value"`
}

// SubmitQuizRequest represents the request to submit quiz answers
type SubmitQuizRequest struct {
	Answers []QuizAnswer `json:"answers" binding:"required"`
}

// QuizQuestionResponse represents a quiz question in API responses
type QuizQuestionResponse struct {
	ID       string               `json:"id"`
	Text     string               `json:"text"`
	Type     string               `json:"type"`
	Options  []QuizOptionResponse `json:"options,omitempty"`
	ScaleMin int                  `json:"scale_min,omitempty"`
	ScaleMax int                  `json:"scale_max,omitempty"`
	Order    int                  `json:"order"`
}

// QuizOptionResponse represents a multiple-choice option in API responses
type QuizOptionResponse struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// QuizResponse represents a quiz in API responses
type QuizResponse struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Category    string                 `json:"category"`
	Questions   []QuizQuestionResponse `json:"questions"`
	Duration    int                    `json:"duration,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// QuizResultResponse represents a completed quiz attempt in API responses
type QuizResultResponse struct {
	ID          uuid.UUID           `json:"id"`
	QuizID      uuid.UUID           `json:"quiz_id"`
	QuizTitle   string              `json:"quiz_title,omitempty"`
	Answers     []QuizAnswerScore   `json:"answers"`
	TotalScore  float64             `json:"total_score"`
	Result      QuizResultBreakdown `json:"result"`
	CompletedAt time.Time           `json:"completed_at"`
}

// QuizAnswerScore is a graded answer in API responses
type QuizAnswerScore struct {
	QuestionID string  `json:"question_id"`
	Value      string  `json:"value"`
	Score      float64 `json:"score"`
}

// QuizResultBreakdown is the interpreted outcome in API responses
type QuizResultBreakdown struct {
	Label           string   `json:"label"`
	Description     string   `json:"description,omitempty"`
	Recommendations []string `json:"recommendations"`
}

// SubmitQuizResponse represents the response to a quiz submission
type SubmitQuizResponse struct {
	Message  string              `json:"message"`
	Result   *QuizResultResponse `json:"result"`
	XPEarned int                 `json:"xp_earned"`
}
