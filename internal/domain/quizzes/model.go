package quizzes

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category labels for self-assessment quizzes
type Category string

const (
	CategoryStress        Category = "stress"
	CategoryAnxiety       Category = "anxiety"
	CategoryDepression    Category = "depression"
	CategorySleep         Category = "sleep"
	CategoryRelationships Category = "relationships"
	CategorySelfEsteem    Category = "self-esteem"
	CategoryGeneral       Category = "general"
)

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategoryStress, CategoryAnxiety, CategoryDepression, CategorySleep,
		CategoryRelationships, CategorySelfEsteem, CategoryGeneral:
		return true
	}
	return false
}

// QuestionType of a quiz question
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeScale          QuestionType = "scale"
	TypeYesNo          QuestionType = "yes-no"
	TypeText           QuestionType = "text"
)

// Option is one selectable answer of a multiple-choice question
type Option struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Question is one entry in a quiz's question list. ID is stable within
// the quiz and is what submissions reference.
type Question struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Options  []Option     `json:"options,omitempty"`
	ScaleMin int          `json:"scale_min,omitempty"`
	ScaleMax int          `json:"scale_max,omitempty"`
	Order    int          `json:"order"`
}

// ScoringRange maps a total-score interval to an interpreted result
type ScoringRange struct {
	Min             float64  `json:"min"`
	Max             float64  `json:"max"`
	Label           string   `json:"label"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// Quiz is a self-assessment questionnaire. Questions and ScoringRanges
// are stored as JSON documents since their shape varies per quiz.
type Quiz struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key"`
	Title         string         `gorm:"size:255;not null"`
	Description   string         `gorm:"type:text"`
	Category      Category       `gorm:"size:32;not null"`
	Questions     datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	ScoringRanges datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Duration      int            // estimated minutes
	IsActive      bool           `gorm:"not null;default:true"`
	CreatedAt     time.Time      `gorm:"not null"`
}

// TableName specifies the table name for the Quiz model
func (Quiz) TableName() string {
	return "quizzes"
}

// BeforeCreate is called before inserting a quiz record
func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// DecodeQuestions unmarshals the stored question list.
func (q *Quiz) DecodeQuestions() ([]Question, error) {
	var questions []Question
	if len(q.Questions) == 0 {
		return questions, nil
	}
	err := json.Unmarshal(q.Questions, &questions)
	return questions, err
}

// DecodeRanges unmarshals the stored scoring ranges.
func (q *Quiz) DecodeRanges() ([]ScoringRange, error) {
	var ranges []ScoringRange
	if len(q.ScoringRanges) == 0 {
		return ranges, nil
	}
	err := json.Unmarshal(q.ScoringRanges, &ranges)
	return ranges, err
}

// Answer is one submitted answer, referencing a question by ID. Value
// holds the option text, the scale number or "yes"/"no" as a string.
type Answer struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
}

// ScoredAnswer is an answer with the score the quiz assigned it
type ScoredAnswer struct {
	QuestionID string  `json:"question_id"`
	Value      string  `json:"value"`
	Score      float64 `json:"score"`
}

// Result is the interpreted outcome of a completed quiz
type Result struct {
	Label           string   `json:"label"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// QuizResult is a user's completed quiz attempt
type QuizResult struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primary_key"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;index:idx_quiz_results_user_completed,priority:1;index:idx_quiz_results_user_quiz,priority:1"`
	QuizID                uuid.UUID      `gorm:"type:uuid;not null;index:idx_quiz_results_user_quiz,priority:2"`
	Answers               datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	TotalScore            float64        `gorm:"not null"`
	ResultLabel           string         `gorm:"size:255;not null"`
	ResultDescription     string         `gorm:"type:text"`
	ResultRecommendations pq.StringArray `gorm:"type:text[]"`
	CompletedAt           time.Time      `gorm:"not null;index:idx_quiz_results_user_completed,priority:2,sort:desc"`

	Quiz Quiz `gorm:"foreignKey:QuizID"`
}

// TableName specifies the table name for the QuizResult model
func (QuizResult) TableName() string {
	return "quiz_results"
}

// BeforeCreate is called before inserting a quiz result record
func (r *QuizResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
