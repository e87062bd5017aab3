package exercises

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Category labels for guided exercises
type Category string

const (
	CategoryCBT           Category = "CBT"
	CategoryMindfulness   Category = "mindfulness"
	CategoryBreathing     Category = "breathing"
	CategoryJournaling    Category = "journaling"
	CategoryGratitude     Category = "gratitude"
	CategoryVisualization Category = "visualization"
	CategoryRelaxation    Category = "progressive-relaxation"
	CategoryOther         Category = "other"
)

// Exercise is a guided wellness exercise from the catalog
type Exercise struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key"`
	Title        string         `gorm:"size:255;not null"`
	Description  string         `gorm:"type:text;not null"`
	Category     Category       `gorm:"size:32;not null"`
	Duration     int            `gorm:"not null"` // minutes
	Difficulty   string         `gorm:"size:32;not null;default:'beginner'"`
	Instructions pq.StringArray `gorm:"type:text[]"`
	Benefits     pq.StringArray `gorm:"type:text[]"`
	Tags         pq.StringArray `gorm:"type:text[]"`
	AudioURL     string         `gorm:"size:512"`
	IsActive     bool           `gorm:"not null;default:true"`
	CreatedAt    time.Time      `gorm:"not null"`
}

// TableName specifies the table name for the Exercise model
func (Exercise) TableName() string {
	return "exercises"
}

// BeforeCreate is called before inserting an exercise record
func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Log records one completed exercise session for a user
type Log struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_exercise_logs_user,priority:1"`
	ExerciseID  uuid.UUID `gorm:"type:uuid;not null"`
	CompletedAt time.Time `gorm:"not null;index:idx_exercise_logs_user,priority:2,sort:desc"`
	Duration    *int      `gorm:"default:null"` // actual minutes, if reported
	Rating      *int      `gorm:"default:null"` // 1-5
	MoodBefore  *int      `gorm:"default:null"` // 1-10
	MoodAfter   *int      `gorm:"default:null"` // 1-10
	Notes       string    `gorm:"type:text"`
}

// TableName specifies the table name for the exercise Log model
func (Log) TableName() string {
	return "exercise_logs"
}

// BeforeCreate is called before inserting an exercise log record
func (l *Log) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CompletedAt.IsZero() {
		l.CompletedAt = time.Now()
	}
	return nil
}

// Minutes returns the reported duration, treating a missing value as 0.
func (l *Log) Minutes() int {
	if l.Duration == nil {
		return 0
	}
	return *l.Duration
}
