package moods

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Emotion labels accepted on a mood entry
type Emotion string

const (
	EmotionHappy     Emotion = "happy"
	EmotionSad       Emotion = "sad"
	EmotionAnxious   Emotion = "anxious"
	EmotionCalm      Emotion = "calm"
	EmotionExcited   Emotion = "excited"
	EmotionAngry     Emotion = "angry"
	EmotionTired     Emotion = "tired"
	EmotionEnergetic Emotion = "energetic"
	EmotionStressed  Emotion = "stressed"
	EmotionNeutral   Emotion = "neutral"
)

// Valid reports whether e is a known emotion label
func (e Emotion) Valid() bool {
	switch e {
	case EmotionHappy, EmotionSad, EmotionAnxious, EmotionCalm, EmotionExcited,
		EmotionAngry, EmotionTired, EmotionEnergetic, EmotionStressed, EmotionNeutral:
		return true
	}
	return false
}

// Mood is a single mood log entry, scored 1-10
type Mood struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_moods_user_date,priority:1"`
	Score      int            `gorm:"not null"`
	Emotion    Emotion        `gorm:"size:32;not null"`
	Notes      string         `gorm:"size:500"`
	Triggers   pq.StringArray `gorm:"type:text[]"`
	Activities pq.StringArray `gorm:"type:text[]"`
	TimeOfDay  string         `gorm:"size:16"`
	SleepHours float64        `gorm:"default:0"`
	Date       time.Time      `gorm:"not null;index:idx_moods_user_date,priority:2,sort:desc"`
	CreatedAt  time.Time      `gorm:"not null"`
}

// TableName specifies the table name for the Mood model
func (Mood) TableName() string {
	return "moods"
}

// BeforeCreate is called before inserting a mood record
func (m *Mood) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	return nil
}

// Trend labels for a sequence of mood scores
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// ScoreTrend compares the average of the first half of entries (oldest first)
// against the second half; a difference beyond 0.5 flips the label.
func ScoreTrend(scores []int) string {
	if len(scores) < 2 {
		return TrendStable
	}

	mid := len(scores) / 2
	first := average(scores[:mid])
	second := average(scores[mid:])

	diff := second - first
	switch {
	case diff > 0.5:
		return TrendImproving
	case diff < -0.5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func average(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}
