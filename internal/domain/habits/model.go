package habits

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Category labels for habits
type Category string

const (
	CategoryExercise   Category = "exercise"
	CategoryMeditation Category = "meditation"
	CategorySleep      Category = "sleep"
	CategoryNutrition  Category = "nutrition"
	CategorySocial     Category = "social"
	CategoryLearning   Category = "learning"
	CategoryCreative   Category = "creative"
	CategoryOther      Category = "other"
)

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategoryExercise, CategoryMeditation, CategorySleep, CategoryNutrition,
		CategorySocial, CategoryLearning, CategoryCreative, CategoryOther:
		return true
	}
	return false
}

// Frequency of a habit
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// Valid reports whether f is a known frequency
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}

// Habit is a user-defined habit with its derived streak state.
// CurrentStreak, BestStreak and TotalCompletions are derived from the
// completion history; BestStreak >= CurrentStreak holds after every update.
type Habit struct {
	ID               uuid.UUID     `gorm:"type:uuid;primary_key"`
	UserID           uuid.UUID     `gorm:"type:uuid;not null;index:idx_habits_user_active,priority:1"`
	Name             string        `gorm:"size:255;not null"`
	Description      string        `gorm:"size:300"`
	Category         Category      `gorm:"size:32;not null;default:'other'"`
	Frequency        Frequency     `gorm:"size:16;not null;default:'daily'"`
	TargetDays       pq.Int64Array `gorm:"type:integer[]"` // weekday indices 0-6, weekly/custom only
	ReminderTime     string        `gorm:"size:16"`
	Color            string        `gorm:"size:16;not null;default:'#6366f1'"`
	Icon             string        `gorm:"size:16"`
	CurrentStreak    int           `gorm:"not null;default:0"`
	BestStreak       int           `gorm:"not null;default:0"`
	TotalCompletions int           `gorm:"not null;default:0"`
	IsActive         bool          `gorm:"not null;default:true;index:idx_habits_user_active,priority:2"`
	CreatedAt        time.Time     `gorm:"not null"`
	UpdatedAt        time.Time     `gorm:"not null"`

	// Completions in logging order (normally chronological)
	Completions []Completion `gorm:"foreignKey:HabitID"`
}

// TableName specifies the table name for the Habit model
func (Habit) TableName() string {
	return "habits"
}

// BeforeCreate is called before inserting a habit record
func (h *Habit) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// Completion is one entry in a habit's completion history. Day is the
// completion date truncated to local midnight; the unique index on
// (habit_id, day) is the at-most-once-per-day guard.
type Completion struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_completion_per_day,priority:1"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_completions_user_day,priority:1"`
	Date      time.Time `gorm:"not null"`
	Day       time.Time `gorm:"type:date;not null;uniqueIndex:idx_completion_per_day,priority:2;index:idx_completions_user_day,priority:2"`
	Completed bool      `gorm:"not null;default:true"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the Completion model
func (Completion) TableName() string {
	return "habit_completions"
}

// BeforeCreate is called before inserting a completion record
func (c *Completion) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// DayStart truncates t to midnight in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CompletionResult reports the outcome of marking a habit complete
type CompletionResult struct {
	AlreadyCompleted bool
	Streak           int
}

// MarkComplete applies a completion dated now to the habit value.
//
// If the habit already has a completion on now's calendar day the call is a
// no-op and returns AlreadyCompleted. Otherwise it appends a completion,
// bumps TotalCompletions and runs the streak transition: the first-ever
// completion starts a streak of 1; a previous completion dated exactly
// yesterday extends the streak; any other gap resets it to 1. BestStreak is
// raised to CurrentStreak when exceeded, never lowered.
//
// This is a pure value mutation; persisting the appended completion and the
// counter updates atomically is the repository's job.
func (h *Habit) MarkComplete(now time.Time, notes string) CompletionResult {
	today := DayStart(now)

	for _, c := range h.Completions {
		if DayStart(c.Date.In(now.Location())).Equal(today) {
			return CompletionResult{AlreadyCompleted: true, Streak: h.CurrentStreak}
		}
	}

	h.Completions = append(h.Completions, Completion{
		ID:        uuid.New(),
		HabitID:   h.ID,
		UserID:    h.UserID,
		Date:      now,
		Day:       today,
		Completed: true,
		Notes:     notes,
	})
	h.TotalCompletions++

	if len(h.Completions) > 1 {
		prev := DayStart(h.Completions[len(h.Completions)-2].Date.In(now.Location()))
		if prev.Equal(today.AddDate(0, 0, -1)) {
			h.CurrentStreak++
		} else {
			h.CurrentStreak = 1
		}
	} else {
		h.CurrentStreak = 1
	}

	if h.CurrentStreak > h.BestStreak {
		h.BestStreak = h.CurrentStreak
	}

	return CompletionResult{AlreadyCompleted: false, Streak: h.CurrentStreak}
}

// CompletionRate returns the percentage of days within the lookback window
// (ending at now) that have a completed entry, rounded to a whole percent.
// Only meaningful for daily habits; other frequencies return 0, matching the
// product's current behavior for weekly/custom schedules.
func (h *Habit) CompletionRate(now time.Time, windowDays int) int {
	if h.Frequency != FrequencyDaily || windowDays <= 0 {
		return 0
	}

	cutoff := now.AddDate(0, 0, -windowDays)
	count := 0
	for _, c := range h.Completions {
		if c.Completed && !c.Date.Before(cutoff) {
			count++
		}
	}

	return int(math.Round(float64(count) / float64(windowDays) * 100))
}

// RecentCompletions counts completed entries within the lookback window.
func (h *Habit) RecentCompletions(now time.Time, windowDays int) int {
	cutoff := now.AddDate(0, 0, -windowDays)
	count := 0
	for _, c := range h.Completions {
		if c.Completed && !c.Date.Before(cutoff) {
			count++
		}
	}
	return count
}

// CompletedOn reports whether the habit has a completed entry on t's
// calendar day.
func (h *Habit) CompletedOn(t time.Time) bool {
	day := DayStart(t)
	for _, c := range h.Completions {
		if c.Completed && DayStart(c.Date.In(t.Location())).Equal(day) {
			return true
		}
	}
	return false
}
