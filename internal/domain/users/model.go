package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// XP awarded per action; a level is every 100 XP.
const (
	XPPerLevel          = 100
	XPHabitCompletion   = 10
	XPMoodLog           = 5
	XPExerciseCompleted = 15
	XPQuizCompleted     = 20
	XPChatExchange      = 2
)

// Gamification holds the XP/level/check-in streak state for a user
type Gamification struct {
	XP          int        `gorm:"not null;default:0" json:"xp"`
	Level       int        `gorm:"not null;default:1" json:"level"`
	Streak      int        `gorm:"not null;default:0" json:"streak"`
	LastCheckIn *time.Time `gorm:"default:null" json:"last_check_in"`
}

type User struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key"`
	Email        string       `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string       `gorm:"size:255;not null"`
	Name         string       `gorm:"size:255;not null"`
	Gamification Gamification `gorm:"embedded;embeddedPrefix:gamification_"`
	CreatedAt    time.Time    `gorm:"not null"`
	UpdatedAt    time.Time    `gorm:"not null"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate is called before inserting a user record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// XPResult reports the outcome of an XP award
type XPResult struct {
	LeveledUp bool `json:"leveled_up"`
	NewLevel  int  `json:"new_level"`
	XP        int  `json:"xp"`
}

// AddXP adds points to the user's XP total and recomputes the level.
// Pure value mutation; persistence is the caller's responsibility.
func (u *User) AddXP(points int) XPResult {
	u.Gamification.XP += points

	newLevel := u.Gamification.XP/XPPerLevel + 1
	if newLevel > u.Gamification.Level {
		u.Gamification.Level = newLevel
		return XPResult{LeveledUp: true, NewLevel: newLevel, XP: u.Gamification.XP}
	}

	return XPResult{LeveledUp: false, NewLevel: u.Gamification.Level, XP: u.Gamification.XP}
}

// CheckIn updates the daily check-in streak. Consecutive-day check-ins extend
// the streak, a same-day check-in is a no-op, anything else resets to 1.
func (u *User) CheckIn(now time.Time) int {
	today := dayStart(now)

	if u.Gamification.LastCheckIn == nil {
		u.Gamification.Streak = 1
		u.Gamification.LastCheckIn = &now
		return u.Gamification.Streak
	}

	last := dayStart(u.Gamification.LastCheckIn.In(now.Location()))
	switch {
	case last.Equal(today):
		// already checked in today
	case last.Equal(today.AddDate(0, 0, -1)):
		u.Gamification.Streak++
		u.Gamification.LastCheckIn = &now
	default:
		u.Gamification.Streak = 1
		u.Gamification.LastCheckIn = &now
	}

	return u.Gamification.Streak
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
