package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Type identifies the kind of notification
type Type string

const (
	StreakMilestone Type = "streak_milestone"
	HabitReminder   Type = "habit_reminder"
	DailyScoreReady Type = "daily_score_ready"
	LevelUp         Type = "level_up"
)

// Notification is a stored in-app notification for a user
type Notification struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_notifications_user,priority:1"`
	Type      Type           `gorm:"size:64;not null"`
	Title     string         `gorm:"size:255;not null"`
	Content   string         `gorm:"type:text"`
	Metadata  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	IsRead    bool           `gorm:"not null;default:false;index:idx_notifications_user,priority:2"`
	CreatedAt time.Time      `gorm:"not null"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}

// BeforeCreate is called before inserting a notification record
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	return nil
}
