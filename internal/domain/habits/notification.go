package habits

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/internal/domain/notification"
)

// NotificationService handles notifications for habits
type NotificationService struct {
	notifications notification.Service
}

// NewNotificationService creates a new habit notification service
func NewNotificationService(notifications notification.Service) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// ShouldSendStreakNotification reports whether the streak crossed a
// 7-day milestone.
func (s *NotificationService) ShouldSendStreakNotification(streak int) bool {
	return streak > 0 && streak%7 == 0
}

// NotifyStreakMilestone sends a notification for a streak milestone
func (s *NotificationService) NotifyStreakMilestone(ctx context.Context, userID uuid.UUID, habit *Habit) error {
	title := "Streak Milestone"
	content := fmt.Sprintf("Amazing! You've kept up \"%s\" for %d days in a row! 🔥", habit.Name, habit.CurrentStreak)
	data := map[string]string{
		"habit_id": habit.ID.String(),
		"name":     habit.Name,
		"streak":   fmt.Sprintf("%d", habit.CurrentStreak),
	}

	return s.notifications.CreateForUser(ctx, userID, notification.StreakMilestone, title, content, data)
}

// NotifyHabitReminder sends a reminder for a habit not yet completed today
func (s *NotificationService) NotifyHabitReminder(ctx context.Context, userID uuid.UUID, habit *Habit) error {
	title := "Habit Reminder"
	content := fmt.Sprintf("Don't forget your habit today: %s", habit.Name)
	data := map[string]string{
		"habit_id": habit.ID.String(),
		"name":     habit.Name,
	}

	return s.notifications.CreateForUser(ctx, userID, notification.HabitReminder, title, content, data)
}
