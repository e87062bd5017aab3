package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/patelajay005/Saathi/internal/domain/habits"
	"github.com/patelajay005/Saathi/internal/domain/scores"
	"github.com/patelajay005/Saathi/internal/domain/users"
	"github.com/patelajay005/Saathi/pkg/logger"
)

// Hours at which pending habit reminders go out.
var reminderHours = []int{8, 12, 18, 21}

// Scheduler drives the recurring wellness jobs: finalizing yesterday's
// scores shortly after midnight and nudging users about habits still
// pending during the day.
type Scheduler struct {
	userService  users.Service
	habitService habits.Service
	scoreService scores.Service
	habitNotify  *habits.NotificationService
	loc          *time.Location
	logger       *logger.Logger
	stop         chan struct{}
}

func NewScheduler(userService users.Service, habitService habits.Service, scoreService scores.Service, habitNotify *habits.NotificationService, loc *time.Location, logger *logger.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		userService:  userService,
		habitService: habitService,
		scoreService: scoreService,
		habitNotify:  habitNotify,
		loc:          loc,
		logger:       logger,
		stop:         make(chan struct{}),
	}
}

// Start launches the background loops. It returns immediately.
func (s *Scheduler) Start() {
	now := time.Now().In(s.loc)
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, s.loc)

	s.logger.Info("Scheduler initialized",
		zap.Time("current_time", now),
		zap.Time("next_score_run", nextMidnight),
	)

	go s.runNightlyScores(nextMidnight.Sub(now))
	go s.runHabitReminders()
}

// Stop terminates the background loops.
func (s *Scheduler) Stop() {
	close(s.stop)
}

func (s *Scheduler) runNightlyScores(untilFirst time.Duration) {
	timer := time.NewTimer(untilFirst)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			// Finalize the day that just ended
			s.recomputeAllScores(time.Now().In(s.loc).AddDate(0, 0, -1))
			timer.Reset(24 * time.Hour)
		case <-s.stop:
			return
		}
	}
}

// recomputeAllScores persists a score snapshot for every user for the
// given day. A failure for one user never blocks the rest.
func (s *Scheduler) recomputeAllScores(day time.Time) {
	ctx := context.Background()
	start := time.Now()

	ids, err := s.userService.ListUserIDs(ctx)
	if err != nil {
		s.logger.Error("Failed to list users for score run", zap.Error(err))
		return
	}

	failures := 0
	for _, id := range ids {
		if _, err := s.scoreService.ComputeDailyScore(ctx, id, day); err != nil {
			failures++
			s.logger.Error("Failed to compute daily score",
				zap.String("user_id", id.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("Nightly score run completed",
		zap.Int("users", len(ids)),
		zap.Int("failures", failures),
		zap.Duration("duration", time.Since(start)))
}

func (s *Scheduler) runHabitReminders() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			hour := time.Now().In(s.loc).Hour()
			for _, reminderHour := range reminderHours {
				if hour == reminderHour {
					s.sendHabitReminders()
					break
				}
			}
		case <-s.stop:
			return
		}
	}
}

// sendHabitReminders nudges each user about active habits still pending
// today. Delivery is best effort.
func (s *Scheduler) sendHabitReminders() {
	ctx := context.Background()
	now := time.Now().In(s.loc)

	ids, err := s.userService.ListUserIDs(ctx)
	if err != nil {
		s.logger.Error("Failed to list users for habit reminders", zap.Error(err))
		return
	}

	active := true
	sent := 0
	for _, userID := range ids {
		userHabits, err := s.habitService.ListHabits(ctx, userID, &active)
		if err != nil {
			s.logger.Error("Failed to list habits for reminders",
				zap.String("user_id", userID.String()),
				zap.Error(err))
			continue
		}

		for i := range userHabits {
			habit := &userHabits[i]
			if habit.CompletedOn(now) {
				continue
			}
			if err := s.habitNotify.NotifyHabitReminder(ctx, userID, habit); err != nil {
				s.logger.Error("Failed to send habit reminder",
					zap.String("habit_id", habit.ID.String()),
					zap.Error(err))
				continue
			}
			sent++
		}
	}

	s.logger.Info("Habit reminder run completed",
		zap.Int("users", len(ids)),
		zap.Int("reminders_sent", sent))
}
