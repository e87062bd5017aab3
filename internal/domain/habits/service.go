package habits

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/internal/domain/users"
	"github.com/patelajay005/Saathi/pkg/logger"
	"go.uber.org/zap"
)

var ErrInvalidInput = errors.New("invalid habit input")

// Lookback window for completion-rate statistics
const statsWindowDays = 30

// Rewarder awards XP for wellness actions. Failures are logged, never surfaced.
type Rewarder interface {
	Award(ctx context.Context, userID uuid.UUID, points int) error
}

// CreateHabitInput represents the input for creating a new habit
type CreateHabitInput struct {
	Name         string
	Description  string
	Category     Category
	Frequency    Frequency
	TargetDays   []int64
	ReminderTime string
	Color        string
	Icon         string
}

// UpdateHabitInput represents the input for updating a habit
type UpdateHabitInput struct {
	Name         *string
	Description  *string
	Category     *Category
	Frequency    *Frequency
	TargetDays   []int64
	ReminderTime *string
	Color        *string
	Icon         *string
	IsActive     *bool
}

// CompletionOutcome is the result of a completion request
type CompletionOutcome struct {
	AlreadyCompleted bool
	Streak           int
	BestStreak       int
	TotalCompletions int
	XPEarned         int
}

// Stats summarizes a habit's history
type Stats struct {
	CurrentStreak     int `json:"current_streak"`
	BestStreak        int `json:"best_streak"`
	TotalCompletions  int `json:"total_completions"`
	CompletionRate    int `json:"completion_rate"`
	RecentCompletions int `json:"recent_completions"`
	CreatedDaysAgo    int `json:"created_days_ago"`
}

type Service interface {
	CreateHabit(ctx context.Context, userID uuid.UUID, input CreateHabitInput) (*Habit, error)
	GetHabit(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Habit, error)
	ListHabits(ctx context.Context, userID uuid.UUID, isActive *bool) ([]Habit, error)
	UpdateHabit(ctx context.Context, id uuid.UUID, userID uuid.UUID, input UpdateHabitInput) (*Habit, error)
	DeleteHabit(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	RecordCompletion(ctx context.Context, id uuid.UUID, userID uuid.UUID, notes string) (*CompletionOutcome, error)
	GetStats(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Stats, error)
}

type service struct {
	repo      Repository
	notifySvc *NotificationService
	rewarder  Rewarder
	loc       *time.Location
	logger    *logger.Logger
}

func NewService(repo Repository, notifySvc *NotificationService, rewarder Rewarder, loc *time.Location, logger *logger.Logger) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:      repo,
		notifySvc: notifySvc,
		rewarder:  rewarder,
		loc:       loc,
		logger:    logger,
	}
}

func (s *service) CreateHabit(ctx context.Context, userID uuid.UUID, input CreateHabitInput) (*Habit, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput
	}

	category := input.Category
	if category == "" {
		category = CategoryOther
	}
	frequency := input.Frequency
	if frequency == "" {
		frequency = FrequencyDaily
	}
	if !category.Valid() || !frequency.Valid() {
		return nil, ErrInvalidInput
	}
	for _, d := range input.TargetDays {
		if d < 0 || d > 6 {
			return nil, ErrInvalidInput
		}
	}

	color := input.Color
	if color == "" {
		color = "#6366f1"
	}
	icon := input.Icon
	if icon == "" {
		icon = "⭐"
	}

	habit := &Habit{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Category:     category,
		Frequency:    frequency,
		TargetDays:   input.TargetDays,
		ReminderTime: input.ReminderTime,
		Color:        color,
		Icon:         icon,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *service) GetHabit(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Habit, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *service) ListHabits(ctx context.Context, userID uuid.UUID, isActive *bool) ([]Habit, error) {
	return s.repo.FindAll(ctx, HabitFilter{UserID: userID, IsActive: isActive})
}

func (s *service) UpdateHabit(ctx context.Context, id uuid.UUID, userID uuid.UUID, input UpdateHabitInput) (*Habit, error) {
	habit, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrInvalidInput
		}
		habit.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		habit.Description = *input.Description
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, ErrInvalidInput
		}
		habit.Category = *input.Category
	}
	if input.Frequency != nil {
		if !input.Frequency.Valid() {
			return nil, ErrInvalidInput
		}
		habit.Frequency = *input.Frequency
	}
	if input.TargetDays != nil {
		for _, d := range input.TargetDays {
			if d < 0 || d > 6 {
				return nil, ErrInvalidInput
			}
		}
		habit.TargetDays = input.TargetDays
	}
	if input.ReminderTime != nil {
		habit.ReminderTime = *input.ReminderTime
	}
	if input.Color != nil {
		habit.Color = *input.Color
	}
	if input.Icon != nil {
		habit.Icon = *input.Icon
	}
	if input.IsActive != nil {
		habit.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *service) DeleteHabit(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}

// RecordCompletion marks the habit complete for today. The streak transition
// runs on the loaded value; the repository persists the append and the
// counter updates atomically. A lost same-day race is folded into the
// idempotent already-completed outcome.
func (s *service) RecordCompletion(ctx context.Context, id uuid.UUID, userID uuid.UUID, notes string) (*CompletionOutcome, error) {
	habit, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(s.loc)
	result := habit.MarkComplete(now, notes)
	if result.AlreadyCompleted {
		return s.alreadyCompletedOutcome(habit), nil
	}

	entry := &habit.Completions[len(habit.Completions)-1]
	if err := s.repo.RecordCompletion(ctx, habit, entry); err != nil {
		if errors.Is(err, ErrCompletionExists) {
			// Another request won the same-day race; reload for fresh counters
			fresh, ferr := s.repo.FindByID(ctx, id, userID)
			if ferr != nil {
				return nil, ferr
			}
			return s.alreadyCompletedOutcome(fresh), nil
		}
		return nil, err
	}

	outcome := &CompletionOutcome{
		Streak:           habit.CurrentStreak,
		BestStreak:       habit.BestStreak,
		TotalCompletions: habit.TotalCompletions,
		XPEarned:         users.XPHabitCompletion,
	}

	if s.rewarder != nil {
		if err := s.rewarder.Award(ctx, userID, outcome.XPEarned); err != nil {
			s.logger.Error("failed to award completion XP",
				zap.String("habit_id", habit.ID.String()), zap.Error(err))
		}
	}

	// Streak milestones every 7 days; delivery is best effort
	if s.notifySvc != nil && s.notifySvc.ShouldSendStreakNotification(habit.CurrentStreak) {
		if err := s.notifySvc.NotifyStreakMilestone(ctx, userID, habit); err != nil {
			s.logger.Error("failed to send streak notification",
				zap.String("habit_id", habit.ID.String()), zap.Error(err))
		}
	}

	return outcome, nil
}

func (s *service) alreadyCompletedOutcome(habit *Habit) *CompletionOutcome {
	return &CompletionOutcome{
		AlreadyCompleted: true,
		Streak:           habit.CurrentStreak,
		BestStreak:       habit.BestStreak,
		TotalCompletions: habit.TotalCompletions,
	}
}

func (s *service) GetStats(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Stats, error) {
	habit, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(s.loc)
	return &Stats{
		CurrentStreak:     habit.CurrentStreak,
		BestStreak:        habit.BestStreak,
		TotalCompletions:  habit.TotalCompletions,
		CompletionRate:    habit.CompletionRate(now, statsWindowDays),
		RecentCompletions: habit.RecentCompletions(now, statsWindowDays),
		CreatedDaysAgo:    int(now.Sub(habit.CreatedAt).Hours() / 24),
	}, nil
}
