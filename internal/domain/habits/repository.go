package habits

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	// ErrCompletionExists signals that another request recorded today's
	// completion first; callers fold this into the idempotent outcome.
	ErrCompletionExists = errors.New("completion already recorded for this day")
)

// HabitFilter defines the filtering options for habits
type HabitFilter struct {
	UserID   uuid.UUID
	IsActive *bool
}

// Repository defines the interface for habit persistence operations
type Repository interface {
	Create(ctx context.Context, habit *Habit) error
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Habit, error)
	FindAll(ctx context.Context, filter HabitFilter) ([]Habit, error)
	FindActiveWithCompletionsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]Habit, error)
	Update(ctx context.Context, habit *Habit) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	RecordCompletion(ctx context.Context, habit *Habit, entry *Completion) error
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, habit *Habit) error {
	return r.db.WithContext(ctx).Create(habit).Error
}

// FindByID loads a habit owned by userID with its completion history in
// logging order.
func (r *repository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Habit, error) {
	var habit Habit
	result := r.db.WithContext(ctx).
		Preload("Completions", func(db *gorm.DB) *gorm.DB {
			return db.Order("habit_completions.created_at ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&habit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, result.Error
	}
	return &habit, nil
}

func (r *repository) FindAll(ctx context.Context, filter HabitFilter) ([]Habit, error) {
	query := r.db.WithContext(ctx).
		Preload("Completions", func(db *gorm.DB) *gorm.DB {
			return db.Order("habit_completions.created_at ASC")
		}).
		Where("user_id = ?", filter.UserID)
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var habits []Habit
	err := query.Order("created_at DESC").Find(&habits).Error
	return habits, err
}

// FindActiveWithCompletionsBetween loads active habits with only the
// completions falling inside [start, end] preloaded. Used by the daily score
// aggregation, which only cares about one day's completions.
func (r *repository) FindActiveWithCompletionsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]Habit, error) {
	var habits []Habit
	err := r.db.WithContext(ctx).
		Preload("Completions", "date BETWEEN ? AND ?", start, end).
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&habits).Error
	return habits, err
}

func (r *repository) Update(ctx context.Context, habit *Habit) error {
	result := r.db.WithContext(ctx).Omit("Completions").Save(habit)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHabitNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Habit{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHabitNotFound
	}
	return nil
}

// RecordCompletion persists the appended completion entry and the habit's
// updated counters in one transaction. The unique index on (habit_id, day)
// serializes concurrent same-day completions: the loser gets
// ErrCompletionExists and no mutation is visible.
func (r *repository) RecordCompletion(ctx context.Context, habit *Habit, entry *Completion) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		result := tx.Model(&Habit{}).
			Where("id = ? AND user_id = ?", habit.ID, habit.UserID).
			Updates(map[string]interface{}{
				"current_streak":    habit.CurrentStreak,
				"best_streak":       habit.BestStreak,
				"total_completions": habit.TotalCompletions,
				"updated_at":        time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrHabitNotFound
		}
		return nil
	})
	if err != nil {
		if isDuplicateDay(err) {
			return ErrCompletionExists
		}
		return err
	}
	return nil
}

// isDuplicateDay reports whether err is the (habit_id, day) unique-index
// violation. The connection is configured with TranslateError, so driver
// duplicate-key errors arrive as gorm.ErrDuplicatedKey.
func isDuplicateDay(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
