package moods

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var ErrMoodNotFound = errors.New("mood entry not found")

// MoodFilter defines the filtering options for mood queries
type MoodFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// Repository defines the interface for mood persistence operations
type Repository interface {
	Create(ctx context.Context, mood *Mood) error
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Mood, error)
	FindAll(ctx context.Context, filter MoodFilter) ([]Mood, error)
	FindRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]Mood, error)
	Update(ctx context.Context, mood *Mood) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, mood *Mood) error {
	return r.db.WithContext(ctx).Create(mood).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Mood, error) {
	var mood Mood
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&mood)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMoodNotFound
		}
		return nil, result.Error
	}
	return &mood, nil
}

func (r *repository) FindAll(ctx context.Context, filter MoodFilter) ([]Mood, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 30
	}

	var moods []Mood
	err := query.Order("date DESC").Limit(limit).Find(&moods).Error
	return moods, err
}

// FindRange returns all mood entries for a user within [start, end], oldest first.
func (r *repository) FindRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]Mood, error) {
	var moods []Mood
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC").
		Find(&moods).Error
	return moods, err
}

func (r *repository) Update(ctx context.Context, mood *Mood) error {
	result := r.db.WithContext(ctx).Save(mood)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMoodNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Mood{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMoodNotFound
	}
	return nil
}
