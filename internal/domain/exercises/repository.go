package exercises

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// Repository defines the interface for exercise persistence operations
type Repository interface {
	CreateExercise(ctx context.Context, exercise *Exercise) error
	FindExerciseByID(ctx context.Context, id uuid.UUID) (*Exercise, error)
	FindExercises(ctx context.Context, category *Category) ([]Exercise, error)
	CreateLog(ctx context.Context, log *Log) error
	FindLogs(ctx context.Context, userID uuid.UUID, limit int) ([]Log, error)
	FindLogsRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]Log, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) CreateExercise(ctx context.Context, exercise *Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *repository) FindExerciseByID(ctx context.Context, id uuid.UUID) (*Exercise, error) {
	var exercise Exercise
	result := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&exercise)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, result.Error
	}
	return &exercise, nil
}

func (r *repository) FindExercises(ctx context.Context, category *Category) ([]Exercise, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	var list []Exercise
	err := query.Order("title ASC").Find(&list).Error
	return list, err
}

func (r *repository) CreateLog(ctx context.Context, log *Log) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *repository) FindLogs(ctx context.Context, userID uuid.UUID, limit int) ([]Log, error) {
	if limit <= 0 {
		limit = 30
	}

	var logs []Log
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// FindLogsRange returns logs completed within [start, end], oldest first.
func (r *repository) FindLogsRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]Log, error) {
	var logs []Log
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed_at BETWEEN ? AND ?", userID, start, end).
		Order("completed_at ASC").
		Find(&logs).Error
	return logs, err
}
