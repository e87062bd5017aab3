package quizzes

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var (
	ErrQuizNotFound   = errors.New("quiz not found")
	ErrResultNotFound = errors.New("quiz result not found")
)

// Repository defines the interface for quiz persistence operations
type Repository interface {
	FindQuizzes(ctx context.Context, category *Category) ([]Quiz, error)
	FindQuizByID(ctx context.Context, id uuid.UUID) (*Quiz, error)
	CreateResult(ctx context.Context, result *QuizResult) error
	FindResults(ctx context.Context, userID uuid.UUID, limit int) ([]QuizResult, error)
	FindResultByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*QuizResult, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) FindQuizzes(ctx context.Context, category *Category) ([]Quiz, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	var quizzes []Quiz
	err := query.Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (r *repository) FindQuizByID(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	var quiz Quiz
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&quiz)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, result.Error
	}
	return &quiz, nil
}

func (r *repository) CreateResult(ctx context.Context, result *QuizResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

// FindResults returns the user's attempts, newest first, with the quiz
// loaded.
func (r *repository) FindResults(ctx context.Context, userID uuid.UUID, limit int) ([]QuizResult, error) {
	query := r.db.WithContext(ctx).
		Preload("Quiz").
		Where("user_id = ?", userID).
		Order("completed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var results []QuizResult
	err := query.Find(&results).Error
	return results, err
}

func (r *repository) FindResultByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*QuizResult, error) {
	var quizResult QuizResult
	result := r.db.WithContext(ctx).
		Preload("Quiz").
		Where("id = ? AND user_id = ?", id, userID).
		First(&quizResult)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, result.Error
	}
	return &quizResult, nil
}
