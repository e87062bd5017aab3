package exercises

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/internal/domain/users"
	"github.com/patelajay005/Saathi/pkg/logger"
	"go.uber.org/zap"
)

var ErrInvalidLog = errors.New("invalid exercise log input")

// Rewarder awards XP for wellness actions. Failures are logged, never surfaced.
type Rewarder interface {
	Award(ctx context.Context, userID uuid.UUID, points int) error
}

// CompleteInput represents the input for logging a completed exercise
type CompleteInput struct {
	Duration   *int
	Rating     *int
	MoodBefore *int
	MoodAfter  *int
	Notes      string
}

type Service interface {
	ListExercises(ctx context.Context, category *Category) ([]Exercise, error)
	GetExercise(ctx context.Context, id uuid.UUID) (*Exercise, error)
	CompleteExercise(ctx context.Context, exerciseID, userID uuid.UUID, input CompleteInput) (*Log, error)
	GetLogs(ctx context.Context, userID uuid.UUID, limit int) ([]Log, error)
}

type service struct {
	repo     Repository
	rewarder Rewarder
	loc      *time.Location
	logger   *logger.Logger
}

func NewService(repo Repository, rewarder Rewarder, loc *time.Location, logger *logger.Logger) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:     repo,
		rewarder: rewarder,
		loc:      loc,
		logger:   logger,
	}
}

func (s *service) ListExercises(ctx context.Context, category *Category) ([]Exercise, error) {
	return s.repo.FindExercises(ctx, category)
}

func (s *service) GetExercise(ctx context.Context, id uuid.UUID) (*Exercise, error) {
	return s.repo.FindExerciseByID(ctx, id)
}

// CompleteExercise records a finished session and awards XP.
func (s *service) CompleteExercise(ctx context.Context, exerciseID, userID uuid.UUID, input CompleteInput) (*Log, error) {
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, ErrInvalidLog
	}

	exercise, err := s.repo.FindExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	duration := input.Duration
	if duration == nil {
		d := exercise.Duration
		duration = &d
	}

	log := &Log{
		ID:          uuid.New(),
		UserID:      userID,
		ExerciseID:  exercise.ID,
		CompletedAt: time.Now().In(s.loc),
		Duration:    duration,
		Rating:      input.Rating,
		MoodBefore:  input.MoodBefore,
		MoodAfter:   input.MoodAfter,
		Notes:       input.Notes,
	}
	if err := s.repo.CreateLog(ctx, log); err != nil {
		return nil, err
	}

	if s.rewarder != nil {
		if err := s.rewarder.Award(ctx, userID, users.XPExerciseCompleted); err != nil {
			s.logger.Error("failed to award exercise XP",
				zap.String("user_id", userID.String()), zap.Error(err))
		}
	}

	return log, nil
}

func (s *service) GetLogs(ctx context.Context, userID uuid.UUID, limit int) ([]Log, error) {
	return s.repo.FindLogs(ctx, userID, limit)
}
