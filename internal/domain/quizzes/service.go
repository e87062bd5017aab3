package quizzes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/internal/domain/users"
	"github.com/patelajay005/Saathi/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// History window for a user's past attempts
const historyLimit = 50

// Rewarder awards XP for wellness actions. Failures are logged, never surfaced.
type Rewarder interface {
	Award(ctx context.Context, userID uuid.UUID, points int) error
}

// SubmitOutcome is the stored attempt plus the XP it earned
type SubmitOutcome struct {
	Result   *QuizResult
	XPEarned int
}

type Service interface {
	ListQuizzes(ctx context.Context, category *Category) ([]Quiz, error)
	GetQuiz(ctx context.Context, id uuid.UUID) (*Quiz, error)
	Submit(ctx context.Context, quizID uuid.UUID, userID uuid.UUID, answers []Answer) (*SubmitOutcome, error)
	GetHistory(ctx context.Context, userID uuid.UUID) ([]QuizResult, error)
	GetResult(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*QuizResult, error)
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

func (s *service) ListQuizzes(ctx context.Context, category *Category) ([]Quiz, error) {
	return s.repo.FindQuizzes(ctx, category)
}

func (s *service) GetQuiz(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	return s.repo.FindQuizByID(ctx, id)
}

// Submit grades the answers, resolves the scoring-range result, stores
// the attempt and awards XP.
func (s *service) Submit(ctx context.Context, quizID uuid.UUID, userID uuid.UUID, answers []Answer) (*SubmitOutcome, error) {
	quiz, err := s.repo.FindQuizByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	questions, err := quiz.DecodeQuestions()
	if err != nil {
		return nil, fmt.Errorf("decode quiz questions: %w", err)
	}
	ranges, err := quiz.DecodeRanges()
	if err != nil {
		return nil, fmt.Errorf("decode quiz scoring ranges: %w", err)
	}

	scored, total := ScoreAnswers(questions, answers)
	result := ResolveResult(ranges, total)

	encoded, err := json.Marshal(scored)
	if err != nil {
		return nil, fmt.Errorf("encode scored answers: %w", err)
	}

	attempt := &QuizResult{
		ID:                    uuid.New(),
		UserID:                userID,
		QuizID:                quiz.ID,
		Answers:               datatypes.JSON(encoded),
		TotalScore:            total,
		ResultLabel:           result.Label,
		ResultDescription:     result.Description,
		ResultRecommendations: result.Recommendations,
		CompletedAt:           time.Now().In(s.loc),
	}
	if err := s.repo.CreateResult(ctx, attempt); err != nil {
		return nil, err
	}
	attempt.Quiz = *quiz

	if s.rewarder != nil {
		if err := s.rewarder.Award(ctx, userID, users.XPQuizCompleted); err != nil {
			s.logger.Error("failed to award quiz XP",
				zap.String("quiz_id", quiz.ID.String()), zap.Error(err))
		}
	}

	return &SubmitOutcome{Result: attempt, XPEarned: users.XPQuizCompleted}, nil
}

func (s *service) GetHistory(ctx context.Context, userID uuid.UUID) ([]QuizResult, error) {
	return s.repo.FindResults(ctx, userID, historyLimit)
}

func (s *service) GetResult(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*QuizResult, error) {
	return s.repo.FindResultByID(ctx, id, userID)
}
