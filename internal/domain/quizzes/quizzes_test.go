package quizzes

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/patelajay005/Saathi/internal/domain/users"
	"github.com/patelajay005/Saathi/pkg/logger"
)

func sampleQuestions() []Question {
	return []Question{
		{
			ID:   "q1",
			Text: "How often do you feel overwhelmed?",
			Type: TypeMultipleChoice,
			Options: []Option{
				{Text: "Never", Score: 0},
				{Text: "Sometimes", Score: 1},
				{Text: "Often", Score: 2},
			},
			Order: 1,
		},
		{ID: "q2", Text: "Rate your sleep quality", Type: TypeScale, ScaleMin: 0, ScaleMax: 5, Order: 2},
		{ID: "q3", Text: "Did you exercise today?", Type: TypeYesNo, Order: 3},
		{ID: "q4", Text: "Anything on your mind?", Type: TypeText, Order: 4},
	}
}

func TestScoreAnswers(t *testing.T) {
	questions := sampleQuestions()

	tests := []struct {
		name          string
		answers       []Answer
		expectedTotal float64
	}{
		{
			name: "one of each type",
			answers: []Answer{
				{QuestionID: "q1", Value: "Often"},
				{QuestionID: "q2", Value: "3"},
				{QuestionID: "q3", Value: "yes"},
				{QuestionID: "q4", Value: "feeling fine"},
			},
			expectedTotal: 6,
		},
		{
			name: "unmatched option scores zero",
			answers: []Answer{
				{QuestionID: "q1", Value: "Always"},
			},
			expectedTotal: 0,
		},
		{
			name: "no answer is no yes",
			answers: []Answer{
				{QuestionID: "q3", Value: "no"},
			},
			expectedTotal: 0,
		},
		{
			name: "non-numeric scale scores zero",
			answers: []Answer{
				{QuestionID: "q2", Value: "great"},
			},
			expectedTotal: 0,
		},
		{
			name: "unknown question recorded with zero score",
			answers: []Answer{
				{QuestionID: "missing", Value: "yes"},
				{QuestionID: "q3", Value: "yes"},
			},
			expectedTotal: 1,
		},
		{
			name:          "empty submission",
			answers:       nil,
			expectedTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored, total := ScoreAnswers(questions, tt.answers)
			assert.Equal(t, tt.expectedTotal, total)
			assert.Len(t, scored, len(tt.answers))
		})
	}
}

func TestResolveResult(t *testing.T) {
	ranges := []ScoringRange{
		{Min: 0, Max: 3, Label: "Low", Description: "low", Recommendations: []string{"keep going"}},
		{Min: 4, Max: 8, Label: "Moderate", Description: "moderate"},
	}

	assert.Equal(t, "Low", ResolveResult(ranges, 0).Label)
	assert.Equal(t, "Low", ResolveResult(ranges, 3).Label)
	assert.Equal(t, "Moderate", ResolveResult(ranges, 4).Label)

	// Totals outside every range fall back to a neutral result.
	fallback := ResolveResult(ranges, 9)
	assert.Equal(t, "Results", fallback.Label)
	assert.NotNil(t, fallback.Recommendations)

	assert.Equal(t, "Results", ResolveResult(nil, 5).Label)
}

type stubRepo struct {
	quiz    *Quiz
	created *QuizResult
}

func (r *stubRepo) FindQuizzes(ctx context.Context, category *Category) ([]Quiz, error) {
	return nil, nil
}

func (r *stubRepo) FindQuizByID(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	if r.quiz == nil {
		return nil, ErrQuizNotFound
	}
	return r.quiz, nil
}

func (r *stubRepo) CreateResult(ctx context.Context, result *QuizResult) error {
	r.created = result
	return nil
}

func (r *stubRepo) FindResults(ctx context.Context, userID uuid.UUID, limit int) ([]QuizResult, error) {
	return nil, nil
}

func (r *stubRepo) FindResultByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*QuizResult, error) {
	return nil, ErrResultNotFound
}

type recordingRewarder struct {
	userID uuid.UUID
	points int
	calls  int
}

func (r *recordingRewarder) Award(ctx context.Context, userID uuid.UUID, points int) error {
	r.calls++
	r.userID = userID
	r.points = points
	return nil
}

func encodeJSON(t *testing.T, v interface{}) datatypes.JSON {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return datatypes.JSON(b)
}

func TestSubmitGradesStoresAndAwardsXP(t *testing.T) {
	userID := uuid.New()
	quiz := &Quiz{
		ID:        uuid.New(),
		Title:     "Stress check",
		Category:  CategoryStress,
		Questions: encodeJSON(t, sampleQuestions()),
		ScoringRanges: encodeJSON(t, []ScoringRange{
			{Min: 0, Max: 4, Label: "Low", Description: "low"},
			{Min: 5, Max: 10, Label: "High", Description: "high", Recommendations: []string{"breathe"}},
		}),
		IsActive: true,
	}

	repo := &stubRepo{quiz: quiz}
	rewarder := &recordingRewarder{}
	svc := NewService(repo, rewarder, time.UTC, logger.NewLoggerWithLevel("error"))

	outcome, err := svc.Submit(context.Background(), quiz.ID, userID, []Answer{
		{QuestionID: "q1", Value: "Often"},
		{QuestionID: "q2", Value: "4"},
		{QuestionID: "q3", Value: "no"},
	})
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Equal(t, userID, repo.created.UserID)
	assert.Equal(t, quiz.ID, repo.created.QuizID)
	assert.Equal(t, 6.0, repo.created.TotalScore)
	assert.Equal(t, "High", repo.created.ResultLabel)
	assert.Equal(t, []string{"breathe"}, []string(repo.created.ResultRecommendations))

	var scored []ScoredAnswer
	require.NoError(t, json.Unmarshal(repo.created.Answers, &scored))
	require.Len(t, scored, 3)
	assert.Equal(t, 2.0, scored[0].Score)
	assert.Equal(t, 4.0, scored[1].Score)
	assert.Equal(t, 0.0, scored[2].Score)

	assert.Equal(t, users.XPQuizCompleted, outcome.XPEarned)
	assert.Equal(t, 1, rewarder.calls)
	assert.Equal(t, userID, rewarder.userID)
	assert.Equal(t, users.XPQuizCompleted, rewarder.points)
}

func TestSubmitUnknownQuiz(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nil, time.UTC, logger.NewLoggerWithLevel("error"))

	_, err := svc.Submit(context.Background(), uuid.New(), uuid.New(), nil)
	assert.ErrorIs(t, err, ErrQuizNotFound)
	assert.Nil(t, repo.created)
}
