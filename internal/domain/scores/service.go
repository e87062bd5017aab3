package scores

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/patelajay005/Saathi/internal/domain/exercises"
	"github.com/patelajay005/Saathi/internal/domain/habits"
	"github.com/patelajay005/Saathi/internal/domain/moods"
	"github.com/patelajay005/Saathi/pkg/logger"
)

const defaultStatsPeriodDays = 30

// Stats aggregates a user's score history over a period.
type Stats struct {
	AverageScore      float64            `json:"averageScore"`
	TotalDays         int                `json:"totalDays"`
	Trend             string             `json:"trend"`
	BestDay           *BestDay           `json:"bestDay"`
	ComponentAverages map[string]float64 `json:"componentAverages"`
	PeriodDays        int                `json:"period"`
}

type BestDay struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

type Service interface {
	ComputeDailyScore(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyScore, error)
	GetOrCompute(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyScore, error)
	History(ctx context.Context, userID uuid.UUID, start, end *time.Time, limit int) ([]DailyScore, error)
	GetStats(ctx context.Context, userID uuid.UUID, periodDays int) (*Stats, error)
}

type service struct {
	repo      Repository
	habits    habits.Repository
	moods     moods.Repository
	exercises exercises.Repository
	loc       *time.Location
	logger    *logger.Logger
}

func NewService(repo Repository, habitRepo habits.Repository, moodRepo moods.Repository, exerciseRepo exercises.Repository, loc *time.Location, logger *logger.Logger) Service {
	return &service{
		repo:      repo,
		habits:    habitRepo,
		moods:     moodRepo,
		exercises: exerciseRepo,
		loc:       loc,
		logger:    logger,
	}
}

// ComputeDailyScore recalculates the score for the given day from the
// user's current activity and stores it, replacing any earlier snapshot
// for the same day.
func (s *service) ComputeDailyScore(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyScore, error) {
	day := habits.DayStart(date.In(s.loc))
	start := day
	end := day.Add(24*time.Hour - time.Millisecond)

	var (
		dayMoods     []moods.Mood
		activeHabits []habits.Habit
		exerciseLogs []exercises.Log
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dayMoods, err = s.moods.FindRange(gctx, userID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		activeHabits, err = s.habits.FindActiveWithCompletionsBetween(gctx, userID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		exerciseLogs, err = s.exercises.FindLogsRange(gctx, userID, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	moodScores := make([]int, 0, len(dayMoods))
	for _, m := range dayMoods {
		moodScores = append(moodScores, m.Score)
	}

	completed := 0
	for _, h := range activeHabits {
		if len(h.Completions) > 0 {
			completed++
		}
	}

	minutes := 0
	for _, l := range exerciseLogs {
		minutes += l.Minutes()
	}

	score := Calculate(userID, day, ScoreInput{
		MoodScores:         moodScores,
		TotalHabits:        len(activeHabits),
		HabitsCompleted:    completed,
		ExercisesCompleted: len(exerciseLogs),
		ExerciseMinutes:    minutes,
	})

	if err := s.repo.Upsert(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

// GetOrCompute returns the stored score for the day, computing it on
// first access.
func (s *service) GetOrCompute(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyScore, error) {
	day := habits.DayStart(date.In(s.loc))

	score, err := s.repo.FindByUserAndDate(ctx, userID, day)
	if err == nil {
		return score, nil
	}
	if !errors.Is(err, ErrScoreNotFound) {
		return nil, err
	}
	return s.ComputeDailyScore(ctx, userID, date)
}

func (s *service) History(ctx context.Context, userID uuid.UUID, start, end *time.Time, limit int) ([]DailyScore, error) {
	return s.repo.History(ctx, HistoryFilter{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Limit:     limit,
	})
}

// GetStats summarises the last periodDays of stored scores. Days without
// a stored score are simply absent from the aggregate.
func (s *service) GetStats(ctx context.Context, userID uuid.UUID, periodDays int) (*Stats, error) {
	if periodDays <= 0 {
		periodDays = defaultStatsPeriodDays
	}

	start := habits.DayStart(time.Now().In(s.loc)).AddDate(0, 0, -periodDays)
	scores, err := s.repo.FindSince(ctx, userID, start)
	if err != nil {
		return nil, err
	}

	if len(scores) == 0 {
		return &Stats{
			Trend:             moods.TrendStable,
			ComponentAverages: map[string]float64{},
			PeriodDays:        periodDays,
		}, nil
	}

	var total, moodSum, habitSum, exerciseSum float64
	best := scores[0]
	for _, sc := range scores {
		total += sc.OverallScore
		moodSum += sc.Components.MoodScore
		habitSum += sc.Components.HabitScore
		exerciseSum += sc.Components.ExerciseScore
		if sc.OverallScore > best.OverallScore {
			best = sc
		}
	}
	n := float64(len(scores))

	return &Stats{
		AverageScore: round1(total / n),
		TotalDays:    len(scores),
		Trend:        overallTrend(scores),
		BestDay:      &BestDay{Date: best.Date, Score: best.OverallScore},
		ComponentAverages: map[string]float64{
			"moodScore":     round1(moodSum / n),
			"habitScore":    round1(habitSum / n),
			"exerciseScore": round1(exerciseSum / n),
		},
		PeriodDays: periodDays,
	}, nil
}

// overallTrend compares the older half of the period against the newer
// half; a shift of more than half a point either way breaks "stable".
func overallTrend(scores []DailyScore) string {
	mid := len(scores) / 2
	first, second := scores[:mid], scores[mid:]
	if len(first) == 0 || len(second) == 0 {
		return moods.TrendStable
	}

	var firstSum, secondSum float64
	for _, s := range first {
		firstSum += s.OverallScore
	}
	for _, s := range second {
		secondSum += s.OverallScore
	}

	diff := secondSum/float64(len(second)) - firstSum/float64(len(first))
	switch {
	case diff > 0.5:
		return moods.TrendImproving
	case diff < -0.5:
		return moods.TrendDeclining
	default:
		return moods.TrendStable
	}
}
