package moods

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/internal/domain/users"
	"github.com/patelajay005/Saathi/pkg/logger"
	"go.uber.org/zap"
)

var ErrInvalidMood = errors.New("mood entry requires a score between 1 and 10 and a known emotion")

// Rewarder awards XP for wellness actions. Failures are logged, never surfaced.
type Rewarder interface {
	Award(ctx context.Context, userID uuid.UUID, points int) error
}

// LogMoodInput represents the input for logging a mood entry
type LogMoodInput struct {
	Score      int
	Emotion    Emotion
	Notes      string
	Triggers   []string
	Activities []string
	TimeOfDay  string
	SleepHours float64
}

// UpdateMoodInput represents the input for editing a mood entry
type UpdateMoodInput struct {
	Score      *int
	Emotion    *Emotion
	Notes      *string
	Triggers   []string
	Activities []string
}

// Stats summarizes mood entries over a lookback period
type Stats struct {
	AverageScore     float64        `json:"average_score"`
	TotalEntries     int            `json:"total_entries"`
	EmotionBreakdown map[string]int `json:"emotion_breakdown"`
	Trend            string         `json:"trend"`
	PeriodDays       int            `json:"period_days"`
}

type Service interface {
	LogMood(ctx context.Context, userID uuid.UUID, input LogMoodInput) (*Mood, error)
	GetHistory(ctx context.Context, filter MoodFilter) ([]Mood, error)
	GetToday(ctx context.Context, userID uuid.UUID) ([]Mood, error)
	GetStats(ctx context.Context, userID uuid.UUID, periodDays int) (*Stats, error)
	UpdateMood(ctx context.Context, id uuid.UUID, userID uuid.UUID, input UpdateMoodInput) (*Mood, error)
	DeleteMood(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
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

// LogMood validates and stores a mood entry. Validation failures reject the
// entry before any mutation.
func (s *service) LogMood(ctx context.Context, userID uuid.UUID, input LogMoodInput) (*Mood, error) {
	if input.Score < 1 || input.Score > 10 || !input.Emotion.Valid() {
		return nil, ErrInvalidMood
	}

	mood := &Mood{
		ID:         uuid.New(),
		UserID:     userID,
		Score:      input.Score,
		Emotion:    input.Emotion,
		Notes:      input.Notes,
		Triggers:   input.Triggers,
		Activities: input.Activities,
		TimeOfDay:  input.TimeOfDay,
		SleepHours: input.SleepHours,
		Date:       time.Now().In(s.loc),
	}
	if err := s.repo.Create(ctx, mood); err != nil {
		return nil, err
	}

	if s.rewarder != nil {
		if err := s.rewarder.Award(ctx, userID, users.XPMoodLog); err != nil {
			s.logger.Error("failed to award mood XP",
				zap.String("user_id", userID.String()), zap.Error(err))
		}
	}

	return mood, nil
}

func (s *service) GetHistory(ctx context.Context, filter MoodFilter) ([]Mood, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) GetToday(ctx context.Context, userID uuid.UUID) ([]Mood, error) {
	now := time.Now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return s.repo.FindRange(ctx, userID, start, end)
}

func (s *service) GetStats(ctx context.Context, userID uuid.UUID, periodDays int) (*Stats, error) {
	if periodDays <= 0 {
		periodDays = 7
	}

	now := time.Now().In(s.loc)
	start := now.AddDate(0, 0, -periodDays)

	entries, err := s.repo.FindRange(ctx, userID, start, now)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalEntries:     len(entries),
		EmotionBreakdown: make(map[string]int),
		Trend:            TrendStable,
		PeriodDays:       periodDays,
	}
	if len(entries) == 0 {
		return stats, nil
	}

	scores := make([]int, len(entries))
	sum := 0
	for i, m := range entries {
		scores[i] = m.Score
		sum += m.Score
		stats.EmotionBreakdown[string(m.Emotion)]++
	}

	stats.AverageScore = math.Round(float64(sum)/float64(len(entries))*10) / 10
	stats.Trend = ScoreTrend(scores)
	return stats, nil
}

func (s *service) UpdateMood(ctx context.Context, id uuid.UUID, userID uuid.UUID, input UpdateMoodInput) (*Mood, error) {
	mood, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Score != nil {
		if *input.Score < 1 || *input.Score > 10 {
			return nil, ErrInvalidMood
		}
		mood.Score = *input.Score
	}
	if input.Emotion != nil {
		if !input.Emotion.Valid() {
			return nil, ErrInvalidMood
		}
		mood.Emotion = *input.Emotion
	}
	if input.Notes != nil {
		mood.Notes = *input.Notes
	}
	if input.Triggers != nil {
		mood.Triggers = input.Triggers
	}
	if input.Activities != nil {
		mood.Activities = input.Activities
	}

	if err := s.repo.Update(ctx, mood); err != nil {
		return nil, err
	}
	return mood, nil
}

func (s *service) DeleteMood(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}
