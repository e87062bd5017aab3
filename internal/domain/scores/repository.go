package scores

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrScoreNotFound = errors.New("daily score not found")

// HistoryFilter narrows a score history query.
type HistoryFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

type Repository interface {
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyScore, error)
	Upsert(ctx context.Context, score *DailyScore) error
	History(ctx context.Context, filter HistoryFilter) ([]DailyScore, error)
	FindSince(ctx context.Context, userID uuid.UUID, start time.Time) ([]DailyScore, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyScore, error) {
	var score DailyScore
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScoreNotFound
		}
		return nil, err
	}
	return &score, nil
}

// Upsert writes the score, replacing any existing row for the same user
// and day. Recalculation always wins over the stored snapshot.
func (r *repository) Upsert(ctx context.Context, score *DailyScore) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"overall_score",
				"mood_score", "habit_score", "exercise_score", "sleep_score", "engagement_score",
				"mood_entries", "habits_completed", "total_habits", "exercises_completed", "exercise_minutes",
				"insights", "recommendations",
				"updated_at",
			}),
		}).
		Create(score).Error
}

// History returns scores newest first, optionally bounded by dates.
func (r *repository) History(ctx context.Context, filter HistoryFilter) ([]DailyScore, error) {
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

	var scores []DailyScore
	if err := query.Order("date DESC").Limit(limit).Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

// FindSince returns scores from start onward, oldest first.
func (r *repository) FindSince(ctx context.Context, userID uuid.UUID, start time.Time) ([]DailyScore, error) {
	var scores []DailyScore
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, start).
		Order("date ASC").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}
