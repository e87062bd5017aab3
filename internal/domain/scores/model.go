package scores

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Component weights for the overall score.
const (
	moodWeight     = 0.3
	habitWeight    = 0.4
	exerciseWeight = 0.3

	// Each completed exercise contributes this much, capped at 10.
	exercisePointValue = 2.5
)

// Components holds the per-area scores, each on a 0-10 scale.
// Sleep and engagement are placeholders pending their data sources.
type Components struct {
	MoodScore       float64 `gorm:"column:mood_score" json:"moodScore"`
	HabitScore      float64 `gorm:"column:habit_score" json:"habitScore"`
	ExerciseScore   float64 `gorm:"column:exercise_score" json:"exerciseScore"`
	SleepScore      float64 `gorm:"column:sleep_score" json:"sleepScore"`
	EngagementScore float64 `gorm:"column:engagement_score" json:"engagementScore"`
}

// Summary records the raw counts behind the day's components, so a zero
// component can be told apart from missing data.
type Summary struct {
	MoodEntries        int `gorm:"column:mood_entries" json:"moodEntries"`
	HabitsCompleted    int `gorm:"column:habits_completed" json:"habitsCompleted"`
	TotalHabits        int `gorm:"column:total_habits" json:"totalHabits"`
	ExercisesCompleted int `gorm:"column:exercises_completed" json:"exercisesCompleted"`
	ExerciseMinutes    int `gorm:"column:exercise_minutes" json:"minutesSpentOnExercises"`
}

// DailyScore is one user's wellness score for one calendar day.
type DailyScore struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_score_per_day" json:"userId"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:idx_score_per_day" json:"date"`
	OverallScore float64   `gorm:"not null" json:"overallScore"`

	Components Components `gorm:"embedded" json:"components"`
	Summary    Summary    `gorm:"embedded" json:"summary"`

	Insights        pq.StringArray `gorm:"type:text[]" json:"insights"`
	Recommendations pq.StringArray `gorm:"type:text[]" json:"recommendations"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (DailyScore) TableName() string {
	return "daily_scores"
}

// ScoreInput is the day's raw activity, already scoped to one user and
// one calendar day by the caller.
type ScoreInput struct {
	MoodScores         []int
	TotalHabits        int
	HabitsCompleted    int
	ExercisesCompleted int
	ExerciseMinutes    int
}

// Calculate derives the daily score from the day's activity.
//
// Components are weighted 30% mood, 40% habits, 30% exercise. The overall
// score is computed from the unrounded components and only then rounded,
// while each stored component is rounded independently. A day with no mood
// entries or no active habits scores 0 on that component rather than being
// excluded from the weighting.
func Calculate(userID uuid.UUID, date time.Time, in ScoreInput) *DailyScore {
	var moodScore float64
	if len(in.MoodScores) > 0 {
		sum := 0
		for _, s := range in.MoodScores {
			sum += s
		}
		moodScore = float64(sum) / float64(len(in.MoodScores))
	}

	var habitScore float64
	if in.TotalHabits > 0 {
		habitScore = float64(in.HabitsCompleted) / float64(in.TotalHabits) * 10
	}

	exerciseScore := math.Min(float64(in.ExercisesCompleted)*exercisePointValue, 10)

	overall := moodScore*moodWeight + habitScore*habitWeight + exerciseScore*exerciseWeight

	var insights []string
	if moodScore >= 7 {
		insights = append(insights, "Great mood today! Keep up the positive energy! 🌟")
	}
	if moodScore < 5 {
		insights = append(insights, "Your mood seems low. Consider trying a mindfulness exercise.")
	}
	if habitScore >= 8 {
		insights = append(insights, "Excellent habit completion! You're building strong routines! 💪")
	}
	if habitScore < 5 {
		insights = append(insights, "Try to complete more habits tomorrow for a better score.")
	}
	if in.ExercisesCompleted > 0 {
		insights = append(insights, fmt.Sprintf("You completed %d wellness exercise(s) today! 🎯", in.ExercisesCompleted))
	}

	var recommendations []string
	if in.ExercisesCompleted == 0 {
		recommendations = append(recommendations, "Try a 5-minute breathing exercise")
	}
	if moodScore < 6 {
		recommendations = append(recommendations, "Practice gratitude journaling")
	}
	if habitScore < 7 {
		recommendations = append(recommendations, "Focus on one habit at a time")
	}

	return &DailyScore{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         date,
		OverallScore: round1(overall),
		Components: Components{
			MoodScore:     round1(moodScore),
			HabitScore:    round1(habitScore),
			ExerciseScore: round1(exerciseScore),
		},
		Summary: Summary{
			MoodEntries:        len(in.MoodScores),
			HabitsCompleted:    in.HabitsCompleted,
			TotalHabits:        in.TotalHabits,
			ExercisesCompleted: in.ExercisesCompleted,
			ExerciseMinutes:    in.ExerciseMinutes,
		},
		Insights:        insights,
		Recommendations: recommendations,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
