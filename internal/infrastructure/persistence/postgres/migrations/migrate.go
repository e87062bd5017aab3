package migrations

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/patelajay005/Saathi/internal/domain/books"
	"github.com/patelajay005/Saathi/internal/domain/chat"
	"github.com/patelajay005/Saathi/internal/domain/exercises"
	"github.com/patelajay005/Saathi/internal/domain/habits"
	"github.com/patelajay005/Saathi/internal/domain/moods"
	"github.com/patelajay005/Saathi/internal/domain/notification"
	"github.com/patelajay005/Saathi/internal/domain/quizzes"
	"github.com/patelajay005/Saathi/internal/domain/scores"
	"github.com/patelajay005/Saathi/internal/domain/users"
	"github.com/patelajay005/Saathi/internal/infrastructure/persistence/postgres/connection"
)

// MigrationRecord tracks the migration history
type MigrationRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null;unique"`
	Version   int       `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for migration records
func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *connection.Database, logger *zap.Logger) error {
	logger.Info("Starting automatic database migration...")

	// Enable UUID extension for PostgreSQL
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		logger.Error("Failed to create UUID extension", zap.Error(err))
		return fmt.Errorf("failed to create UUID extension: %v", err)
	}

	if err := db.AutoMigrate(&MigrationRecord{}); err != nil {
		logger.Error("Failed to create migrations table", zap.Error(err))
		return fmt.Errorf("failed to create migrations table: %v", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		txDB := &connection.Database{DB: tx}

		var lastVersion int
		if err := txDB.Model(&MigrationRecord{}).Select("COALESCE(MAX(version), 0)").Scan(&lastVersion).Error; err != nil {
			return fmt.Errorf("failed to get last version: %v", err)
		}

		// Order matters due to foreign key relationships
		models := []interface{}{
			&users.User{},
			&habits.Habit{},
			&habits.Completion{},
			&moods.Mood{},
			&exercises.Exercise{},
			&exercises.Log{},
			&scores.DailyScore{},
			&chat.Session{},
			&chat.Message{},
			&notification.Notification{},
			&quizzes.Quiz{},
			&quizzes.QuizResult{},
			&books.Book{},
			&books.UserBook{},
		}

		for i, model := range models {
			modelName := fmt.Sprintf("%T", model)

			var record MigrationRecord
			err := txDB.Where("name = ?", modelName).First(&record).Error
			isNewMigration := err == gorm.ErrRecordNotFound

			if err := txDB.AutoMigrate(model); err != nil {
				logger.Error("Failed to migrate model",
					zap.String("model", modelName),
					zap.Error(err),
				)
				return fmt.Errorf("failed to migrate %s: %v", modelName, err)
			}

			if isNewMigration {
				record = MigrationRecord{
					Name:      modelName,
					Version:   lastVersion + i + 1,
					AppliedAt: time.Now(),
				}
				if err := txDB.Create(&record).Error; err != nil {
					return fmt.Errorf("failed to record migration for %s: %v", modelName, err)
				}
				logger.Info("Applied new migration",
					zap.String("model", modelName),
					zap.Int("version", record.Version),
				)
			}
		}

		if err := seedDefaultExercises(tx); err != nil {
			return err
		}
		if err := seedDefaultQuizzes(tx); err != nil {
			return err
		}
		if err := seedDefaultBooks(tx); err != nil {
			return err
		}

		logger.Info("Database migration completed successfully")
		return nil
	})
}

// seedDefaultExercises populates the wellness exercise catalog so a fresh
// deployment has something to complete.
func seedDefaultExercises(db *gorm.DB) error {
	catalog := []exercises.Exercise{
		{
			Title:       "Box Breathing",
			Description: "A paced breathing technique that calms the nervous system: inhale, hold, exhale and hold again, four seconds each.",
			Category:    exercises.CategoryBreathing,
			Duration:    5,
			Difficulty:  "beginner",
			Instructions: []string{
				"Sit comfortably with your back straight",
				"Inhale through your nose for 4 seconds",
				"Hold your breath for 4 seconds",
				"Exhale through your mouth for 4 seconds",
				"Hold empty for 4 seconds, then repeat",
			},
			Benefits: []string{"Reduces stress", "Improves focus", "Lowers heart rate"},
			Tags:     []string{"breathing", "stress", "quick"},
		},
		{
			Title:       "Body Scan Meditation",
			Description: "A mindfulness practice that moves attention slowly through the body, noticing sensation without judgment.",
			Category:    exercises.CategoryMindfulness,
			Duration:    10,
			Difficulty:  "beginner",
			Instructions: []string{
				"Lie down or sit comfortably and close your eyes",
				"Bring attention to your feet and notice any sensation",
				"Slowly move attention upward through your body",
				"When your mind wanders, gently return to the last body part",
			},
			Benefits: []string{"Improves body awareness", "Promotes relaxation", "Helps with sleep"},
			Tags:     []string{"mindfulness", "relaxation", "sleep"},
		},
		{
			Title:       "Thought Record",
			Description: "A CBT exercise for examining a distressing thought, the evidence around it, and a more balanced alternative.",
			Category:    exercises.CategoryCBT,
			Duration:    15,
			Difficulty:  "intermediate",
			Instructions: []string{
				"Write down the situation that triggered the emotion",
				"Note the automatic thought and how strongly you believe it",
				"List evidence for and against the thought",
				"Write a balanced alternative thought",
				"Re-rate how strongly you believe the original thought",
			},
			Benefits: []string{"Challenges negative thinking", "Builds emotional insight"},
			Tags:     []string{"cbt", "journaling", "anxiety"},
		},
		{
			Title:       "Gratitude List",
			Description: "Write down three things you are grateful for today and why they matter to you.",
			Category:    exercises.CategoryGratitude,
			Duration:    5,
			Difficulty:  "beginner",
			Instructions: []string{
				"Find a quiet moment with a notebook or your phone",
				"Write three things you are grateful for today",
				"For each one, add a sentence on why it matters",
			},
			Benefits: []string{"Boosts mood", "Shifts focus to the positive"},
			Tags:     []string{"gratitude", "journaling", "quick"},
		},
		{
			Title:       "Progressive Muscle Relaxation",
			Description: "Tense and release muscle groups one at a time to discharge physical tension.",
			Category:    exercises.CategoryRelaxation,
			Duration:    12,
			Difficulty:  "beginner",
			Instructions: []string{
				"Sit or lie down in a comfortable position",
				"Tense your feet for 5 seconds, then release for 10",
				"Work upward through legs, abdomen, hands, arms and shoulders",
				"Finish with the muscles of the face",
			},
			Benefits: []string{"Relieves muscle tension", "Reduces anxiety", "Prepares the body for sleep"},
			Tags:     []string{"relaxation", "tension", "sleep"},
		},
	}

	for _, exercise := range catalog {
		exercise.IsActive = true
		if err := db.Where("title = ?", exercise.Title).FirstOrCreate(&exercise).Error; err != nil {
			return fmt.Errorf("failed to seed exercise %s: %w", exercise.Title, err)
		}
	}
	return nil
}

// seedDefaultQuizzes populates the self-assessment catalog.
func seedDefaultQuizzes(db *gorm.DB) error {
	stressOptions := []quizzes.Option{
		{Text: "Never", Score: 0},
		{Text: "Sometimes", Score: 1},
		{Text: "Often", Score: 2},
		{Text: "Very often", Score: 3},
	}

	questions, err := json.Marshal([]quizzes.Question{
		{
			ID:      "q1",
			Text:    "In the last month, how often have you felt unable to control the important things in your life?",
			Type:    quizzes.TypeMultipleChoice,
			Options: stressOptions,
			Order:   1,
		},
		{
			ID:      "q2",
			Text:    "How often have you felt confident about your ability to handle personal problems?",
			Type:    quizzes.TypeMultipleChoice,
			Options: []quizzes.Option{
				{Text: "Never", Score: 3},
				{Text: "Sometimes", Score: 2},
				{Text: "Often", Score: 1},
				{Text: "Very often", Score: 0},
			},
			Order: 2,
		},
		{
			ID:      "q3",
			Text:    "How often have you felt that things were going your way?",
			Type:    quizzes.TypeMultipleChoice,
			Options: []quizzes.Option{
				{Text: "Never", Score: 3},
				{Text: "Sometimes", Score: 2},
				{Text: "Often", Score: 1},
				{Text: "Very often", Score: 0},
			},
			Order: 3,
		},
		{
			ID:      "q4",
			Text:    "How often have you felt difficulties piling up so high you could not overcome them?",
			Type:    quizzes.TypeMultipleChoice,
			Options: stressOptions,
			Order:   4,
		},
		{
			ID:       "q5",
			Text:     "On a scale of 0 to 4, how stressed do you feel right now?",
			Type:     quizzes.TypeScale,
			ScaleMin: 0,
			ScaleMax: 4,
			Order:    5,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode quiz questions: %w", err)
	}

	ranges, err := json.Marshal([]quizzes.ScoringRange{
		{
			Min:         0,
			Max:         5,
			Label:       "Low stress",
			Description: "Your responses suggest your stress is well managed right now.",
			Recommendations: []string{
				"Keep up the routines that are working for you",
				"A short gratitude practice helps maintain this balance",
			},
		},
		{
			Min:         6,
			Max:         10,
			Label:       "Moderate stress",
			Description: "You are carrying a noticeable amount of stress.",
			Recommendations: []string{
				"Try a daily breathing exercise",
				"Log your mood to spot what drives the stress",
			},
		},
		{
			Min:         11,
			Max:         16,
			Label:       "High stress",
			Description: "Your responses suggest stress is weighing on you heavily.",
			Recommendations: []string{
				"Consider talking to a mental health professional",
				"Start with short relaxation exercises and build from there",
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode quiz scoring ranges: %w", err)
	}

	quiz := quizzes.Quiz{
		Title:         "Perceived Stress Check",
		Description:   "A short self-assessment of how stressed you have felt over the last month.",
		Category:      quizzes.CategoryStress,
		Questions:     questions,
		ScoringRanges: ranges,
		Duration:      3,
		IsActive:      true,
	}
	if err := db.Where("title = ?", quiz.Title).FirstOrCreate(&quiz).Error; err != nil {
		return fmt.Errorf("failed to seed quiz %s: %w", quiz.Title, err)
	}
	return nil
}

// seedDefaultBooks populates the wellness reading catalog.
func seedDefaultBooks(db *gorm.DB) error {
	catalog := []books.Book{
		{
			Title:           "Atomic Habits",
			Author:          "James Clear",
			Description:     "A practical framework for building good habits and breaking bad ones through small, compounding changes.",
			Category:        books.CategoryHabits,
			PublicationYear: 2018,
			Rating:          4.8,
			Tags:            []string{"habits", "behavior-change"},
			KeyTakeaways: []string{
				"Small improvements compound into remarkable results",
				"Design your environment to make good habits obvious and easy",
			},
			RecommendedFor: []string{"Anyone starting a habit practice"},
			Difficulty:     books.DifficultyBeginner,
		},
		{
			Title:           "The Happiness Trap",
			Author:          "Russ Harris",
			Description:     "An introduction to acceptance and commitment therapy and why chasing constant happiness backfires.",
			Category:        books.CategorySelfHelp,
			PublicationYear: 2008,
			Rating:          4.5,
			Tags:            []string{"act", "acceptance"},
			KeyTakeaways: []string{
				"Struggling against difficult feelings amplifies them",
				"Values-driven action matters more than feeling good",
			},
			RecommendedFor: []string{"Readers stuck in anxious thought loops"},
			Difficulty:     books.DifficultyBeginner,
		},
		{
			Title:           "Feeling Good",
			Author:          "David D. Burns",
			Description:     "The classic introduction to cognitive behavioral techniques for working with low mood.",
			Category:        books.CategoryCBT,
			PublicationYear: 1980,
			Rating:          4.4,
			Tags:            []string{"cbt", "mood"},
			KeyTakeaways: []string{
				"Distorted thoughts drive low mood and can be examined",
				"Writing thoughts down weakens their grip",
			},
			RecommendedFor: []string{"Readers wanting a structured CBT workbook"},
			Difficulty:     books.DifficultyIntermediate,
		},
		{
			Title:           "Wherever You Go, There You Are",
			Author:          "Jon Kabat-Zinn",
			Description:     "Short, plainspoken chapters on bringing mindfulness meditation into everyday life.",
			Category:        books.CategoryMindfulness,
			PublicationYear: 1994,
			Rating:          4.3,
			Tags:            []string{"mindfulness", "meditation"},
			KeyTakeaways: []string{
				"Mindfulness is attention to the present, on purpose, without judgment",
				"Practice works best woven into ordinary moments",
			},
			RecommendedFor: []string{"Beginners curious about meditation"},
			Difficulty:     books.DifficultyBeginner,
		},
		{
			Title:           "Why We Sleep",
			Author:          "Matthew Walker",
			Description:     "A tour of sleep science and what regular, sufficient sleep does for mood, memory and health.",
			Category:        books.CategoryPsychology,
			PublicationYear: 2017,
			Rating:          4.6,
			Tags:            []string{"sleep", "science"},
			KeyTakeaways: []string{
				"Sleep loss degrades emotional regulation before anything else",
				"Consistent sleep and wake times beat longer weekend catch-up",
			},
			RecommendedFor: []string{"Anyone trying to fix their sleep routine"},
			Difficulty:     books.DifficultyIntermediate,
		},
	}

	for _, book := range catalog {
		book.IsActive = true
		if err := db.Where("title = ?", book.Title).FirstOrCreate(&book).Error; err != nil {
			return fmt.Errorf("failed to seed book %s: %w", book.Title, err)
		}
	}
	return nil
}
