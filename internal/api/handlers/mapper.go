package handlers

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/patelajay005/Saathi/internal/api/dto"
	"github.com/patelajay005/Saathi/internal/domain/books"
	"github.com/patelajay005/Saathi/internal/domain/chat"
	"github.com/patelajay005/Saathi/internal/domain/exercises"
	"github.com/patelajay005/Saathi/internal/domain/habits"
	"github.com/patelajay005/Saathi/internal/domain/moods"
	"github.com/patelajay005/Saathi/internal/domain/notification"
	"github.com/patelajay005/Saathi/internal/domain/quizzes"
	"github.com/patelajay005/Saathi/internal/domain/scores"
	"github.com/patelajay005/Saathi/internal/domain/users"
)

// Users
func UserToResponse(u *users.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		XP:        u.Gamification.XP,
		Level:     u.Gamification.Level,
		Streak:    u.Gamification.Streak,
		CreatedAt: u.CreatedAt,
	}
}

// Habits
func HabitToResponse(h *habits.Habit, now time.Time) *dto.HabitResponse {
	if h == nil {
		return nil
	}
	return &dto.HabitResponse{
		ID:               h.ID,
		UserID:           h.UserID,
		Name:             h.Name,
		Description:      h.Description,
		Category:         string(h.Category),
		Frequency:        string(h.Frequency),
		TargetDays:       h.TargetDays,
		ReminderTime:     h.ReminderTime,
		Color:            h.Color,
		Icon:             h.Icon,
		CurrentStreak:    h.CurrentStreak,
		BestStreak:       h.BestStreak,
		TotalCompletions: h.TotalCompletions,
		CompletedToday:   h.CompletedOn(now),
		IsActive:         h.IsActive,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}
}

func CompletionOutcomeToResponse(o *habits.CompletionOutcome) *dto.HabitCompletionResponse {
	if o == nil {
		return nil
	}
	return &dto.HabitCompletionResponse{
		AlreadyCompleted: o.AlreadyCompleted,
		CurrentStreak:    o.Streak,
		BestStreak:       o.BestStreak,
		TotalCompletions: o.TotalCompletions,
		XPEarned:         o.XPEarned,
	}
}

// Moods
func MoodToResponse(m *moods.Mood) *dto.MoodResponse {
	if m == nil {
		return nil
	}
	return &dto.MoodResponse{
		ID:         m.ID,
		UserID:     m.UserID,
		Score:      m.Score,
		Emotion:    string(m.Emotion),
		Notes:      m.Notes,
		Triggers:   m.Triggers,
		Activities: m.Activities,
		TimeOfDay:  m.TimeOfDay,
		SleepHours: m.SleepHours,
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
	}
}

// Exercises
func ExerciseToResponse(e *exercises.Exercise) *dto.ExerciseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExerciseResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Category:     string(e.Category),
		Duration:     e.Duration,
		Difficulty:   e.Difficulty,
		Instructions: e.Instructions,
		Benefits:     e.Benefits,
		Tags:         e.Tags,
		AudioURL:     e.AudioURL,
	}
}

func ExerciseLogToResponse(l *exercises.Log) *dto.ExerciseLogResponse {
	if l == nil {
		return nil
	}
	return &dto.ExerciseLogResponse{
		ID:          l.ID,
		ExerciseID:  l.ExerciseID,
		CompletedAt: l.CompletedAt,
		Duration:    l.Duration,
		Rating:      l.Rating,
		MoodBefore:  l.MoodBefore,
		MoodAfter:   l.MoodAfter,
		Notes:       l.Notes,
	}
}

// Scores
func ScoreToResponse(s *scores.DailyScore) *dto.ScoreResponse {
	if s == nil {
		return nil
	}
	return &dto.ScoreResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		Date:         s.Date,
		OverallScore: s.OverallScore,
		Components: dto.ScoreComponentsResponse{
			MoodScore:       s.Components.MoodScore,
			HabitScore:      s.Components.HabitScore,
			ExerciseScore:   s.Components.ExerciseScore,
			SleepScore:      s.Components.SleepScore,
			EngagementScore: s.Components.EngagementScore,
		},
		Summary: dto.ScoreSummaryResponse{
			MoodEntries:        s.Summary.MoodEntries,
			HabitsCompleted:    s.Summary.HabitsCompleted,
			TotalHabits:        s.Summary.TotalHabits,
			ExercisesCompleted: s.Summary.ExercisesCompleted,
			ExerciseMinutes:    s.Summary.ExerciseMinutes,
		},
		Insights:        s.Insights,
		Recommendations: s.Recommendations,
		CreatedAt:       s.CreatedAt,
	}
}

func ScoreStatsToResponse(s *scores.Stats) *dto.ScoreStatsResponse {
	if s == nil {
		return nil
	}
	resp := &dto.ScoreStatsResponse{
		AverageScore:      s.AverageScore,
		TotalDays:         s.TotalDays,
		Trend:             s.Trend,
		ComponentAverages: s.ComponentAverages,
		Period:            s.PeriodDays,
	}
	if s.BestDay != nil {
		resp.BestDay = &dto.BestDayResponse{Date: s.BestDay.Date, Score: s.BestDay.Score}
	}
	return resp
}

// Chat
func ChatSessionToResponse(s *chat.Session) *dto.ChatSessionResponse {
	if s == nil {
		return nil
	}
	return &dto.ChatSessionResponse{
		ID:            s.ID,
		Title:         s.Title,
		Summary:       s.Summary,
		MessageCount:  s.MessageCount,
		IsActive:      s.IsActive,
		StartedAt:     s.StartedAt,
		LastMessageAt: s.LastMessageAt,
	}
}

func ChatMessageToResponse(m *chat.Message) *dto.ChatMessageResponse {
	if m == nil {
		return nil
	}
	return &dto.ChatMessageResponse{
		ID:        m.ID,
		SessionID: m.SessionID,
		Role:      m.Role,
		Content:   m.Content,
		Tokens:    m.Tokens,
		Model:     m.Model,
		CreatedAt: m.CreatedAt,
	}
}

// Quizzes
func QuizToResponse(q *quizzes.Quiz) *dto.QuizResponse {
	if q == nil {
		return nil
	}

	decoded, _ := q.DecodeQuestions()
	questions := make([]dto.QuizQuestionResponse, 0, len(decoded))
	for _, question := range decoded {
		options := make([]dto.QuizOptionResponse, 0, len(question.Options))
		for _, opt := range question.Options {
			options = append(options, dto.QuizOptionResponse{Text: opt.Text, Score: opt.Score})
		}
		questions = append(questions, dto.QuizQuestionResponse{
			ID:       question.ID,
			Text:     question.Text,
			Type:     string(question.Type),
			Options:  options,
			ScaleMin: question.ScaleMin,
			ScaleMax: question.ScaleMax,
			Order:    question.Order,
		})
	}

	return &dto.QuizResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Category:    string(q.Category),
		Questions:   questions,
		Duration:    q.Duration,
		CreatedAt:   q.CreatedAt,
	}
}

func QuizResultToResponse(r *quizzes.QuizResult) *dto.QuizResultResponse {
	if r == nil {
		return nil
	}

	var scored []quizzes.ScoredAnswer
	_ = json.Unmarshal(r.Answers, &scored)
	answers := make([]dto.QuizAnswerScore, 0, len(scored))
	for _, a := range scored {
		answers = append(answers, dto.QuizAnswerScore{
			QuestionID: a.QuestionID,
			Value:      a.Value,
			Score:      a.Score,
		})
	}

	return &dto.QuizResultResponse{
		ID:         r.ID,
		QuizID:     r.QuizID,
		QuizTitle:  r.Quiz.Title,
		Answers:    answers,
		TotalScore: r.TotalScore,
		Result: dto.QuizResultBreakdown{
			Label:           r.ResultLabel,
			Description:     r.ResultDescription,
			Recommendations: r.ResultRecommendations,
		},
		CompletedAt: r.CompletedAt,
	}
}

// Books
func BookToResponse(b *books.Book) *dto.BookResponse {
	if b == nil {
		return nil
	}
	return &dto.BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Description:     b.Description,
		Category:        string(b.Category),
		CoverImage:      b.CoverImage,
		ISBN:            b.ISBN,
		PublicationYear: b.PublicationYear,
		Rating:          b.Rating,
		Tags:            b.Tags,
		KeyTakeaways:    b.KeyTakeaways,
		RecommendedFor:  b.RecommendedFor,
		Difficulty:      string(b.Difficulty),
		AmazonLink:      b.AmazonLink,
	}
}

func UserBookToResponse(ub *books.UserBook) *dto.UserBookResponse {
	if ub == nil {
		return nil
	}
	resp := &dto.UserBookResponse{
		ID:          ub.ID,
		BookID:      ub.BookID,
		Status:      string(ub.Status),
		Progress:    ub.Progress,
		Rating:      ub.Rating,
		Notes:       ub.Notes,
		StartedAt:   ub.StartedAt,
		CompletedAt: ub.CompletedAt,
		CreatedAt:   ub.CreatedAt,
	}
	if ub.Book.ID != uuid.Nil {
		resp.Book = BookToResponse(&ub.Book)
	}
	return resp
}

// Notifications
func NotificationToResponse(n *notification.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Content:   n.Content,
		Metadata:  json.RawMessage(n.Metadata),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
