package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/patelajay005/Saathi/internal/ai"
	"github.com/patelajay005/Saathi/internal/domain/habits"
	"github.com/patelajay005/Saathi/internal/domain/moods"
	"github.com/patelajay005/Saathi/internal/domain/scores"
	"github.com/patelajay005/Saathi/internal/domain/users"
	"github.com/patelajay005/Saathi/pkg/logger"
)

var ErrEmptyMessage = errors.New("message content is required")

const (
	// How many prior messages are replayed as completion context.
	historyWindow = 10

	contextMoodDays   = 7
	contextHabitLimit = 5
)

var languageInstructions = map[string]string{
	"en": "Respond in English.",
	"es": "Responde en español (Spanish).",
	"fr": "Répondez en français (French).",
	"de": "Antworte auf Deutsch (German).",
	"it": "Rispondi in italiano (Italian).",
	"pt": "Responda em português (Portuguese).",
	"zh": "Please respond in Chinese (中文).",
	"ja": "Please respond in Japanese (日本語).",
	"ko": "Please respond in Korean (한국어).",
	"ar": "Please respond in Arabic (العربية).",
	"hi": "Please respond in Hindi (हिन्दी).",
	"ru": "Отвечай на русском языке (Russian).",
	"nl": "Antwoord in het Nederlands (Dutch).",
	"pl": "Odpowiedz po polsku (Polish).",
	"tr": "Türkçe cevap ver (Turkish).",
}

// Rewarder credits engagement XP. Failures never fail the exchange.
type Rewarder interface {
	Award(ctx context.Context, userID uuid.UUID, points int) error
}

// SendResult carries both sides of one exchange.
type SendResult struct {
	UserMessage      *Message `json:"userMessage"`
	AssistantMessage *Message `json:"assistantMessage"`
	XPEarned         int      `json:"xpEarned"`
}

// Conversation is a session with its full message history.
type Conversation struct {
	Session  *Session  `json:"session"`
	Messages []Message `json:"messages"`
}

type Service interface {
	CreateSession(ctx context.Context, userID uuid.UUID) (*Session, error)
	ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]Session, error)
	GetConversation(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID) (*Conversation, error)
	SendMessage(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID, content, language string) (*SendResult, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID) error
}

type service struct {
	repo     Repository
	ai       *ai.Client
	users    users.Repository
	moods    moods.Repository
	habits   habits.Repository
	scores   scores.Repository
	rewarder Rewarder
	logger   *logger.Logger
}

func NewService(repo Repository, aiClient *ai.Client, userRepo users.Repository, moodRepo moods.Repository, habitRepo habits.Repository, scoreRepo scores.Repository, rewarder Rewarder, logger *logger.Logger) Service {
	return &service{
		repo:     repo,
		ai:       aiClient,
		users:    userRepo,
		moods:    moodRepo,
		habits:   habitRepo,
		scores:   scoreRepo,
		rewarder: rewarder,
		logger:   logger,
	}
}

func (s *service) CreateSession(ctx context.Context, userID uuid.UUID) (*Session, error) {
	session := &Session{
		UserID:   userID,
		Title:    "New Conversation",
		IsActive: true,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]Session, error) {
	return s.repo.FindSessions(ctx, userID, limit)
}

func (s *service) GetConversation(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID) (*Conversation, error) {
	session, err := s.repo.FindSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	messages, err := s.repo.FindMessages(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	return &Conversation{Session: session, Messages: messages}, nil
}

// SendMessage stores the user's message, replays recent history plus a
// personalised system prompt through the completion API, stores the
// assistant reply, and credits engagement XP.
func (s *service) SendMessage(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID, content, language string) (*SendResult, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := s.repo.FindSession(ctx, sessionID, userID); err != nil {
		return nil, err
	}

	userMessage := &Message{
		SessionID: sessionID,
		UserID:    userID,
		Role:      RoleUser,
		Content:   content,
	}
	if err := s.repo.CreateMessage(ctx, userMessage); err != nil {
		return nil, err
	}

	recent, err := s.repo.FindRecentMessages(ctx, sessionID, userID, historyWindow)
	if err != nil {
		return nil, err
	}

	prompt := make([]ai.Message, 0, len(recent)+1)
	prompt = append(prompt, ai.Message{Role: RoleSystem, Content: s.buildSystemPrompt(ctx, userID, language)})
	for i := len(recent) - 1; i >= 0; i-- {
		prompt = append(prompt, ai.Message{Role: recent[i].Role, Content: recent[i].Content})
	}

	reply, err := s.ai.GenerateResponse(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}

	assistantMessage := &Message{
		SessionID: sessionID,
		UserID:    userID,
		Role:      RoleAssistant,
		Content:   reply.Content,
		Tokens:    reply.Tokens,
		Model:     reply.Model,
	}
	if err := s.repo.CreateMessage(ctx, assistantMessage); err != nil {
		return nil, err
	}

	if err := s.repo.TouchSession(ctx, sessionID, userID, time.Now(), 2); err != nil {
		s.logger.Warn("failed to update chat session activity",
			zap.String("session_id", sessionID.String()),
			zap.Error(err))
	}

	if s.rewarder != nil {
		if err := s.rewarder.Award(ctx, userID, users.XPChatExchange); err != nil {
			s.logger.Warn("failed to award chat XP",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}

	return &SendResult{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
		XPEarned:         users.XPChatExchange,
	}, nil
}

func (s *service) DeleteSession(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID) error {
	return s.repo.DeleteSession(ctx, sessionID, userID)
}

// buildSystemPrompt personalises the coaching prompt with the user's
// recent wellness data. Lookups are best effort; missing data degrades
// to "N/A" rather than failing the exchange.
func (s *service) buildSystemPrompt(ctx context.Context, userID uuid.UUID, language string) string {
	langInstruction, ok := languageInstructions[language]
	if !ok {
		langInstruction = languageInstructions["en"]
	}

	level := 1
	streak := 0
	if user, err := s.users.FindByID(ctx, userID); err == nil {
		level = user.Gamification.Level
		streak = user.Gamification.Streak
	} else {
		s.logger.Warn("failed to load user for chat context", zap.Error(err))
	}

	averageMood := "N/A"
	moodTrend := moods.TrendStable
	now := time.Now()
	if recent, err := s.moods.FindRange(ctx, userID, now.AddDate(0, 0, -contextMoodDays), now); err == nil && len(recent) > 0 {
		sum := 0
		scoreSeq := make([]int, 0, len(recent))
		for _, m := range recent {
			sum += m.Score
			scoreSeq = append(scoreSeq, m.Score)
		}
		averageMood = fmt.Sprintf("%.1f", float64(sum)/float64(len(recent)))
		moodTrend = moods.ScoreTrend(scoreSeq)
	}

	habitNames := "None"
	active := true
	if userHabits, err := s.habits.FindAll(ctx, habits.HabitFilter{UserID: userID, IsActive: &active}); err == nil && len(userHabits) > 0 {
		names := make([]string, 0, contextHabitLimit)
		for _, h := range userHabits {
			names = append(names, h.Name)
			if len(names) == contextHabitLimit {
				break
			}
		}
		habitNames = strings.Join(names, ", ")
	}

	latestScore := "N/A"
	if history, err := s.scores.History(ctx, scores.HistoryFilter{UserID: userID, Limit: 1}); err == nil && len(history) > 0 {
		latestScore = fmt.Sprintf("%.1f", history[0].OverallScore)
	}

	return fmt.Sprintf(`%s

%s

Current user context:
- Level: %d
- Current Streak: %d days
- Average Mood (7 days): %s/10
- Mood Trend: %s
- Latest Overall Score: %s/10
- Active Habits: %s

Use this context to personalize your responses and provide relevant encouragement.`,
		ai.SystemPrompt, langInstruction, level, streak, averageMood, moodTrend, latestScore, habitNames)
}
