package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/pkg/logger"
	"github.com/patelajay005/Saathi/pkg/security/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
)

// RegisterInput represents the input for creating a new account
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// UpdateProfileInput represents the input for updating a user profile
type UpdateProfileInput struct {
	Name *string
}

// AuthResult bundles a user with a freshly issued token
type AuthResult struct {
	User  *User
	Token string
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*User, error)
	AwardXP(ctx context.Context, id uuid.UUID, points int) (XPResult, error)
	CheckIn(ctx context.Context, id uuid.UUID) (int, error)
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

type service struct {
	repo      Repository
	jwtSecret string
	jwtIssuer string
	jwtExpiry int
	loc       *time.Location
	logger    *logger.Logger
}

func NewService(repo Repository, jwtSecret, jwtIssuer string, jwtExpiryHours int, loc *time.Location, logger *logger.Logger) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
		jwtIssuer: jwtIssuer,
		jwtExpiry: jwtExpiryHours,
		loc:       loc,
		logger:    logger,
	}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || len(input.Password) < 8 || strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(input.Name),
		Gamification: Gamification{Level: 1},
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtIssuer, s.jwtExpiry)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return &AuthResult{User: user, Token: token}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Login counts as the daily check-in
	user.CheckIn(time.Now().In(s.loc))
	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error("failed to update check-in streak", zap.Error(err))
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtIssuer, s.jwtExpiry)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (s *service) GetProfile(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AwardXP loads the user, applies the XP mutation and saves.
func (s *service) AwardXP(ctx context.Context, id uuid.UUID, points int) (XPResult, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return XPResult{}, err
	}

	result := user.AddXP(points)
	if err := s.repo.Update(ctx, user); err != nil {
		return XPResult{}, err
	}
	return result, nil
}

func (s *service) CheckIn(ctx context.Context, id uuid.UUID) (int, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}

	streak := user.CheckIn(time.Now().In(s.loc))
	if err := s.repo.Update(ctx, user); err != nil {
		return 0, err
	}
	return streak, nil
}

func (s *service) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	return s.repo.FindAllIDs(ctx)
}
