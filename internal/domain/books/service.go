package books

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/pkg/logger"
)

// How many unread catalog books the recommendation list suggests
const recommendationLimit = 10

// BookDetail pairs a catalog book with the user's library entry for it,
// when one exists.
type BookDetail struct {
	Book     *Book
	UserBook *UserBook
}

type Service interface {
	ListBooks(ctx context.Context, filter BookFilter) ([]Book, error)
	GetBook(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*BookDetail, error)
	AddToLibrary(ctx context.Context, bookID uuid.UUID, userID uuid.UUID, status Status) (*UserBook, error)
	GetLibrary(ctx context.Context, userID uuid.UUID, status *Status) ([]UserBook, error)
	UpdateLibraryEntry(ctx context.Context, id uuid.UUID, userID uuid.UUID, input UpdateEntryInput) (*UserBook, error)
	RemoveFromLibrary(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]Book, error)
}

type service struct {
	repo   Repository
	loc    *time.Location
	logger *logger.Logger
}

func NewService(repo Repository, loc *time.Location, logger *logger.Logger) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:   repo,
		loc:    loc,
		logger: logger,
	}
}

func (s *service) ListBooks(ctx context.Context, filter BookFilter) ([]Book, error) {
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, ErrInvalidBookInput
	}
	if filter.Difficulty != nil && !filter.Difficulty.Valid() {
		return nil, ErrInvalidBookInput
	}
	return s.repo.FindBooks(ctx, filter)
}

// GetBook returns the catalog entry together with the user's library
// state for it, if any.
func (s *service) GetBook(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*BookDetail, error) {
	book, err := s.repo.FindBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &BookDetail{Book: book}
	entry, err := s.repo.FindUserBook(ctx, userID, id)
	switch err {
	case nil:
		detail.UserBook = entry
	case ErrUserBookNotFound:
		// not in the library, detail stays catalog-only
	default:
		return nil, err
	}
	return detail, nil
}

// AddToLibrary creates a library entry for the book. Adding while
// already present fails with ErrBookAlreadyInLibrary.
func (s *service) AddToLibrary(ctx context.Context, bookID uuid.UUID, userID uuid.UUID, status Status) (*UserBook, error) {
	if status == "" {
		status = StatusWantToRead
	}
	if !status.Valid() {
		return nil, ErrInvalidBookInput
	}

	book, err := s.repo.FindBookByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	entry := &UserBook{
		ID:     uuid.New(),
		UserID: userID,
		BookID: book.ID,
		Status: status,
	}
	if status == StatusReading {
		started := time.Now().In(s.loc)
		entry.StartedAt = &started
	}

	if err := s.repo.CreateUserBook(ctx, entry); err != nil {
		return nil, err
	}
	entry.Book = *book
	return entry, nil
}

func (s *service) GetLibrary(ctx context.Context, userID uuid.UUID, status *Status) ([]UserBook, error) {
	if status != nil && !status.Valid() {
		return nil, ErrInvalidBookInput
	}
	return s.repo.FindLibrary(ctx, userID, status)
}

func (s *service) UpdateLibraryEntry(ctx context.Context, id uuid.UUID, userID uuid.UUID, input UpdateEntryInput) (*UserBook, error) {
	entry, err := s.repo.FindUserBookByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := entry.ApplyUpdate(input, time.Now().In(s.loc)); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateUserBook(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) RemoveFromLibrary(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return s.repo.DeleteUserBook(ctx, id, userID)
}

func (s *service) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]Book, error) {
	return s.repo.FindRecommendations(ctx, userID, recommendationLimit)
}
