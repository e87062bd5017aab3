package books

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patelajay005/Saathi/pkg/logger"
)

func TestApplyUpdateStatusTransitions(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("moving to reading stamps started at once", func(t *testing.T) {
		entry := &UserBook{Status: StatusWantToRead}

		reading := StatusReading
		require.NoError(t, entry.ApplyUpdate(UpdateEntryInput{Status: &reading}, now))
		require.NotNil(t, entry.StartedAt)
		assert.Equal(t, now, *entry.StartedAt)

		// A later update keeps the original start date.
		later := now.AddDate(0, 0, 3)
		require.NoError(t, entry.ApplyUpdate(UpdateEntryInput{Status: &reading}, later))
		assert.Equal(t, now, *entry.StartedAt)
	})

	t.Run("completing stamps completed at and forces full progress", func(t *testing.T) {
		entry := &UserBook{Status: StatusReading, Progress: 60}

		completed := StatusCompleted
		require.NoError(t, entry.ApplyUpdate(UpdateEntryInput{Status: &completed}, now))
		require.NotNil(t, entry.CompletedAt)
		assert.Equal(t, now, *entry.CompletedAt)
		assert.Equal(t, 100, entry.Progress)
	})

	t.Run("explicit progress in the same update wins", func(t *testing.T) {
		entry := &UserBook{Status: StatusReading}

		completed := StatusCompleted
		progress := 95
		require.NoError(t, entry.ApplyUpdate(UpdateEntryInput{Status: &completed, Progress: &progress}, now))
		assert.Equal(t, 95, entry.Progress)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		entry := &UserBook{Status: StatusReading}

		badStatus := Status("finished")
		assert.ErrorIs(t, entry.ApplyUpdate(UpdateEntryInput{Status: &badStatus}, now), ErrInvalidBookInput)

		badProgress := 120
		assert.ErrorIs(t, entry.ApplyUpdate(UpdateEntryInput{Progress: &badProgress}, now), ErrInvalidBookInput)

		badRating := 0
		assert.ErrorIs(t, entry.ApplyUpdate(UpdateEntryInput{Rating: &badRating}, now), ErrInvalidBookInput)
	})
}

type stubRepo struct {
	book         *Book
	createErr    error
	createdEntry *UserBook
}

func (r *stubRepo) FindBooks(ctx context.Context, filter BookFilter) ([]Book, error) {
	return nil, nil
}

func (r *stubRepo) FindBookByID(ctx context.Context, id uuid.UUID) (*Book, error) {
	if r.book == nil {
		return nil, ErrBookNotFound
	}
	return r.book, nil
}

func (r *stubRepo) CreateUserBook(ctx context.Context, entry *UserBook) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.createdEntry = entry
	return nil
}

func (r *stubRepo) FindUserBook(ctx context.Context, userID uuid.UUID, bookID uuid.UUID) (*UserBook, error) {
	return nil, ErrUserBookNotFound
}

func (r *stubRepo) FindUserBookByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*UserBook, error) {
	return nil, ErrUserBookNotFound
}

func (r *stubRepo) FindLibrary(ctx context.Context, userID uuid.UUID, status *Status) ([]UserBook, error) {
	return nil, nil
}

func (r *stubRepo) UpdateUserBook(ctx context.Context, entry *UserBook) error { return nil }

func (r *stubRepo) DeleteUserBook(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return nil
}

func (r *stubRepo) FindRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]Book, error) {
	return nil, nil
}

func testBook() *Book {
	return &Book{
		ID:       uuid.New(),
		Title:    "Atomic Habits",
		Author:   "James Clear",
		Category: CategoryHabits,
		IsActive: true,
	}
}

func TestAddToLibraryDefaultsToWantToRead(t *testing.T) {
	repo := &stubRepo{book: testBook()}
	svc := NewService(repo, time.UTC, logger.NewLoggerWithLevel("error"))

	entry, err := svc.AddToLibrary(context.Background(), repo.book.ID, uuid.New(), "")
	require.NoError(t, err)

	assert.Equal(t, StatusWantToRead, entry.Status)
	assert.Nil(t, entry.StartedAt)
	assert.Equal(t, repo.book.ID, entry.BookID)
}

func TestAddToLibraryReadingStampsStartedAt(t *testing.T) {
	repo := &stubRepo{book: testBook()}
	svc := NewService(repo, time.UTC, logger.NewLoggerWithLevel("error"))

	entry, err := svc.AddToLibrary(context.Background(), repo.book.ID, uuid.New(), StatusReading)
	require.NoError(t, err)

	assert.Equal(t, StatusReading, entry.Status)
	assert.NotNil(t, entry.StartedAt)
}

func TestAddToLibraryDuplicate(t *testing.T) {
	repo := &stubRepo{book: testBook(), createErr: ErrBookAlreadyInLibrary}
	svc := NewService(repo, time.UTC, logger.NewLoggerWithLevel("error"))

	_, err := svc.AddToLibrary(context.Background(), repo.book.ID, uuid.New(), StatusWantToRead)
	assert.ErrorIs(t, err, ErrBookAlreadyInLibrary)
}

func TestAddToLibraryRejectsUnknownStatus(t *testing.T) {
	repo := &stubRepo{book: testBook()}
	svc := NewService(repo, time.UTC, logger.NewLoggerWithLevel("error"))

	_, err := svc.AddToLibrary(context.Background(), repo.book.ID, uuid.New(), Status("archived"))
	assert.ErrorIs(t, err, ErrInvalidBookInput)
	assert.Nil(t, repo.createdEntry)
}
