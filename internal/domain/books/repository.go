package books

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var (
	ErrBookNotFound         = errors.New("book not found")
	ErrUserBookNotFound     = errors.New("book not found in your library")
	ErrBookAlreadyInLibrary = errors.New("book already in your library")
	ErrInvalidBookInput     = errors.New("invalid book input")
)

// BookFilter defines the filtering options for the catalog
type BookFilter struct {
	Category   *Category
	Difficulty *Difficulty
}

// Repository defines the interface for book persistence operations
type Repository interface {
	FindBooks(ctx context.Context, filter BookFilter) ([]Book, error)
	FindBookByID(ctx context.Context, id uuid.UUID) (*Book, error)
	CreateUserBook(ctx context.Context, entry *UserBook) error
	FindUserBook(ctx context.Context, userID uuid.UUID, bookID uuid.UUID) (*UserBook, error)
	FindUserBookByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*UserBook, error)
	FindLibrary(ctx context.Context, userID uuid.UUID, status *Status) ([]UserBook, error)
	UpdateUserBook(ctx context.Context, entry *UserBook) error
	DeleteUserBook(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	FindRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]Book, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

// FindBooks returns active catalog books, best rated first.
func (r *repository) FindBooks(ctx context.Context, filter BookFilter) ([]Book, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Difficulty != nil {
		query = query.Where("difficulty = ?", *filter.Difficulty)
	}

	var books []Book
	err := query.Order("rating DESC, created_at DESC").Find(&books).Error
	return books, err
}

func (r *repository) FindBookByID(ctx context.Context, id uuid.UUID) (*Book, error) {
	var book Book
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&book)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, result.Error
	}
	return &book, nil
}

// CreateUserBook inserts a library entry. The (user_id, book_id) unique
// index serializes duplicate adds; the loser gets ErrBookAlreadyInLibrary.
func (r *repository) CreateUserBook(ctx context.Context, entry *UserBook) error {
	err := r.db.WithContext(ctx).Create(entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrBookAlreadyInLibrary
		}
		return err
	}
	return nil
}

func (r *repository) FindUserBook(ctx context.Context, userID uuid.UUID, bookID uuid.UUID) (*UserBook, error) {
	var entry UserBook
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserBookNotFound
		}
		return nil, result.Error
	}
	return &entry, nil
}

func (r *repository) FindUserBookByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*UserBook, error) {
	var entry UserBook
	result := r.db.WithContext(ctx).
		Preload("Book").
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserBookNotFound
		}
		return nil, result.Error
	}
	return &entry, nil
}

func (r *repository) FindLibrary(ctx context.Context, userID uuid.UUID, status *Status) ([]UserBook, error) {
	query := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var entries []UserBook
	err := query.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *repository) UpdateUserBook(ctx context.Context, entry *UserBook) error {
	result := r.db.WithContext(ctx).Omit("Book").Save(entry)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserBookNotFound
	}
	return nil
}

func (r *repository) DeleteUserBook(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&UserBook{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserBookNotFound
	}
	return nil
}

// FindRecommendations returns the best-rated active books the user has
// not added yet.
func (r *repository) FindRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]Book, error) {
	var books []Book
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("id NOT IN (?)", r.db.WithContext(ctx).
			Model(&UserBook{}).
			Select("book_id").
			Where("user_id = ?", userID)).
		Order("rating DESC").
		Limit(limit).
		Find(&books).Error
	return books, err
}
