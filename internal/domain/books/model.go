package books

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Category labels for the reading catalog
type Category string

const (
	CategoryMentalHealth  Category = "mental-health"
	CategoryMindfulness   Category = "mindfulness"
	CategoryCBT           Category = "CBT"
	CategorySelfHelp      Category = "self-help"
	CategoryPsychology    Category = "psychology"
	CategoryMeditation    Category = "meditation"
	CategoryHabits        Category = "habits"
	CategoryProductivity  Category = "productivity"
	CategoryRelationships Category = "relationships"
	CategoryOther         Category = "other"
)

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategoryMentalHealth, CategoryMindfulness, CategoryCBT, CategorySelfHelp,
		CategoryPsychology, CategoryMeditation, CategoryHabits, CategoryProductivity,
		CategoryRelationships, CategoryOther:
		return true
	}
	return false
}

// Difficulty of a book's material
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is a known difficulty
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Book is a catalog entry in the wellness reading list
type Book struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key"`
	Title           string         `gorm:"size:255;not null"`
	Author          string         `gorm:"size:255;not null"`
	Description     string         `gorm:"type:text;not null"`
	Category        Category       `gorm:"size:32;not null"`
	CoverImage      string         `gorm:"size:512"`
	ISBN            string         `gorm:"size:32"`
	PublicationYear int            ``
	Rating          float64        `gorm:"not null;default:0"` // 0-5 editorial rating
	Tags            pq.StringArray `gorm:"type:text[]"`
	KeyTakeaways    pq.StringArray `gorm:"type:text[]"`
	RecommendedFor  pq.StringArray `gorm:"type:text[]"`
	Difficulty      Difficulty     `gorm:"size:16;not null;default:'beginner'"`
	AmazonLink      string         `gorm:"size:512"`
	IsActive        bool           `gorm:"not null;default:true"`
	CreatedAt       time.Time      `gorm:"not null"`
}

// TableName specifies the table name for the Book model
func (Book) TableName() string {
	return "books"
}

// BeforeCreate is called before inserting a book record
func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Status of a book in a user's library
type Status string

const (
	StatusWantToRead Status = "want-to-read"
	StatusReading    Status = "reading"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusCompleted:
		return true
	}
	return false
}

// UserBook links a user to a catalog book with their reading state.
// The unique index on (user_id, book_id) keeps a book in a library at
// most once.
type UserBook struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_book,priority:1;index:idx_user_books_user_status,priority:1"`
	BookID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_book,priority:2"`
	Status      Status     `gorm:"size:16;not null;default:'want-to-read';index:idx_user_books_user_status,priority:2"`
	Progress    int        `gorm:"not null;default:0"` // percent, 0-100
	Rating      *int       ``                          // user's own 1-5 rating
	Notes       string     `gorm:"type:text"`
	StartedAt   *time.Time ``
	CompletedAt *time.Time ``
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`

	Book Book `gorm:"foreignKey:BookID"`
}

// TableName specifies the table name for the UserBook model
func (UserBook) TableName() string {
	return "user_books"
}

// BeforeCreate is called before inserting a user book record
func (ub *UserBook) BeforeCreate(tx *gorm.DB) error {
	if ub.ID == uuid.Nil {
		ub.ID = uuid.New()
	}
	return nil
}

// UpdateEntryInput represents the input for editing a library entry
type UpdateEntryInput struct {
	Status   *Status
	Progress *int
	Rating   *int
	Notes    *string
}

// ApplyUpdate mutates the entry per the input's set fields.
//
// Moving to reading stamps StartedAt the first time; moving to completed
// stamps CompletedAt and forces progress to 100. An explicit progress in
// the same update still wins, matching the field order clients rely on.
func (ub *UserBook) ApplyUpdate(input UpdateEntryInput, now time.Time) error {
	if input.Status != nil {
		if !input.Status.Valid() {
			return ErrInvalidBookInput
		}
		ub.Status = *input.Status
		if *input.Status == StatusReading && ub.StartedAt == nil {
			started := now
			ub.StartedAt = &started
		}
		if *input.Status == StatusCompleted {
			completed := now
			ub.CompletedAt = &completed
			ub.Progress = 100
		}
	}
	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return ErrInvalidBookInput
		}
		ub.Progress = *input.Progress
	}
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return ErrInvalidBookInput
		}
		ub.Rating = input.Rating
	}
	if input.Notes != nil {
		ub.Notes = *input.Notes
	}
	return nil
}
