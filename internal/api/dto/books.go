package dto

import (
	"time"

	"github.com/google/uuid"
)

// AddBookRequest represents the request to add a book to the library
type AddBookRequest struct {
	Status string `json:"status,omitempty"`
}

// UpdateUserBookRequest represents the request to edit a library entry
type UpdateUserBookRequest struct {
	Status   *string `json:"status,omitempty"`
	Progress *int    `json:"progress,omitempty" binding:"omitempty,min=0,max=100"`
	Rating   *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Notes    *string `json:"notes,omitempty"`
}

// BookResponse represents a catalog book in API responses
type BookResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	CoverImage      string    `json:"cover_image,omitempty"`
	ISBN            string    `json:"isbn,omitempty"`
	PublicationYear int       `json:"publication_year,omitempty"`
	Rating          float64   `json:"rating"`
	Tags            []string  `json:"tags,omitempty"`
	KeyTakeaways    []string  `json:"key_takeaways,omitempty"`
	RecommendedFor  []string  `json:"recommended_for,omitempty"`
	Difficulty      string    `json:"difficulty"`
	AmazonLink      string    `json:"amazon_link,omitempty"`
}

// UserBookResponse represents a library entry in API responses
type UserBookResponse struct {
	ID          uuid.UUID     `json:"id"`
	BookID      uuid.UUID     `json:"book_id"`
	Status      string        `json:"status"`
	Progress    int           `json:"progress"`
	Rating      *int          `json:"rating,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	StartedAt   *time.Time    `json:"started_at,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	Book        *BookResponse `json:"book,omitempty"`
}

// BookDetailResponse pairs a catalog book with the user's library entry
type BookDetailResponse struct {
	Book     *BookResponse     `json:"book"`
	UserBook *UserBookResponse `json:"user_book,omitempty"`
}
