package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patelajay005/Saathi/internal/api/dto"
	"github.com/patelajay005/Saathi/internal/api/middleware"
	"github.com/patelajay005/Saathi/internal/domain/books"
)

// BooksHandler handles HTTP requests for the reading catalog and library
type BooksHandler struct {
	service books.Service
}

// NewBooksHandler creates a new BooksHandler instance
func NewBooksHandler(service books.Service) *BooksHandler {
	return &BooksHandler{service: service}
}

// ListBooks returns the catalog, optionally filtered by category and
// difficulty
func (h *BooksHandler) ListBooks(c *gin.Context) {
	var filter books.BookFilter
	if raw := c.Query("category"); raw != "" {
		parsed := books.Category(raw)
		filter.Category = &parsed
	}
	if raw := c.Query("difficulty"); raw != "" {
		parsed := books.Difficulty(raw)
		filter.Difficulty = &parsed
	}

	catalog, err := h.service.ListBooks(c.Request.Context(), filter)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, books.ErrInvalidBookInput) {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.BookResponse, 0, len(catalog))
	for i := range catalog {
		responses = append(responses, BookToResponse(&catalog[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}

// GetBook returns a catalog book together with the user's library state
func (h *BooksHandler) GetBook(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	detail, err := h.service.GetBook(c.Request.Context(), id, userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, books.ErrBookNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.BookDetailResponse{
		Book:     BookToResponse(detail.Book),
		UserBook: UserBookToResponse(detail.UserBook),
	}})
}

// AddToLibrary adds a catalog book to the user's library
func (h *BooksHandler) AddToLibrary(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	var req dto.AddBookRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	entry, err := h.service.AddToLibrary(c.Request.Context(), id, userID, books.Status(req.Status))
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, books.ErrBookNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, books.ErrBookAlreadyInLibrary), errors.Is(err, books.ErrInvalidBookInput):
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": UserBookToResponse(entry)})
}

// GetLibrary returns the user's library, optionally by reading status
func (h *BooksHandler) GetLibrary(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var status *books.Status
	if raw := c.Query("status"); raw != "" {
		parsed := books.Status(raw)
		status = &parsed
	}

	entries, err := h.service.GetLibrary(c.Request.Context(), userID, status)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, books.ErrInvalidBookInput) {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.UserBookResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, UserBookToResponse(&entries[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}

// UpdateLibraryEntry edits a library entry's status, progress, rating
// or notes
func (h *BooksHandler) UpdateLibraryEntry(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid library entry ID"})
		return
	}

	var req dto.UpdateUserBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := books.UpdateEntryInput{
		Progress: req.Progress,
		Rating:   req.Rating,
		Notes:    req.Notes,
	}
	if req.Status != nil {
		status := books.Status(*req.Status)
		input.Status = &status
	}

	entry, err := h.service.UpdateLibraryEntry(c.Request.Context(), id, userID, input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, books.ErrUserBookNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, books.ErrInvalidBookInput):
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": UserBookToResponse(entry)})
}

// RemoveFromLibrary deletes a library entry
func (h *BooksHandler) RemoveFromLibrary(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid library entry ID"})
		return
	}

	if err := h.service.RemoveFromLibrary(c.Request.Context(), id, userID); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, books.ErrUserBookNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "book removed from library"})
}

// GetRecommendations suggests unread catalog books
func (h *BooksHandler) GetRecommendations(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recommendations, err := h.service.GetRecommendations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.BookResponse, 0, len(recommendations))
	for i := range recommendations {
		responses = append(responses, BookToResponse(&recommendations[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}
