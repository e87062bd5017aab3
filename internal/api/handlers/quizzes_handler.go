package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patelajay005/Saathi/internal/api/dto"
	"github.com/patelajay005/Saathi/internal/api/middleware"
	"github.com/patelajay005/Saathi/internal/domain/quizzes"
)

// QuizzesHandler handles HTTP requests for self-assessment quizzes
type QuizzesHandler struct {
	service quizzes.Service
}

// NewQuizzesHandler creates a new QuizzesHandler instance
func NewQuizzesHandler(service quizzes.Service) *QuizzesHandler {
	return &QuizzesHandler{service: service}
}

// ListQuizzes returns the quiz catalog, optionally by category
func (h *QuizzesHandler) ListQuizzes(c *gin.Context) {
	var category *quizzes.Category
	if raw := c.Query("category"); raw != "" {
		parsed := quizzes.Category(raw)
		if !parsed.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz category"})
			return
		}
		category = &parsed
	}

	catalog, err := h.service.ListQuizzes(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.QuizResponse, 0, len(catalog))
	for i := range catalog {
		responses = append(responses, QuizToResponse(&catalog[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}

// GetQuiz returns a single quiz with its questions
func (h *QuizzesHandler) GetQuiz(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz ID"})
		return
	}

	quiz, err := h.service.GetQuiz(c.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, quizzes.ErrQuizNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": QuizToResponse(quiz)})
}

// SubmitQuiz grades and stores the user's answers
func (h *QuizzesHandler) SubmitQuiz(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz ID"})
		return
	}

	var req dto.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answers := make([]quizzes.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, quizzes.Answer{QuestionID: a.QuestionID, Value: a.Value})
	}

	outcome, err := h.service.Submit(c.Request.Context(), id, userID, answers)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, quizzes.ErrQuizNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitQuizResponse{
		Message:  fmt.Sprintf("Quiz completed! +%d XP", outcome.XPEarned),
		Result:   QuizResultToResponse(outcome.Result),
		XPEarned: outcome.XPEarned,
	})
}

// GetHistory returns the user's past attempts, newest first
func (h *QuizzesHandler) GetHistory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	results, err := h.service.GetHistory(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.QuizResultResponse, 0, len(results))
	for i := range results {
		responses = append(responses, QuizResultToResponse(&results[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}

// GetResult returns one of the user's past attempts
func (h *QuizzesHandler) GetResult(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid result ID"})
		return
	}

	result, err := h.service.GetResult(c.Request.Context(), id, userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, quizzes.ErrResultNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": QuizResultToResponse(result)})
}
