package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patelajay005/Saathi/internal/api/dto"
	"github.com/patelajay005/Saathi/internal/api/middleware"
	"github.com/patelajay005/Saathi/internal/domain/exercises"
)

// ExercisesHandler handles HTTP requests for the exercise catalog and logs
type ExercisesHandler struct {
	service exercises.Service
}

// NewExercisesHandler creates a new ExercisesHandler instance
func NewExercisesHandler(service exercises.Service) *ExercisesHandler {
	return &ExercisesHandler{service: service}
}

// ListExercises returns the exercise catalog, optionally by category
func (h *ExercisesHandler) ListExercises(c *gin.Context) {
	var category *exercises.Category
	if raw := c.Query("category"); raw != "" {
		parsed := exercises.Category(raw)
		category = &parsed
	}

	catalog, err := h.service.ListExercises(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.ExerciseResponse, 0, len(catalog))
	for i := range catalog {
		responses = append(responses, ExerciseToResponse(&catalog[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}

// GetExercise returns a single catalog exercise
func (h *ExercisesHandler) GetExercise(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exercise ID"})
		return
	}

	exercise, err := h.service.GetExercise(c.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ExerciseToResponse(exercise)})
}

// CompleteExercise logs a finished exercise for the authenticated user
func (h *ExercisesHandler) CompleteExercise(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exercise ID"})
		return
	}

	var req dto.CompleteExerciseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	entry, err := h.service.CompleteExercise(c.Request.Context(), id, userID, exercises.CompleteInput{
		Duration:   req.Duration,
		Rating:     req.Rating,
		MoodBefore: req.MoodBefore,
		MoodAfter:  req.MoodAfter,
		Notes:      req.Notes,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, exercises.ErrExerciseNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, exercises.ErrInvalidLog):
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": ExerciseLogToResponse(entry)})
}

// GetLogs returns the user's exercise log, newest first
func (h *ExercisesHandler) GetLogs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	logs, err := h.service.GetLogs(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.ExerciseLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, ExerciseLogToResponse(&logs[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}
