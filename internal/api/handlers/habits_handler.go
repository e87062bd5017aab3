package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patelajay005/Saathi/internal/api/dto"
	"github.com/patelajay005/Saathi/internal/api/middleware"
	"github.com/patelajay005/Saathi/internal/domain/habits"
)

// HabitsHandler handles HTTP requests for habits operations
type HabitsHandler struct {
	service habits.Service
}

// NewHabitsHandler creates a new HabitsHandler instance
func NewHabitsHandler(service habits.Service) *HabitsHandler {
	return &HabitsHandler{service: service}
}

// CreateHabit creates a new habit for the authenticated user
func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.service.CreateHabit(c.Request.Context(), userID, habits.CreateHabitInput{
		Name:         req.Name,
		Description:  req.Description,
		Category:     habits.Category(req.Category),
		Frequency:    habits.Frequency(req.Frequency),
		TargetDays:   req.TargetDays,
		ReminderTime: req.ReminderTime,
		Color:        req.Color,
		Icon:         req.Icon,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrInvalidInput) {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": HabitToResponse(habit, time.Now())})
}

// GetHabit returns a single habit owned by the authenticated user
func (h *HabitsHandler) GetHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit ID"})
		return
	}

	habit, err := h.service.GetHabit(c.Request.Context(), id, userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrHabitNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": HabitToResponse(habit, time.Now())})
}

// ListHabits returns the authenticated user's habits
func (h *HabitsHandler) ListHabits(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var isActive *bool
	if raw := c.Query("is_active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_active filter"})
			return
		}
		isActive = &parsed
	}

	userHabits, err := h.service.ListHabits(c.Request.Context(), userID, isActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	responses := make([]*dto.HabitResponse, 0, len(userHabits))
	for i := range userHabits {
		responses = append(responses, HabitToResponse(&userHabits[i], now))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}

// UpdateHabit updates a habit owned by the authenticated user
func (h *HabitsHandler) UpdateHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit ID"})
		return
	}

	var req dto.UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := habits.UpdateHabitInput{
		Name:         req.Name,
		Description:  req.Description,
		TargetDays:   req.TargetDays,
		ReminderTime: req.ReminderTime,
		Color:        req.Color,
		Icon:         req.Icon,
		IsActive:     req.IsActive,
	}
	if req.Category != nil {
		category := habits.Category(*req.Category)
		input.Category = &category
	}
	if req.Frequency != nil {
		frequency := habits.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}

	habit, err := h.service.UpdateHabit(c.Request.Context(), id, userID, input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, habits.ErrHabitNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, habits.ErrInvalidInput):
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": HabitToResponse(habit, time.Now())})
}

// DeleteHabit removes a habit owned by the authenticated user
func (h *HabitsHandler) DeleteHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit ID"})
		return
	}

	if err := h.service.DeleteHabit(c.Request.Context(), id, userID); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrHabitNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "habit deleted successfully"})
}

// CompleteHabit marks a habit complete for today. Completing an already
// completed habit is a no-op and reports already_completed.
func (h *HabitsHandler) CompleteHabit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit ID"})
		return
	}

	var req dto.CompleteHabitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	outcome, err := h.service.RecordCompletion(c.Request.Context(), id, userID, req.Notes)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrHabitNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": CompletionOutcomeToResponse(outcome)})
}

// GetHabitStats returns streak and completion-rate statistics for a habit
func (h *HabitsHandler) GetHabitStats(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit ID"})
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), id, userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, habits.ErrHabitNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.HabitStatsResponse{
		CurrentStreak:     stats.CurrentStreak,
		BestStreak:        stats.BestStreak,
		TotalCompletions:  stats.TotalCompletions,
		CompletionRate:    stats.CompletionRate,
		RecentCompletions: stats.RecentCompletions,
		CreatedDaysAgo:    stats.CreatedDaysAgo,
	}})
}
