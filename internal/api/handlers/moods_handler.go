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
	"github.com/patelajay005/Saathi/internal/domain/moods"
)

// MoodsHandler handles HTTP requests for mood tracking
type MoodsHandler struct {
	service moods.Service
	loc     *time.Location
}

// NewMoodsHandler creates a new MoodsHandler instance. Date parameters
// are interpreted as calendar days in loc.
func NewMoodsHandler(service moods.Service, loc *time.Location) *MoodsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &MoodsHandler{service: service, loc: loc}
}

// LogMood records a new mood entry
func (h *MoodsHandler) LogMood(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mood, err := h.service.LogMood(c.Request.Context(), userID, moods.LogMoodInput{
		Score:      req.Score,
		Emotion:    moods.Emotion(req.Emotion),
		Notes:      req.Notes,
		Triggers:   req.Triggers,
		Activities: req.Activities,
		TimeOfDay:  req.TimeOfDay,
		SleepHours: req.SleepHours,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, moods.ErrInvalidMood) {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": MoodToResponse(mood)})
}

// GetHistory returns the user's mood history, newest first
func (h *MoodsHandler) GetHistory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var query dto.MoodHistoryFilter
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := moods.MoodFilter{UserID: userID, Limit: query.Limit}
	if query.StartDate != "" {
		start, err := parseDateParam(query.StartDate, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return
		}
		filter.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := parseDateParam(query.EndDate, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		filter.EndDate = &end
	}

	entries, err := h.service.GetHistory(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.MoodResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, MoodToResponse(&entries[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}

// GetToday returns today's mood entries
func (h *MoodsHandler) GetToday(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	entries, err := h.service.GetToday(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.MoodResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, MoodToResponse(&entries[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}

// GetStats returns aggregate mood statistics over a lookback period
func (h *MoodsHandler) GetStats(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	periodDays := 0
	if raw := c.Query("period"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
			return
		}
		periodDays = parsed
	}

	stats, err := h.service.GetStats(c.Request.Context(), userID, periodDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.MoodStatsResponse{
		AverageScore:     stats.AverageScore,
		TotalEntries:     stats.TotalEntries,
		EmotionBreakdown: stats.EmotionBreakdown,
		Trend:            stats.Trend,
		PeriodDays:       stats.PeriodDays,
	}})
}

// UpdateMood edits an existing mood entry
func (h *MoodsHandler) UpdateMood(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mood ID"})
		return
	}

	var req dto.UpdateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := moods.UpdateMoodInput{
		Score:      req.Score,
		Notes:      req.Notes,
		Triggers:   req.Triggers,
		Activities: req.Activities,
	}
	if req.Emotion != nil {
		emotion := moods.Emotion(*req.Emotion)
		input.Emotion = &emotion
	}

	mood, err := h.service.UpdateMood(c.Request.Context(), id, userID, input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, moods.ErrMoodNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, moods.ErrInvalidMood):
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": MoodToResponse(mood)})
}

// DeleteMood removes a mood entry
func (h *MoodsHandler) DeleteMood(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mood ID"})
		return
	}

	if err := h.service.DeleteMood(c.Request.Context(), id, userID); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, moods.ErrMoodNotFound) {
			statusCode = http.StatusNotFound
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "mood entry deleted successfully"})
}
