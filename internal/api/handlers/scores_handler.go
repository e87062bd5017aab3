package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/patelajay005/Saathi/internal/api/dto"
	"github.com/patelajay005/Saathi/internal/api/middleware"
	"github.com/patelajay005/Saathi/internal/domain/scores"
)

// ScoresHandler handles HTTP requests for daily wellness scores
type ScoresHandler struct {
	service scores.Service
	loc     *time.Location
}

// NewScoresHandler creates a new ScoresHandler instance. Date parameters
// are interpreted as calendar days in loc.
func NewScoresHandler(service scores.Service, loc *time.Location) *ScoresHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ScoresHandler{service: service, loc: loc}
}

// Calculate recomputes the score for the given (or current) day
func (h *ScoresHandler) Calculate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CalculateScoreRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseDateParam(req.Date, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	score, err := h.service.ComputeDailyScore(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "daily score calculated", "data": ScoreToResponse(score)})
}

// GetToday returns today's score, computing it on first access
func (h *ScoresHandler) GetToday(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	score, err := h.service.GetOrCompute(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ScoreToResponse(score)})
}

// GetByDate returns the score for a specific day, computing it on first access
func (h *ScoresHandler) GetByDate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	date, err := parseDateParam(c.Param("date"), h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	score, err := h.service.GetOrCompute(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ScoreToResponse(score)})
}

// GetHistory returns stored scores, newest first
func (h *ScoresHandler) GetHistory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var query dto.ScoreHistoryFilter
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var start, end *time.Time
	if query.StartDate != "" {
		parsed, err := parseDateParam(query.StartDate, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return
		}
		start = &parsed
	}
	if query.EndDate != "" {
		parsed, err := parseDateParam(query.EndDate, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		end = &parsed
	}

	history, err := h.service.History(c.Request.Context(), userID, start, end, query.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*dto.ScoreResponse, 0, len(history))
	for i := range history {
		responses = append(responses, ScoreToResponse(&history[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}

// GetStats returns aggregate score statistics for a period
func (h *ScoresHandler) GetStats(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"data": ScoreStatsToResponse(stats)})
}
