package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"quizme-service/internal/apperr"
	"quizme-service/internal/models"
	"quizme-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	Service *service.AttemptService
	Reviews *service.ReviewService
}

func NewAttemptHandler(s *service.AttemptService, r *service.ReviewService) *AttemptHandler {
	return &AttemptHandler{Service: s, Reviews: r}
}

// SubmitQuiz scores a completed answer sheet against the quiz and persists
// the resulting attempt. Navigation to review should wait for this response.
func (h *AttemptHandler) SubmitQuiz(c *gin.Context) {
	var req struct {
		Answers []string `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%v: %w", err, apperr.ErrValidation))
		return
	}
	attempt, err := h.Service.SubmitAnswers(context.Background(), c.Param("id"), req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attempt)
}

// RecordAttempt accepts a client-scored attempt, the original submission
// surface: quiz_id, result_percentage and answers are all required.
func (h *AttemptHandler) RecordAttempt(c *gin.Context) {
	var req struct {
		QuizID           string                 `json:"quiz_id" binding:"required"`
		ResultPercentage *int                   `json:"result_percentage" binding:"required"`
		Answers          []models.AttemptAnswer `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("missing required attempt data: %v: %w", err, apperr.ErrValidation))
		return
	}
	attempt := &models.Attempt{
		QuizID:           req.QuizID,
		ResultPercentage: *req.ResultPercentage,
		Answers:          req.Answers,
	}
	saved, err := h.Service.RecordAttempt(context.Background(), attempt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	summaries, err := h.Service.ListAttempts(context.Background())
	if err != nil {
		respondError(c, err)
		return
	}
	if summaries == nil {
		summaries = []models.AttemptSummary{}
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	attempt, err := h.Service.GetAttempt(context.Background(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// GetReview re-hydrates an attempt for review. When the referenced quiz has
// been deleted the snapshot-based review is still served, flagged, rather
// than failing the whole screen.
func (h *AttemptHandler) GetReview(c *gin.Context) {
	review, err := h.Reviews.BuildReview(context.Background(), c.Param("id"))
	if err != nil && !errors.Is(err, apperr.ErrQuizMissing) {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}
