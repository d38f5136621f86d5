package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"quizme-service/internal/apperr"
	"quizme-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	Sessions *service.ReviewSessionManager
}

func NewReviewHandler(sessions *service.ReviewSessionManager) *ReviewHandler {
	return &ReviewHandler{Sessions: sessions}
}

// OpenSession starts a review session over an attempt. Explanations fetched
// during the session are cached in it and discarded when it closes.
func (h *ReviewHandler) OpenSession(c *gin.Context) {
	var req struct {
		AttemptID string `json:"attempt_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%v: %w", err, apperr.ErrValidation))
		return
	}
	session, err := h.Sessions.Open(context.Background(), req.AttemptID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ToggleExplanation flips one question's explanation: hidden questions are
// fetched and shown, shown ones are hidden, loading ones are left alone.
func (h *ReviewHandler) ToggleExplanation(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, fmt.Errorf("invalid question index %q: %w", c.Param("index"), apperr.ErrValidation))
		return
	}
	result, err := h.Sessions.Toggle(context.Background(), c.Param("id"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ReviewHandler) CloseSession(c *gin.Context) {
	if err := h.Sessions.Close(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
