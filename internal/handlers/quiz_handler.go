package handlers

import (
	"context"
	"fmt"
	"net/http"

	"quizme-service/internal/apperr"
	"quizme-service/internal/models"
	"quizme-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.Service.ListQuizzes(context.Background())
	if err != nil {
		respondError(c, err)
		return
	}
	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.Service.GetQuiz(context.Background(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var quiz models.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		respondError(c, fmt.Errorf("%v: %w", err, apperr.ErrValidation))
		return
	}
	if err := h.Service.CreateQuiz(context.Background(), &quiz); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	var upd service.QuizUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondError(c, fmt.Errorf("%v: %w", err, apperr.ErrValidation))
		return
	}
	id := c.Param("id")
	if err := h.Service.UpdateQuiz(context.Background(), id, upd); err != nil {
		respondError(c, err)
		return
	}
	quiz, err := h.Service.GetQuiz(context.Background(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	if err := h.Service.DeleteQuiz(context.Background(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ShuffledQuiz serves the answering presentation: per-question option order
// re-randomized on every request.
func (h *QuizHandler) ShuffledQuiz(c *gin.Context) {
	pres, err := h.Service.ShuffledQuiz(context.Background(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pres)
}

// Flashcards serves the quiz's questions in a fresh random order.
func (h *QuizHandler) Flashcards(c *gin.Context) {
	questions, err := h.Service.Flashcards(context.Background(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}
