package handlers

import (
	"errors"
	"net/http"

	"quizme-service/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy to HTTP status codes and a
// stable machine-readable code alongside the message.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL"
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
		code = "VALIDATION_FAILED"
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
	case errors.Is(err, apperr.ErrQuizMissing):
		status = http.StatusConflict
		code = "QUIZ_MISSING"
	case errors.Is(err, apperr.ErrPersistence):
		status = http.StatusInternalServerError
		code = "PERSISTENCE_FAILURE"
	case errors.Is(err, apperr.ErrService):
		status = http.StatusBadGateway
		code = "SERVICE_FAILURE"
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
		"code":  code,
	})
}
