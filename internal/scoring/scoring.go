// Package scoring turns a completed answer sheet into an attempt record.
package scoring

import (
	"fmt"
	"math"

	"quizme-service/internal/apperr"
	"quizme-service/internal/models"
	"quizme-service/internal/normalize"
)

// Score compares the user's answers against the quiz and builds the attempt
// record ready for persistence: a per-question snapshot plus the overall
// percentage, rounded half-up. It does not persist anything.
//
// Preconditions (caller contract, reported as validation errors): the quiz
// has at least one question and userAnswers has exactly one entry per
// question.
func Score(quiz *models.Quiz, userAnswers []string) (*models.Attempt, error) {
	total := len(quiz.Questions)
	if total == 0 {
		return nil, fmt.Errorf("quiz %s has no questions: %w", quiz.ID, apperr.ErrValidation)
	}
	if len(userAnswers) != total {
		return nil, fmt.Errorf("got %d answers for %d questions: %w",
			len(userAnswers), total, apperr.ErrValidation)
	}

	answers := make([]models.AttemptAnswer, total)
	correctCount := 0
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		isCorrect := normalize.Equal(userAnswers[i], q.CorrectAnswer)
		if isCorrect {
			correctCount++
		}
		answers[i] = models.AttemptAnswer{
			QuestionNumber: q.QuestionNumber,
			QuestionString: q.QuestionString,
			UserAnswer:     userAnswers[i],
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      isCorrect,
		}
	}

	return &models.Attempt{
		QuizID:           quiz.ID,
		ResultPercentage: Percentage(correctCount, total),
		Answers:          answers,
	}, nil
}

// Percentage is round-half-up of 100*correct/total.
func Percentage(correct, total int) int {
	return int(math.Floor(100*float64(correct)/float64(total) + 0.5))
}
