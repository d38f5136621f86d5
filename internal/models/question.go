package models

import (
	"fmt"

	"quizme-service/internal/apperr"
	"quizme-service/internal/normalize"
)

// Question is a single multiple-choice question embedded in a quiz.
// Exactly one correct answer and exactly two incorrect ones.
type Question struct {
	QuestionNumber   int      `bson:"question_number" json:"question_number"`
	QuestionString   string   `bson:"question_string" json:"question_string" binding:"required"`
	CorrectAnswer    string   `bson:"correct_answer" json:"correct_answer" binding:"required"`
	IncorrectAnswers []string `bson:"incorrect_answers" json:"incorrect_answers" binding:"required"`
}

// IncorrectAnswerCount is the number of distractors every question carries.
const IncorrectAnswerCount = 2

// Options returns the full option set, correct answer first. Callers that
// present options to a user shuffle this; the canonical order is only for
// scoring and explanation prompts.
func (q *Question) Options() []string {
	opts := make([]string, 0, 1+len(q.IncorrectAnswers))
	opts = append(opts, q.CorrectAnswer)
	opts = append(opts, q.IncorrectAnswers...)
	return opts
}

// Validate checks the question invariants: exactly two incorrect answers,
// and all three answer strings distinct once normalized.
func (q *Question) Validate() error {
	if q.QuestionString == "" {
		return fmt.Errorf("question %d has no text: %w", q.QuestionNumber, apperr.ErrValidation)
	}
	if len(q.IncorrectAnswers) != IncorrectAnswerCount {
		return fmt.Errorf("question %d has %d incorrect answers, must be %d: %w",
			q.QuestionNumber, len(q.IncorrectAnswers), IncorrectAnswerCount, apperr.ErrValidation)
	}
	seen := map[string]bool{normalize.Normalize(q.CorrectAnswer): true}
	for _, ans := range q.IncorrectAnswers {
		key := normalize.Normalize(ans)
		if seen[key] {
			return fmt.Errorf("question %d has duplicate answer %q after normalization: %w",
				q.QuestionNumber, ans, apperr.ErrValidation)
		}
		seen[key] = true
	}
	return nil
}
