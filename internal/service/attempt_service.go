package service

import (
	"context"
	"fmt"

	"quizme-service/internal/apperr"
	"quizme-service/internal/models"
	"quizme-service/internal/scoring"
)

type AttemptService struct {
	Attempts AttemptStore
	Quizzes  QuizStore
}

func NewAttemptService(attempts AttemptStore, quizzes QuizStore) *AttemptService {
	return &AttemptService{Attempts: attempts, Quizzes: quizzes}
}

// SubmitAnswers runs the full submission path: load the quiz, require every
// question answered, score, persist. The returned attempt carries its
// assigned id and timestamp.
func (s *AttemptService) SubmitAnswers(ctx context.Context, quizID string, userAnswers []string) (*models.Attempt, error) {
	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	for i, ans := range userAnswers {
		if ans == "" {
			return nil, fmt.Errorf("question %d is unanswered: %w", i+1, apperr.ErrValidation)
		}
	}
	attempt, err := scoring.Score(quiz, userAnswers)
	if err != nil {
		return nil, err
	}
	return s.Attempts.Save(ctx, attempt)
}

// RecordAttempt persists an attempt that was scored by the client. The
// repository enforces the required-field rule (quiz_id, result_percentage
// range, answers).
func (s *AttemptService) RecordAttempt(ctx context.Context, attempt *models.Attempt) (*models.Attempt, error) {
	return s.Attempts.Save(ctx, attempt)
}

// ListAttempts returns attempts newest-first, each enriched with its quiz's
// category label. A dangling quiz reference degrades to the deleted-quiz
// sentinel instead of failing the listing.
func (s *AttemptService) ListAttempts(ctx context.Context) ([]models.AttemptSummary, error) {
	attempts, err := s.Attempts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	labels := make(map[string]string, len(attempts))
	summaries := make([]models.AttemptSummary, len(attempts))
	for i, a := range attempts {
		label, ok := labels[a.QuizID]
		if !ok {
			if quiz, err := s.Quizzes.FindByID(ctx, a.QuizID); err == nil {
				label = quiz.Category
			} else {
				label = models.DeletedQuizLabel
			}
			labels[a.QuizID] = label
		}
		summaries[i] = models.AttemptSummary{Attempt: a, QuizCategory: label}
	}
	return summaries, nil
}

func (s *AttemptService) GetAttempt(ctx context.Context, id string) (*models.Attempt, error) {
	return s.Attempts.FindByID(ctx, id)
}
