package service

import (
	"context"
	"errors"
	"fmt"

	"quizme-service/internal/apperr"
	"quizme-service/internal/models"
	"quizme-service/internal/normalize"
)

type ReviewService struct {
	Attempts AttemptStore
	Quizzes  QuizStore
}

func NewReviewService(attempts AttemptStore, quizzes QuizStore) *ReviewService {
	return &ReviewService{Attempts: attempts, Quizzes: quizzes}
}

// BuildReview re-hydrates a stored attempt for display. Correctness flags
// are re-derived from the snapshot through the normalizer rather than read
// from the stored is_correct field, so attempts recorded under an older
// normalization rule display consistently with current scoring.
//
// When the referenced quiz has been deleted the review is still built from
// the snapshot (Quiz nil, QuizMissing set) and the error wraps
// apperr.ErrQuizMissing so callers can tell this apart from a missing
// attempt and choose their own degrade policy.
func (s *ReviewService) BuildReview(ctx context.Context, attemptID string) (*models.Review, error) {
	attempt, err := s.Attempts.FindByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		AttemptID:        attempt.ID,
		ResultPercentage: attempt.ResultPercentage,
		Answers:          make([]models.ReviewAnswer, len(attempt.Answers)),
	}
	for i, a := range attempt.Answers {
		review.Answers[i] = models.ReviewAnswer{
			QuestionNumber: a.QuestionNumber,
			QuestionString: a.QuestionString,
			UserAnswer:     a.UserAnswer,
			CorrectAnswer:  a.CorrectAnswer,
			IsCorrect:      normalize.Equal(a.UserAnswer, a.CorrectAnswer),
		}
	}

	quiz, err := s.Quizzes.FindByID(ctx, attempt.QuizID)
	if errors.Is(err, apperr.ErrNotFound) {
		review.QuizMissing = true
		return review, fmt.Errorf("attempt %s references quiz %s: %w",
			attempt.ID, attempt.QuizID, apperr.ErrQuizMissing)
	}
	if err != nil {
		return nil, err
	}

	review.Quiz = quiz
	byNumber := make(map[int]*models.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		byNumber[quiz.Questions[i].QuestionNumber] = &quiz.Questions[i]
	}
	for i := range review.Answers {
		if q, ok := byNumber[review.Answers[i].QuestionNumber]; ok {
			review.Answers[i].Options = q.Options()
		}
	}
	return review, nil
}
