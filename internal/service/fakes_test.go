package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"quizme-service/internal/apperr"
	"quizme-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// In-memory stands-ins for the mongo repositories, mirroring their
// contracts: id assignment, newest-first listing, sentinel errors.

type fakeQuizStore struct {
	mu      sync.Mutex
	quizzes map[string]models.Quiz
	nextID  int
	failAll bool
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{quizzes: make(map[string]models.Quiz)}
}

func (s *fakeQuizStore) FindAll(ctx context.Context) ([]models.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Quiz
	for _, q := range s.quizzes {
		out = append(out, q)
	}
	return out, nil
}

func (s *fakeQuizStore) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, fmt.Errorf("store down: %w", apperr.ErrPersistence)
	}
	q, ok := s.quizzes[id]
	if !ok {
		return nil, fmt.Errorf("quiz %s: %w", id, apperr.ErrNotFound)
	}
	return &q, nil
}

func (s *fakeQuizStore) Create(ctx context.Context, quiz *models.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	quiz.ID = fmt.Sprintf("quiz-%d", s.nextID)
	quiz.CreatedAt = time.Now().UTC()
	quiz.UpdatedAt = quiz.CreatedAt
	s.quizzes[quiz.ID] = *quiz
	return nil
}

func (s *fakeQuizStore) Update(ctx context.Context, id string, update bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	quiz, ok := s.quizzes[id]
	if !ok {
		return fmt.Errorf("quiz %s: %w", id, apperr.ErrNotFound)
	}
	if cat, ok := update["category"].(string); ok {
		quiz.Category = cat
	}
	if qs, ok := update["questions"].([]models.Question); ok {
		quiz.Questions = qs
	}
	s.quizzes[id] = quiz
	return nil
}

func (s *fakeQuizStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quizzes[id]; !ok {
		return fmt.Errorf("quiz %s: %w", id, apperr.ErrNotFound)
	}
	delete(s.quizzes, id)
	return nil
}

type fakeAttemptStore struct {
	mu       sync.Mutex
	attempts []models.Attempt
	nextID   int
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{}
}

func (s *fakeAttemptStore) Save(ctx context.Context, attempt *models.Attempt) (*models.Attempt, error) {
	if attempt.QuizID == "" || len(attempt.Answers) == 0 {
		return nil, fmt.Errorf("attempt requires quiz_id and answers: %w", apperr.ErrValidation)
	}
	if attempt.ResultPercentage < 0 || attempt.ResultPercentage > 100 {
		return nil, fmt.Errorf("result_percentage out of range: %w", apperr.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	attempt.ID = fmt.Sprintf("attempt-%d", s.nextID)
	// Monotonic timestamps so newest-first ordering is deterministic.
	attempt.CreatedAt = time.Unix(int64(1700000000+s.nextID), 0).UTC()
	stored := *attempt
	stored.Answers = append([]models.AttemptAnswer(nil), attempt.Answers...)
	s.attempts = append(s.attempts, stored)
	return attempt, nil
}

func (s *fakeAttemptStore) FindAll(ctx context.Context) ([]models.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Attempt, len(s.attempts))
	for i, a := range s.attempts {
		out[len(s.attempts)-1-i] = a // newest first
	}
	return out, nil
}

func (s *fakeAttemptStore) FindByID(ctx context.Context, id string) (*models.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.attempts {
		if a.ID == id {
			found := a
			found.Answers = append([]models.AttemptAnswer(nil), a.Answers...)
			return &found, nil
		}
	}
	return nil, fmt.Errorf("attempt %s: %w", id, apperr.ErrNotFound)
}
