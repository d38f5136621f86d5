package service

import (
	"context"
	"errors"
	"testing"

	"quizme-service/internal/apperr"
	"quizme-service/internal/models"
)

func TestCreateQuizValidatesAndNumbers(t *testing.T) {
	quizzes := newFakeQuizStore()
	svc := NewQuizService(quizzes)

	quiz := &models.Quiz{
		Category: "Geo",
		Questions: []models.Question{
			{QuestionString: "Capital of Vietnam?", CorrectAnswer: "Hanoi", IncorrectAnswers: []string{"Da Nang", "Hue"}},
			{QuestionString: "Capital of France?", CorrectAnswer: "Paris", IncorrectAnswers: []string{"Lyon", "Nice"}},
		},
	}
	if err := svc.CreateQuiz(context.Background(), quiz); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quiz.ID == "" {
		t.Error("created quiz has no id")
	}
	if quiz.Questions[0].QuestionNumber != 1 || quiz.Questions[1].QuestionNumber != 2 {
		t.Errorf("expected assigned question numbers, got %d and %d",
			quiz.Questions[0].QuestionNumber, quiz.Questions[1].QuestionNumber)
	}

	bad := &models.Quiz{
		Category: "Geo",
		Questions: []models.Question{
			{QuestionString: "Capital?", CorrectAnswer: "Hanoi", IncorrectAnswers: []string{"Hue"}},
		},
	}
	if err := svc.CreateQuiz(context.Background(), bad); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestShuffledQuizHidesNothingButOrder(t *testing.T) {
	quizzes := newFakeQuizStore()
	svc := NewQuizService(quizzes)
	quiz := seedQuiz(t, quizzes)

	pres, err := svc.ShuffledQuiz(context.Background(), quiz.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pres.Questions) != len(quiz.Questions) {
		t.Fatalf("expected %d questions, got %d", len(quiz.Questions), len(pres.Questions))
	}
	for i, pq := range pres.Questions {
		if len(pq.Options) != 3 {
			t.Errorf("question %d: expected 3 options, got %d", i, len(pq.Options))
		}
		found := false
		for _, o := range pq.Options {
			if o == quiz.Questions[i].CorrectAnswer {
				found = true
			}
		}
		if !found {
			t.Errorf("question %d: correct answer missing from options %v", i, pq.Options)
		}
	}
}

func TestFlashcardsReturnsAllQuestions(t *testing.T) {
	quizzes := newFakeQuizStore()
	svc := NewQuizService(quizzes)
	quiz := seedQuiz(t, quizzes)

	cards, err := svc.Flashcards(context.Background(), quiz.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != len(quiz.Questions) {
		t.Fatalf("expected %d cards, got %d", len(quiz.Questions), len(cards))
	}

	if _, err := svc.Flashcards(context.Background(), "missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestUpdateQuizValidatesQuestions(t *testing.T) {
	quizzes := newFakeQuizStore()
	svc := NewQuizService(quizzes)
	quiz := seedQuiz(t, quizzes)

	err := svc.UpdateQuiz(context.Background(), quiz.ID, QuizUpdate{
		Questions: []models.Question{
			{QuestionString: "Capital?", CorrectAnswer: "Hanoi", IncorrectAnswers: []string{"Hanoi ", "Hue"}},
		},
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("expected validation error for duplicate answers, got %v", err)
	}

	newCategory := "Geography"
	if err := svc.UpdateQuiz(context.Background(), quiz.ID, QuizUpdate{Category: &newCategory}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	updated, err := svc.GetQuiz(context.Background(), quiz.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Category != "Geography" {
		t.Errorf("expected updated category, got %q", updated.Category)
	}
}
