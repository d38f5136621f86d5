package models

import (
	"errors"
	"testing"

	"quizme-service/internal/apperr"
)

func validQuiz() *Quiz {
	return &Quiz{
		Category: "Geo",
		Questions: []Question{
			{
				QuestionNumber:   1,
				QuestionString:   "Capital of Vietnam?",
				CorrectAnswer:    "Hanoi",
				IncorrectAnswers: []string{"Da Nang", "Hue"},
			},
		},
	}
}

func TestQuizValidate(t *testing.T) {
	if err := validQuiz().Validate(); err != nil {
		t.Fatalf("valid quiz rejected: %v", err)
	}

	testCases := []struct {
		name   string
		mutate func(*Quiz)
	}{
		{"no category", func(q *Quiz) { q.Category = "" }},
		{"no questions", func(q *Quiz) { q.Questions = nil }},
		{"no question text", func(q *Quiz) { q.Questions[0].QuestionString = "" }},
		{"one incorrect answer", func(q *Quiz) { q.Questions[0].IncorrectAnswers = []string{"Hue"} }},
		{"three incorrect answers", func(q *Quiz) {
			q.Questions[0].IncorrectAnswers = []string{"Hue", "Da Nang", "Hoi An"}
		}},
		{"duplicate after normalization", func(q *Quiz) {
			q.Questions[0].IncorrectAnswers = []string{"HANOI ", "Hue"}
		}},
		{"duplicate incorrect answers", func(q *Quiz) {
			q.Questions[0].IncorrectAnswers = []string{"Hue", "hue"}
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quiz := validQuiz()
			tc.mutate(quiz)
			err := quiz.Validate()
			if !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestQuestionOptions(t *testing.T) {
	q := validQuiz().Questions[0]
	opts := q.Options()
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	if opts[0] != "Hanoi" {
		t.Errorf("expected correct answer first in canonical order, got %q", opts[0])
	}
}
