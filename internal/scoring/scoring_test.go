package scoring

import (
	"errors"
	"testing"

	"quizme-service/internal/apperr"
	"quizme-service/internal/models"
)

func geoQuiz() *models.Quiz {
	return &models.Quiz{
		ID:       "quiz-geo",
		Category: "Geo",
		Questions: []models.Question{
			{
				QuestionNumber:   1,
				QuestionString:   "Capital of Vietnam?",
				CorrectAnswer:    "Hanoi",
				IncorrectAnswers: []string{"Da Nang", "Hue"},
			},
		},
	}
}

func TestScoreCorrectAnswerNormalized(t *testing.T) {
	attempt, err := Score(geoQuiz(), []string{"hanoi "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempt.ResultPercentage != 100 {
		t.Errorf("expected 100%%, got %d", attempt.ResultPercentage)
	}
	if !attempt.Answers[0].IsCorrect {
		t.Error("expected answers[0].IsCorrect to be true")
	}
	if attempt.Answers[0].UserAnswer != "hanoi " {
		t.Errorf("snapshot should keep the original answer, got %q", attempt.Answers[0].UserAnswer)
	}
	if attempt.QuizID != "quiz-geo" {
		t.Errorf("expected quiz reference to be carried, got %q", attempt.QuizID)
	}
}

func TestScoreWrongAnswer(t *testing.T) {
	attempt, err := Score(geoQuiz(), []string{"Da Nang"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempt.ResultPercentage != 0 {
		t.Errorf("expected 0%%, got %d", attempt.ResultPercentage)
	}
	if attempt.Answers[0].IsCorrect {
		t.Error("expected answers[0].IsCorrect to be false")
	}
}

func TestScoreSnapshotsEveryQuestion(t *testing.T) {
	quiz := &models.Quiz{
		ID:       "quiz-2",
		Category: "Mixed",
		Questions: []models.Question{
			{QuestionNumber: 1, QuestionString: "1+1?", CorrectAnswer: "2", IncorrectAnswers: []string{"3", "4"}},
			{QuestionNumber: 2, QuestionString: "2+2?", CorrectAnswer: "4", IncorrectAnswers: []string{"3", "5"}},
			{QuestionNumber: 3, QuestionString: "3+3?", CorrectAnswer: "6", IncorrectAnswers: []string{"5", "7"}},
		},
	}
	attempt, err := Score(quiz, []string{"2", "5", "6"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attempt.Answers) != 3 {
		t.Fatalf("expected 3 snapshot answers, got %d", len(attempt.Answers))
	}
	if attempt.ResultPercentage != 67 {
		t.Errorf("expected 2/3 to round to 67, got %d", attempt.ResultPercentage)
	}
	wantCorrect := []bool{true, false, true}
	for i, a := range attempt.Answers {
		if a.IsCorrect != wantCorrect[i] {
			t.Errorf("answers[%d].IsCorrect = %v, want %v", i, a.IsCorrect, wantCorrect[i])
		}
		if a.QuestionString != quiz.Questions[i].QuestionString {
			t.Errorf("answers[%d] snapshot lost question text", i)
		}
	}
}

func TestScorePreconditions(t *testing.T) {
	quiz := geoQuiz()

	if _, err := Score(quiz, []string{"a", "b"}); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("answer count mismatch: expected validation error, got %v", err)
	}

	empty := &models.Quiz{ID: "quiz-empty", Category: "Empty"}
	if _, err := Score(empty, nil); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("zero questions: expected validation error, got %v", err)
	}
}

func TestPercentageRoundsHalfUp(t *testing.T) {
	testCases := []struct {
		correct, total, expected int
	}{
		{0, 1, 0},
		{1, 1, 100},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},  // 12.5 rounds up
		{3, 8, 38},  // 37.5 rounds up
		{1, 6, 17},  // 16.66...
		{5, 7, 71},  // 71.42...
		{7, 40, 18}, // 17.5 rounds up
	}
	for _, tc := range testCases {
		if got := Percentage(tc.correct, tc.total); got != tc.expected {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.expected)
		}
	}
}
