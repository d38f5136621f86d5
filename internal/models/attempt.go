package models

import "time"

// AttemptAnswer is one question's outcome, snapshotted into the attempt at
// submission time. Later edits or deletion of the quiz never touch it.
type AttemptAnswer struct {
	QuestionNumber int    `bson:"question_number" json:"question_number"`
	QuestionString string `bson:"question_string" json:"question_string"`
	UserAnswer     string `bson:"user_answer" json:"user_answer"`
	CorrectAnswer  string `bson:"correct_answer" json:"correct_answer"`
	IsCorrect      bool   `bson:"is_correct" json:"is_correct"`
}

// Attempt is the immutable record of one quiz-taking session. It holds a
// weak reference to the quiz (id only) and owns its embedded answers.
type Attempt struct {
	ID               string          `bson:"_id,omitempty" json:"id"`
	QuizID           string          `bson:"quiz_id" json:"quiz_id"`
	ResultPercentage int             `bson:"result_percentage" json:"result_percentage"`
	Answers          []AttemptAnswer `bson:"answers" json:"answers"`
	CreatedAt        time.Time       `bson:"created_at" json:"created_at"`
}

// DeletedQuizLabel is the sentinel shown in listings when the quiz an
// attempt references no longer exists.
const DeletedQuizLabel = "Deleted quiz"

// AttemptSummary is a listing row: the attempt plus the referenced quiz's
// display label, resolved at read time.
type AttemptSummary struct {
	Attempt      `bson:",inline"`
	QuizCategory string `bson:"-" json:"quiz_category"`
}
