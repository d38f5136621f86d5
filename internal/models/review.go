package models

// ReviewAnswer is one question's row on the review screen. IsCorrect is
// re-derived from the snapshot at build time rather than read from the
// stored flag, so attempts recorded under an older normalization rule still
// display consistently.
type ReviewAnswer struct {
	QuestionNumber int      `json:"question_number"`
	QuestionString string   `json:"question_string"`
	UserAnswer     string   `json:"user_answer"`
	CorrectAnswer  string   `json:"correct_answer"`
	IsCorrect      bool     `json:"is_correct"`
	Options        []string `json:"options,omitempty"`
}

// Review pairs a stored attempt with its re-hydrated quiz. Quiz is nil and
// QuizMissing true when the referenced quiz has been deleted; the answer
// rows are built from the attempt's snapshot and remain valid either way.
type Review struct {
	AttemptID        string         `json:"attempt_id"`
	Quiz             *Quiz          `json:"quiz,omitempty"`
	QuizMissing      bool           `json:"quiz_missing"`
	ResultPercentage int            `json:"result_percentage"`
	Answers          []ReviewAnswer `json:"answers"`
}
