package models

// PresentedQuestion is a question as shown to a quiz taker: shuffled option
// order, correct answer not identified.
type PresentedQuestion struct {
	QuestionNumber int      `json:"question_number"`
	QuestionString string   `json:"question_string"`
	Options        []string `json:"options"`
}

// QuizPresentation is a randomized rendering of a quiz for answering. The
// canonical quiz document is untouched; scoring always runs against it.
type QuizPresentation struct {
	ID        string              `json:"id"`
	Category  string              `json:"category"`
	Questions []PresentedQuestion `json:"questions"`
}
