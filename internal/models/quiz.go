package models

import (
	"fmt"
	"time"

	"quizme-service/internal/apperr"
)

type Quiz struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	Category  string     `bson:"category" json:"category" binding:"required"`
	Questions []Question `bson:"questions" json:"questions" binding:"required"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// Validate enforces the boundary rule for a quiz entering the system:
// at least one question, each question individually valid.
func (q *Quiz) Validate() error {
	if q.Category == "" {
		return fmt.Errorf("quiz has no category: %w", apperr.ErrValidation)
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz must contain at least one question: %w", apperr.ErrValidation)
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
