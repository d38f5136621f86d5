// Package shuffle produces randomized presentations of quiz content without
// mutating the canonical documents the scoring path relies on.
package shuffle

import (
	"math/rand"
	"time"

	"quizme-service/internal/models"
)

// Shuffler draws independent uniform permutations. Each call reshuffles;
// there is no seed or determinism guarantee.
type Shuffler struct {
	rand *rand.Rand
}

func NewShuffler() *Shuffler {
	return &Shuffler{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Options returns the question's option set (1 correct + 2 incorrect) in a
// fresh uniform random order. The question itself is left untouched.
func (s *Shuffler) Options(q *models.Question) []string {
	opts := q.Options()
	s.rand.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

// Questions returns the quiz's questions in a fresh uniform random order,
// for flashcard-style presentation. The quiz's question slice is not mutated.
func (s *Shuffler) Questions(quiz *models.Quiz) []models.Question {
	shuffled := make([]models.Question, len(quiz.Questions))
	copy(shuffled, quiz.Questions)
	s.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
