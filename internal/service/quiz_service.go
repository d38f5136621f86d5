package service

import (
	"context"

	"quizme-service/internal/models"
	"quizme-service/internal/shuffle"

	"go.mongodb.org/mongo-driver/bson"
)

type QuizService struct {
	Repo     QuizStore
	Shuffler *shuffle.Shuffler
}

func NewQuizService(repo QuizStore) *QuizService {
	return &QuizService{Repo: repo, Shuffler: shuffle.NewShuffler()}
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	return s.Repo.FindAll(ctx)
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuizService) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	s.assignQuestionNumbers(quiz)
	if err := quiz.Validate(); err != nil {
		return err
	}
	return s.Repo.Create(ctx, quiz)
}

// QuizUpdate is a partial update: nil fields are left unchanged.
type QuizUpdate struct {
	Category  *string           `json:"category"`
	Questions []models.Question `json:"questions"`
}

func (s *QuizService) UpdateQuiz(ctx context.Context, id string, upd QuizUpdate) error {
	set := bson.M{}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Questions != nil {
		probe := models.Quiz{Category: "probe", Questions: upd.Questions}
		s.assignQuestionNumbers(&probe)
		if err := probe.Validate(); err != nil {
			return err
		}
		set["questions"] = probe.Questions
	}
	if len(set) == 0 {
		return nil
	}
	return s.Repo.Update(ctx, id, set)
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// ShuffledQuiz loads the quiz and returns it as a presentation: every
// question's options in a fresh random order, correct answer not flagged.
func (s *QuizService) ShuffledQuiz(ctx context.Context, id string) (*models.QuizPresentation, error) {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pres := &models.QuizPresentation{
		ID:        quiz.ID,
		Category:  quiz.Category,
		Questions: make([]models.PresentedQuestion, len(quiz.Questions)),
	}
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		pres.Questions[i] = models.PresentedQuestion{
			QuestionNumber: q.QuestionNumber,
			QuestionString: q.QuestionString,
			Options:        s.Shuffler.Options(q),
		}
	}
	return pres, nil
}

// Flashcards returns the quiz's questions in a fresh random order. Each call
// is an independent draw; this backs the "Shuffle Cards" action.
func (s *QuizService) Flashcards(ctx context.Context, id string) ([]models.Question, error) {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Shuffler.Questions(quiz), nil
}

// assignQuestionNumbers fills in 1-based question numbers when the client
// did not provide them.
func (s *QuizService) assignQuestionNumbers(quiz *models.Quiz) {
	for i := range quiz.Questions {
		if quiz.Questions[i].QuestionNumber == 0 {
			quiz.Questions[i].QuestionNumber = i + 1
		}
	}
}
