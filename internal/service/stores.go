package service

import (
	"context"

	"quizme-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// QuizStore and AttemptStore are the document-store contracts the services
// consume. The mongo repositories satisfy them; tests use in-memory fakes.
type QuizStore interface {
	FindAll(ctx context.Context) ([]models.Quiz, error)
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type AttemptStore interface {
	Save(ctx context.Context, attempt *models.Attempt) (*models.Attempt, error)
	FindAll(ctx context.Context) ([]models.Attempt, error)
	FindByID(ctx context.Context, id string) (*models.Attempt, error)
}
