package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizme-service/internal/apperr"
	"quizme-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) FindAll(ctx context.Context) ([]models.Quiz, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing quizzes: %v: %w", err, apperr.ErrPersistence)
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, fmt.Errorf("decoding quiz: %v: %w", err, apperr.ErrPersistence)
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("quiz %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading quiz %s: %v: %w", id, err, apperr.ErrPersistence)
	}
	return &quiz, nil
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	quiz.ID = primitive.NewObjectID().Hex()
	quiz.CreatedAt = time.Now().UTC()
	quiz.UpdatedAt = quiz.CreatedAt
	if _, err := r.Col.InsertOne(ctx, quiz); err != nil {
		return fmt.Errorf("inserting quiz: %v: %w", err, apperr.ErrPersistence)
	}
	return nil
}

func (r *QuizRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now().UTC()
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("updating quiz %s: %v: %w", id, err, apperr.ErrPersistence)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("quiz %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// Delete removes the quiz document. Attempts referencing it are left in
// place; listings and reviews resolve the dangling reference themselves.
func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting quiz %s: %v: %w", id, err, apperr.ErrPersistence)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("quiz %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}
