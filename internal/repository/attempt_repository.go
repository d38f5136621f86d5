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

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("attempts")}
}

// Save assigns identity and creation time, then persists the attempt with
// its embedded answers as a single document write, so the record is either
// fully durable or absent. Attempts are append-only; there is no update.
func (r *AttemptRepository) Save(ctx context.Context, attempt *models.Attempt) (*models.Attempt, error) {
	if attempt.QuizID == "" || len(attempt.Answers) == 0 {
		return nil, fmt.Errorf("attempt requires quiz_id and answers: %w", apperr.ErrValidation)
	}
	if attempt.ResultPercentage < 0 || attempt.ResultPercentage > 100 {
		return nil, fmt.Errorf("result_percentage %d out of range: %w",
			attempt.ResultPercentage, apperr.ErrValidation)
	}
	attempt.ID = primitive.NewObjectID().Hex()
	attempt.CreatedAt = time.Now().UTC()
	if _, err := r.Col.InsertOne(ctx, attempt); err != nil {
		return nil, fmt.Errorf("inserting attempt: %v: %w", err, apperr.ErrPersistence)
	}
	return attempt, nil
}

// FindAll returns attempts newest-first.
func (r *AttemptRepository) FindAll(ctx context.Context) ([]models.Attempt, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing attempts: %v: %w", err, apperr.ErrPersistence)
	}
	defer cur.Close(ctx)
	var attempts []models.Attempt
	for cur.Next(ctx) {
		var a models.Attempt
		if err := cur.Decode(&a); err != nil {
			return nil, fmt.Errorf("decoding attempt: %v: %w", err, apperr.ErrPersistence)
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

func (r *AttemptRepository) FindByID(ctx context.Context, id string) (*models.Attempt, error) {
	var attempt models.Attempt
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&attempt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("attempt %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading attempt %s: %v: %w", id, err, apperr.ErrPersistence)
	}
	return &attempt, nil
}
