package main

import (
	"log"
	"time"

	"quizme-service/internal/config"
	"quizme-service/internal/db"
	"quizme-service/internal/event"
	"quizme-service/internal/explain"
	"quizme-service/internal/handlers"
	"quizme-service/internal/repository"
	"quizme-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)
	db.InitMongo(cfg.MongoURI)

	// RabbitMQ event publisher, optional
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	// Quizzes
	quizRepo := repository.NewQuizRepository(database)
	quizService := service.NewQuizService(quizRepo)
	quizHandler := handlers.NewQuizHandler(quizService)

	// Attempts and review
	attemptRepo := repository.NewAttemptRepository(database)
	attemptService := service.NewAttemptService(attemptRepo, quizRepo)
	reviewService := service.NewReviewService(attemptRepo, quizRepo)
	attemptHandler := handlers.NewAttemptHandler(attemptService, reviewService)

	// Review sessions with AI explanations
	explainClient := explain.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	sessionManager := service.NewReviewSessionManager(reviewService, explainClient)
	reviewHandler := handlers.NewReviewHandler(sessionManager)

	quizzes := r.Group("/api/quizzes")
	{
		quizzes.GET("/", quizHandler.ListQuizzes)
		quizzes.GET("/:id", quizHandler.GetQuiz)
		quizzes.POST("/", func(c *gin.Context) {
			quizHandler.CreateQuiz(c)
			if c.Writer.Status() < 400 {
				publisher.Publish(event.QuizCreated, gin.H{"timestamp": time.Now()})
			}
		})
		quizzes.PATCH("/:id", func(c *gin.Context) {
			quizHandler.UpdateQuiz(c)
			if c.Writer.Status() < 400 {
				publisher.Publish(event.QuizUpdated, gin.H{"quiz_id": c.Param("id"), "timestamp": time.Now()})
			}
		})
		quizzes.DELETE("/:id", func(c *gin.Context) {
			quizHandler.DeleteQuiz(c)
			if c.Writer.Status() < 400 {
				publisher.Publish(event.QuizDeleted, gin.H{"quiz_id": c.Param("id"), "timestamp": time.Now()})
			}
		})
		quizzes.GET("/:id/shuffled", quizHandler.ShuffledQuiz)
		quizzes.GET("/:id/flashcards", quizHandler.Flashcards)
		quizzes.POST("/:id/submit", func(c *gin.Context) {
			attemptHandler.SubmitQuiz(c)
			if c.Writer.Status() < 400 {
				publisher.Publish(event.AttemptRecorded, gin.H{"quiz_id": c.Param("id"), "timestamp": time.Now()})
			}
		})
	}

	attempts := r.Group("/api/attempts")
	{
		attempts.GET("/", attemptHandler.ListAttempts)
		attempts.GET("/:id", attemptHandler.GetAttempt)
		attempts.GET("/:id/review", attemptHandler.GetReview)
		attempts.POST("/", func(c *gin.Context) {
			attemptHandler.RecordAttempt(c)
			if c.Writer.Status() < 400 {
				publisher.Publish(event.AttemptRecorded, gin.H{"timestamp": time.Now()})
			}
		})
	}

	reviews := r.Group("/api/reviews")
	{
		reviews.POST("/", func(c *gin.Context) {
			reviewHandler.OpenSession(c)
			if c.Writer.Status() < 400 {
				publisher.Publish(event.ReviewOpened, gin.H{"timestamp": time.Now()})
			}
		})
		reviews.POST("/:id/explanations/:index", reviewHandler.ToggleExplanation)
		reviews.DELETE("/:id", reviewHandler.CloseSession)
	}

	r.Run(":" + cfg.Port)
}
