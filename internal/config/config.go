package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	MongoURI       string
	MongoDatabase  string
	RabbitMQURI    string
	RabbitExchange string
	LLMAPIKey      string
	LLMBaseURL     string
	LLMModel       string
	AllowedOrigins []string
	ServiceName    string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:           getEnvOrDefault("PORT", "6677"),
		GinMode:        getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:       getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnvOrDefault("MONGO_DATABASE", "quizme_service"),
		RabbitMQURI:    getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		LLMAPIKey:      getEnvOrDefault("LLM_API_KEY", ""),
		LLMBaseURL:     getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:       getEnvOrDefault("LLM_MODEL", "gpt-3.5-turbo"),
		AllowedOrigins: []string{getEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:3000")},
		ServiceName:    getEnvOrDefault("SERVICE_NAME", "quizme-service"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
