package main

import (
	"log"
	"os"

	"github.com/costlens-dev/costlens/db"
	"github.com/costlens-dev/costlens/internal/ai"
	"github.com/costlens-dev/costlens/internal/auth"
	"github.com/costlens-dev/costlens/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	database, err := db.Connect(dsn)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var generator ai.Generator

	if apiKey := os.Getenv("GOOGLE_AI_API_KEY"); apiKey == "" {
		log.Println("Warning: GOOGLE_AI_API_KEY environment variable is not set")
		log.Println("AI suggestions will not work without a valid Google AI Studio API key")
	} else {
		client, err := ai.NewGeminiClient(apiKey)

		if err != nil {
			log.Fatalf("Failed to create Google AI client: %v", err)
		}

		generator = client
		log.Println("Google AI API key is configured")
	}

	r := router.NewRouter(database, generator)

	port := os.Getenv("PORT")

	if port == "" {
		port = "5000"
		log.Println("PORT not set, defaulting to 5000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
