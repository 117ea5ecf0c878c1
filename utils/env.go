package utils

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file from the working directory if present, so
// DWHFORGE_-prefixed settings can live next to the project config.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️  No .env file found, continuing...")
	}
}
