package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/overlay-engine/internal/commands"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
