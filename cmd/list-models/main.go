// Command list-models prints the names of the generation-capable models the
// configured API key can use, to help pick a GEMINI_MODEL value.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/config"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/llm/gemini"
)

func main() {
	cfg := config.Load()
	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is not set; add it to the environment or a .env file")
	}

	client := gemini.New(
		cfg.GeminiAPIKey,
		cfg.GeminiBaseURL,
		cfg.GeminiModel,
		time.Duration(cfg.GeminiTimeoutSeconds)*time.Second,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	models, err := client.ListModels(ctx)
	if err != nil {
		log.Fatalf("listing models: %v", err)
	}

	fmt.Println("Available models:")
	for _, m := range models {
		fmt.Println(m.Name)
	}
}
