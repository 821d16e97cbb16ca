// @title         Nexus AI API
// @version       1.0
// @description   Web chat front-end forwarding user text to the Google Generative Language API and keeping the conversation history in a cookie-backed session.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/amaanshaikh711/Nexus-AI-Chatbot/docs"

	// internal imports
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/api/http"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/api/http/handlers"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/chat"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/config"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/health"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/health/checkers"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/llm"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/llm/gemini"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/session"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	// Completion client. A missing key is not fatal: the chat keeps working
	// and answers every message with the configuration-error reply.
	var model llm.CompletionModel
	var catalog llm.ModelCatalog
	if cfg.GeminiAPIKey != "" {
		client := gemini.New(
			cfg.GeminiAPIKey,
			cfg.GeminiBaseURL,
			cfg.GeminiModel,
			time.Duration(cfg.GeminiTimeoutSeconds)*time.Second,
		)
		model = client
		catalog = client
		log.Printf("model %q configured", cfg.GeminiModel)
	} else {
		log.Printf("WARNING: GEMINI_API_KEY is not set; chat replies will be unavailable")
	}

	// Wire dependencies
	chatSvc := chat.NewService(model, cfg.ChatHistoryLimit)
	store := session.NewTranscriptStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)

	pagesHandler, err := handlers.NewPagesHandler(chatSvc, store)
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}
	chatHandler := handlers.NewChatHandler(chatSvc, store, catalog)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewGeminiChecker(catalog))
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	http.Register(app, pagesHandler, chatHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
