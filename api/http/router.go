package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/amaanshaikh711/Nexus-AI-Chatbot/api/http/handlers"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/web"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, pages *handlers.PagesHandler, chat *handlers.ChatHandler, health *handlers.HealthHandler) {
	// HTML chat surface
	app.Get("/", pages.Index)
	app.Post("/", pages.Send)
	app.Get("/clear", pages.Clear)
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(web.FS),
		PathPrefix: "static",
	}))

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Conversation API
	cg := v1.Group("/chat")
	cg.Post("/message", chat.Send)
	cg.Get("/history", chat.History)
	cg.Post("/clear", chat.Clear)

	v1.Get("/models", chat.Models)
}
