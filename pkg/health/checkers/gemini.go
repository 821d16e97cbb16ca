package checkers

import (
	"context"
	"errors"

	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/llm"
)

// GeminiChecker verifies that a completion provider is configured and that
// its model catalog answers.
type GeminiChecker struct {
	catalog llm.ModelCatalog
}

func NewGeminiChecker(catalog llm.ModelCatalog) *GeminiChecker {
	return &GeminiChecker{catalog: catalog}
}

func (g *GeminiChecker) Name() string { return "gemini" }

func (g *GeminiChecker) Check(ctx context.Context) error {
	if g.catalog == nil {
		return errors.New("completion model is not configured")
	}
	_, err := g.catalog.ListModels(ctx)
	return err
}
