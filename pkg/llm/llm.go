package llm

import "context"

// CompletionModel is a minimal abstraction for text completion providers used
// by the domain. It intentionally hides concrete providers to preserve
// dependency direction.
type CompletionModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ModelInfo describes one model exposed by a provider.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
}

// ModelCatalog enumerates the provider's generation-capable models.
type ModelCatalog interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}
