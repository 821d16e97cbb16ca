package chat

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means no completion model was injected, typically a
	// missing API key or an unresolvable model identifier.
	ErrNotConfigured = errors.New("completion model is not configured")

	// ErrEmptyTranscript means prompt assembly was asked for with no turns.
	ErrEmptyTranscript = errors.New("transcript is empty")
)

// CompletionError wraps a failure raised by the completion client itself
// (network, quota, invalid prompt). It is never fatal to the session.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion failed: %v", e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }
