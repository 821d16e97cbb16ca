package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/llm"
)

// Service describes the application use case for one conversational exchange.
type Service interface {
	// Respond produces the sanitized model reply for a transcript whose last
	// turn is the triggering user message. Errors are typed: ErrNotConfigured,
	// ErrEmptyTranscript, or a *CompletionError.
	Respond(ctx context.Context, tr Transcript) (string, error)

	// Exchange appends the user's message and the model's reply to the
	// transcript. A failed completion still appends a model turn carrying the
	// user-facing error text, so the transcript always grows by two turns.
	// The appended model turn is returned.
	Exchange(ctx context.Context, tr *Transcript, message string) Turn
}

type service struct {
	model        llm.CompletionModel
	historyLimit int
}

// NewService creates the default implementation. model may be nil when the
// provider could not be configured; every Respond then fails with
// ErrNotConfigured. historyLimit caps how many trailing turns are sent to the
// model, 0 disables the cap.
func NewService(model llm.CompletionModel, historyLimit int) Service {
	return &service{model: model, historyLimit: historyLimit}
}

func (s *service) Respond(ctx context.Context, tr Transcript) (string, error) {
	if s.model == nil {
		return "", ErrNotConfigured
	}
	prompt, err := Assemble(tr.Window(s.historyLimit))
	if err != nil {
		return "", err
	}
	raw, err := s.model.Complete(ctx, prompt)
	if err != nil {
		return "", &CompletionError{Err: err}
	}
	return Sanitize(raw), nil
}

func (s *service) Exchange(ctx context.Context, tr *Transcript, message string) Turn {
	tr.Append(NewTurn(RoleUser, message))

	reply, err := s.Respond(ctx, *tr)
	if err != nil {
		reply = userFacing(err)
	}
	turn := NewTurn(RoleModel, reply)
	tr.Append(turn)
	return turn
}

// userFacing converts a typed failure into the string shown in the chat.
func userFacing(err error) string {
	if errors.Is(err, ErrNotConfigured) {
		return "Error: Nexus AI model is not initialized. Check API key and configuration."
	}
	return fmt.Sprintf("Error: Could not connect to Nexus AI. Please try again. (%v)", err)
}
