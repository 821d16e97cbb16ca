package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/chat"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/llm"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/session"
)

// stubModel is a canned completion provider for handler tests.
type stubModel struct {
	reply string
	err   error
}

func (s *stubModel) Complete(context.Context, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type stubCatalog struct {
	models []llm.ModelInfo
	err    error
}

func (s *stubCatalog) ListModels(context.Context) ([]llm.ModelInfo, error) {
	return s.models, s.err
}

func newChatApp(model llm.CompletionModel, catalog llm.ModelCatalog) *fiber.App {
	svc := chat.NewService(model, 0)
	store := session.NewTranscriptStore(time.Hour)
	h := NewChatHandler(svc, store, catalog)

	app := fiber.New()
	app.Post("/api/v1/chat/message", h.Send)
	app.Get("/api/v1/chat/history", h.History)
	app.Post("/api/v1/chat/clear", h.Clear)
	app.Get("/api/v1/models", h.Models)
	return app
}

func jsonRequest(t *testing.T, app *fiber.App, method, path, body string, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestChatSend(t *testing.T) {
	app := newChatApp(&stubModel{reply: "Hello!"}, nil)

	resp := jsonRequest(t, app, http.MethodPost, "/api/v1/chat/message", `{"message":"hi"}`, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Reply != "Hello!" {
		t.Errorf("reply = %q, want %q", out.Reply, "Hello!")
	}
	// welcome + user + model
	if len(out.History) != 3 {
		t.Fatalf("expected 3 turns of history, got %d", len(out.History))
	}
	if out.History[1].Role != "user" || out.History[1].Text != "hi" {
		t.Errorf("unexpected user turn: %+v", out.History[1])
	}
	if out.History[2].Role != "model" || out.History[2].Text != "Hello!" {
		t.Errorf("unexpected model turn: %+v", out.History[2])
	}
}

func TestChatSend_EmptyMessage(t *testing.T) {
	app := newChatApp(&stubModel{reply: "Hello!"}, nil)

	resp := jsonRequest(t, app, http.MethodPost, "/api/v1/chat/message", `{"message":"  "}`, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestChatSend_CompletionFailureStillAnswers(t *testing.T) {
	app := newChatApp(&stubModel{err: errors.New("boom")}, nil)

	resp := jsonRequest(t, app, http.MethodPost, "/api/v1/chat/message", `{"message":"hi"}`, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var out sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "boom") {
		t.Errorf("reply should carry the error detail, got %q", out.Reply)
	}
	if len(out.History) != 3 {
		t.Errorf("failed exchange should still append both turns, got %d", len(out.History))
	}
}

func TestChatHistoryAndClear(t *testing.T) {
	app := newChatApp(&stubModel{reply: "Hello!"}, nil)

	resp := jsonRequest(t, app, http.MethodPost, "/api/v1/chat/message", `{"message":"hi"}`, nil)
	cookies := resp.Cookies()
	resp.Body.Close()

	resp = jsonRequest(t, app, http.MethodGet, "/api/v1/chat/history", "", cookies)
	var hist historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&hist); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(hist.History) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(hist.History))
	}

	resp = jsonRequest(t, app, http.MethodPost, "/api/v1/chat/clear", "", cookies)
	if err := json.NewDecoder(resp.Body).Decode(&hist); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(hist.History) != 1 {
		t.Fatalf("expected reseeded history after clear, got %d turns", len(hist.History))
	}
	if hist.History[0].Role != "model" || hist.History[0].Text != chat.Welcome {
		t.Errorf("expected the welcome turn, got %+v", hist.History[0])
	}
}

func TestModels(t *testing.T) {
	catalog := &stubCatalog{models: []llm.ModelInfo{{Name: "models/gemini-pro"}}}
	app := newChatApp(&stubModel{reply: "ok"}, catalog)

	resp := jsonRequest(t, app, http.MethodGet, "/api/v1/models", "", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var out modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Models) != 1 || out.Models[0].Name != "models/gemini-pro" {
		t.Errorf("unexpected models: %+v", out.Models)
	}
}

func TestModels_NotConfigured(t *testing.T) {
	app := newChatApp(nil, nil)

	resp := jsonRequest(t, app, http.MethodGet, "/api/v1/models", "", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}
