package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
		"GEMINI_TIMEOUT_SECONDS", "CHAT_HISTORY_LIMIT", "SESSION_TTL_MINUTES",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port default = %q, want 8080", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.5-flash-preview-09-2025" {
		t.Errorf("unexpected default model %q", cfg.GeminiModel)
	}
	if cfg.GeminiTimeoutSeconds != 60 {
		t.Errorf("timeout default = %d, want 60", cfg.GeminiTimeoutSeconds)
	}
	if cfg.ChatHistoryLimit != 50 {
		t.Errorf("history limit default = %d, want 50", cfg.ChatHistoryLimit)
	}
	if cfg.SessionTTLMinutes != 1440 {
		t.Errorf("session ttl default = %d, want 1440", cfg.SessionTTLMinutes)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "chat-bison-001")
	t.Setenv("CHAT_HISTORY_LIMIT", "10")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.GeminiAPIKey != "secret" {
		t.Errorf("GeminiAPIKey = %q, want secret", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "chat-bison-001" {
		t.Errorf("GeminiModel = %q, want chat-bison-001", cfg.GeminiModel)
	}
	if cfg.ChatHistoryLimit != 10 {
		t.Errorf("ChatHistoryLimit = %d, want 10", cfg.ChatHistoryLimit)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("CHAT_HISTORY_LIMIT", "not-a-number")

	cfg := Load()
	if cfg.ChatHistoryLimit != 50 {
		t.Errorf("ChatHistoryLimit = %d, want default 50", cfg.ChatHistoryLimit)
	}
}
