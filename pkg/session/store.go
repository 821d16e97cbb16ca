package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/chat"
)

const historyKey = "chat_history"

// TranscriptStore keeps one transcript per client session, behind a
// cookie-keyed session. Access is serialized by the surrounding request
// handling: one browser tab, one session, one request at a time.
type TranscriptStore struct {
	sessions *session.Store
}

// NewTranscriptStore builds a store whose session cookie lives for ttl.
func NewTranscriptStore(ttl time.Duration) *TranscriptStore {
	return &TranscriptStore{
		sessions: session.New(session.Config{
			Expiration:     ttl,
			KeyLookup:      "cookie:nexus_session",
			KeyGenerator:   uuid.NewString,
			CookieHTTPOnly: true,
		}),
	}
}

// Load returns the current session's transcript. A session that has no
// transcript yet gets the seeded welcome transcript, which is also persisted.
func (s *TranscriptStore) Load(c *fiber.Ctx) (chat.Transcript, error) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return chat.Transcript{}, fmt.Errorf("get session: %w", err)
	}
	raw, ok := sess.Get(historyKey).([]byte)
	if !ok || len(raw) == 0 {
		tr := chat.NewTranscript()
		if err := s.save(sess, tr); err != nil {
			return chat.Transcript{}, err
		}
		return tr, nil
	}
	var tr chat.Transcript
	if err := json.Unmarshal(raw, &tr); err != nil {
		// Unreadable history is replaced by a fresh seeded transcript rather
		// than failing the request.
		tr = chat.NewTranscript()
		if err := s.save(sess, tr); err != nil {
			return chat.Transcript{}, err
		}
	}
	return tr, nil
}

// Save persists the transcript into the current session.
func (s *TranscriptStore) Save(c *fiber.Ctx, tr chat.Transcript) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	return s.save(sess, tr)
}

// Clear removes the transcript from the session; the next Load reseeds it.
func (s *TranscriptStore) Clear(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	sess.Delete(historyKey)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *TranscriptStore) save(sess *session.Session, tr chat.Transcript) error {
	raw, err := json.Marshal(tr)
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	sess.Set(historyKey, raw)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
