package handlers

import (
	"bytes"
	"html/template"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/chat"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/session"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/web"
)

// PagesHandler serves the HTML chat surface: the transcript page, the form
// post that sends a message, and the clear link.
type PagesHandler struct {
	svc   chat.Service
	store *session.TranscriptStore
	tmpl  *template.Template
}

func NewPagesHandler(svc chat.Service, store *session.TranscriptStore) (*PagesHandler, error) {
	tmpl, err := template.ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PagesHandler{svc: svc, store: store, tmpl: tmpl}, nil
}

type turnView struct {
	Role string
	// Sanitized model output carries <br> markers, so turn text is rendered
	// unescaped, as the original front-end did.
	Text template.HTML
}

type indexView struct {
	Turns []turnView
}

// Index renders the chat page with the session transcript, seeding the
// welcome turn on first visit.
func (h *PagesHandler) Index(c *fiber.Ctx) error {
	tr, err := h.store.Load(c)
	if err != nil {
		return sessionError(c, err)
	}
	view := indexView{Turns: make([]turnView, 0, tr.Len())}
	for _, t := range tr.Turns {
		view.Turns = append(view.Turns, turnView{Role: string(t.Role), Text: template.HTML(t.Text())})
	}
	// Render into a buffer first so a template failure yields a clean 500
	// instead of a half-written page.
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", view); err != nil {
		log.Printf("render index: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error: failed to render chat page.")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// Send handles the chat form post and redirects back to the page.
func (h *PagesHandler) Send(c *fiber.Ctx) error {
	message := c.FormValue("message")
	if message != "" {
		tr, err := h.store.Load(c)
		if err != nil {
			return sessionError(c, err)
		}
		h.svc.Exchange(c.Context(), &tr, message)
		if err := h.store.Save(c, tr); err != nil {
			return sessionError(c, err)
		}
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Clear drops the session transcript; the next page load reseeds it.
func (h *PagesHandler) Clear(c *fiber.Ctx) error {
	if err := h.store.Clear(c); err != nil {
		return sessionError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func sessionError(c *fiber.Ctx, err error) error {
	log.Printf("session error: %v", err)
	return c.Status(fiber.StatusInternalServerError).SendString("Error: session unavailable.")
}
