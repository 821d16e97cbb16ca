package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/amaanshaikh711/Nexus-AI-Chatbot/api/http/presenter"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/chat"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/llm"
	"github.com/amaanshaikh711/Nexus-AI-Chatbot/pkg/session"
)

// ChatHandler exposes the conversation over the JSON API.
type ChatHandler struct {
	svc     chat.Service
	store   *session.TranscriptStore
	catalog llm.ModelCatalog
}

func NewChatHandler(svc chat.Service, store *session.TranscriptStore, catalog llm.ModelCatalog) *ChatHandler {
	return &ChatHandler{svc: svc, store: store, catalog: catalog}
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

type turnDTO struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type sendMessageResponse struct {
	Reply   string    `json:"reply"`
	History []turnDTO `json:"history"`
}

type historyResponse struct {
	History []turnDTO `json:"history"`
}

type modelsResponse struct {
	Models []llm.ModelInfo `json:"models"`
}

// Send appends the user message to the session transcript and returns the
// model reply together with the updated history.
// @Summary Send a chat message
// @Description Appends the user message, asks the model, appends the reply. A failed completion still answers 200 with the error text as the reply.
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   payload body handlers.sendMessageRequest true "User message"
// @Success 200 {object} handlers.sendMessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /chat/message [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Message) == "" {
		return presenter.Error(c, http.StatusBadRequest, "message is required")
	}
	tr, err := h.store.Load(c)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "session unavailable")
	}
	reply := h.svc.Exchange(c.Context(), &tr, req.Message)
	if err := h.store.Save(c, tr); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "session unavailable")
	}
	return presenter.OK(c, sendMessageResponse{Reply: reply.Text(), History: toDTO(tr)})
}

// History returns the session transcript.
// @Summary Conversation history
// @Tags    chat
// @Produce json
// @Success 200 {object} handlers.historyResponse
// @Router  /chat/history [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	tr, err := h.store.Load(c)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "session unavailable")
	}
	return presenter.OK(c, historyResponse{History: toDTO(tr)})
}

// Clear resets the conversation to the seeded welcome turn.
// @Summary Clear conversation history
// @Tags    chat
// @Produce json
// @Success 200 {object} handlers.historyResponse
// @Router  /chat/clear [post]
func (h *ChatHandler) Clear(c *fiber.Ctx) error {
	if err := h.store.Clear(c); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "session unavailable")
	}
	tr, err := h.store.Load(c)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "session unavailable")
	}
	return presenter.OK(c, historyResponse{History: toDTO(tr)})
}

// Models lists the provider's generation-capable models.
// @Summary List available models
// @Tags    chat
// @Produce json
// @Success 200 {object} handlers.modelsResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /models [get]
func (h *ChatHandler) Models(c *fiber.Ctx) error {
	if h.catalog == nil {
		return presenter.Error(c, http.StatusServiceUnavailable, "completion model is not configured")
	}
	models, err := h.catalog.ListModels(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusServiceUnavailable, err.Error())
	}
	return presenter.OK(c, modelsResponse{Models: models})
}

func toDTO(tr chat.Transcript) []turnDTO {
	out := make([]turnDTO, 0, tr.Len())
	for _, t := range tr.Turns {
		out = append(out, turnDTO{Role: string(t.Role), Text: t.Text()})
	}
	return out
}
