package handlers

import (
	"errors"

	"github.com/dukkaniai/dukkani-ai-be/internal/core/agent"
	"github.com/dukkaniai/dukkani-ai-be/internal/core/audio"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/services"
	"github.com/gofiber/fiber/v2"
)

type AgentHandler struct {
	agentService *services.AgentService
}

func NewAgentHandler(agentService *services.AgentService) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
	}
}

// GetSettings godoc
// @Summary Get agent settings
// @Description Retrieve the sales agent persona and order confirmation settings
// @Tags Agent
// @Produce json
// @Success 200 {object} models.AgentSettings
// @Failure 500 {object} map[string]interface{}
// @Router /agent/settings [get]
func (h *AgentHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.agentService.GetSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(settings)
}

// UpdateSettings godoc
// @Summary Update agent settings
// @Description Partially update the sales agent persona and order confirmation settings
// @Tags Agent
// @Accept json
// @Produce json
// @Param settings body models.UpdateAgentSettingsRequest true "Fields to update"
// @Success 200 {object} models.AgentSettings
// @Failure 400 {object} map[string]interface{}
// @Router /agent/settings [put]
func (h *AgentHandler) UpdateSettings(c *fiber.Ctx) error {
	var req models.UpdateAgentSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	settings, err := h.agentService.UpdateSettings(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(settings)
}

// StartConversation godoc
// @Summary Start a test conversation
// @Description Reset the simulator and generate a fresh AI greeting, optionally with a voice note
// @Tags Agent
// @Accept json
// @Produce json
// @Param request body object false "Optional conversation id to reuse"
// @Success 200 {object} agent.Snapshot
// @Failure 502 {object} map[string]interface{}
// @Router /agent/conversations [post]
func (h *AgentHandler) StartConversation(c *fiber.Ctx) error {
	var req struct {
		ConversationID string `json:"conversation_id"`
	}
	// Body is optional; a missing one starts a brand new conversation.
	_ = c.BodyParser(&req)

	snapshot, err := h.agentService.Generate(c.Context(), req.ConversationID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(snapshot)
}

// SendMessage godoc
// @Summary Send a customer message
// @Description Append a customer message and get the agent's reply
// @Tags Agent
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param message body object true "Message text"
// @Success 200 {object} agent.Snapshot
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /agent/conversations/{id}/messages [post]
func (h *AgentHandler) SendMessage(c *fiber.Ctx) error {
	conversationID := c.Params("id")

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	snapshot, err := h.agentService.Reply(c.Context(), conversationID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrEmptyMessage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, agent.ErrConversationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return c.JSON(snapshot)
}

// GetTranscript godoc
// @Summary Get a conversation transcript
// @Description Retrieve the full simulator transcript including composing state
// @Tags Agent
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} agent.Snapshot
// @Failure 404 {object} map[string]interface{}
// @Router /agent/conversations/{id} [get]
func (h *AgentHandler) GetTranscript(c *fiber.Ctx) error {
	snapshot, err := h.agentService.Transcript(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(snapshot)
}

// GetClip godoc
// @Summary Download a voice note
// @Description Download a generated voice note as a WAV file
// @Tags Agent
// @Produce audio/wav
// @Param id path string true "Conversation ID"
// @Param clip path string true "Clip ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{}
// @Router /agent/conversations/{id}/clips/{clip} [get]
func (h *AgentHandler) GetClip(c *fiber.Ctx) error {
	wav, err := h.agentService.Clip(c.Params("id"), c.Params("clip"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "audio/wav")
	return c.Send(wav)
}

// TogglePlayback godoc
// @Summary Toggle voice note playback
// @Description Play or pause a voice note; starting one clip stops any other
// @Tags Agent
// @Produce json
// @Param id path string true "Conversation ID"
// @Param clip path string true "Clip ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agent/conversations/{id}/playback/{clip} [post]
func (h *AgentHandler) TogglePlayback(c *fiber.Ctx) error {
	state, err := h.agentService.TogglePlayback(c.Params("id"), c.Params("clip"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"clip_id": c.Params("clip"),
		"state":   string(state),
	})
}

// CompletePlayback godoc
// @Summary Mark a voice note as finished
// @Description Release the playback slot once a clip has played to the end
// @Tags Agent
// @Produce json
// @Param id path string true "Conversation ID"
// @Param clip path string true "Clip ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agent/conversations/{id}/playback/{clip}/complete [post]
func (h *AgentHandler) CompletePlayback(c *fiber.Ctx) error {
	if err := h.agentService.CompletePlayback(c.Params("id"), c.Params("clip")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"clip_id": c.Params("clip"),
		"state":   string(audio.StateStopped),
	})
}

// GetPlayback godoc
// @Summary Get the playback slot state
// @Description Report which voice note, if any, currently holds the playback slot
// @Tags Agent
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /agent/playback [get]
func (h *AgentHandler) GetPlayback(c *fiber.Ctx) error {
	clipID, state := h.agentService.PlaybackState()
	return c.JSON(fiber.Map{
		"clip_id": clipID,
		"state":   string(state),
	})
}

// DeepLink godoc
// @Summary Get the WhatsApp order link
// @Description Build a wa.me link and QR code for the configured contact number
// @Tags Agent
// @Produce json
// @Param message query string false "Prefilled message"
// @Success 200 {object} services.DeepLinkResponse
// @Failure 400 {object} map[string]interface{}
// @Router /agent/deeplink [get]
func (h *AgentHandler) DeepLink(c *fiber.Ctx) error {
	message := c.Query("message", "Hello! I want to place an order.")

	link, err := h.agentService.DeepLink(message)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(link)
}
