package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkaniai/dukkani-ai-be/internal/core/agent"
	"github.com/dukkaniai/dukkani-ai-be/internal/core/audio"
	"github.com/dukkaniai/dukkani-ai-be/internal/core/genai"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/services"
)

type stubAgentAI struct{}

func (stubAgentAI) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "Salam! How can I help?", nil
}

func (stubAgentAI) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	return []byte{1, 2, 3, 4}, nil
}

func (stubAgentAI) Chat(ctx context.Context, systemPrompt string, history []genai.Turn, message string) (string, error) {
	return "Noted!", nil
}

type stubSettingsRepo struct{}

func (stubSettingsRepo) Get() (*models.AgentSettings, error) {
	settings := models.DefaultAgentSettings()
	settings.VoiceNotes = true
	return settings, nil
}

func (stubSettingsRepo) Save(*models.AgentSettings) error { return nil }

type stubConversationRepo struct{}

func (stubConversationRepo) Ensure(string, string) error               { return nil }
func (stubConversationRepo) AppendTurn(*models.ConversationTurn) error { return nil }
func (stubConversationRepo) ClearTurns(string) error                   { return nil }
func (stubConversationRepo) GetTurns(string, int) ([]models.ConversationTurn, error) {
	return nil, nil
}
func (stubConversationRepo) CountConversations() (int64, error) { return 0, nil }

// newPlaybackTestApp wires a real engine behind the agent routes and starts
// one conversation so a voice note clip exists.
func newPlaybackTestApp(t *testing.T) (*fiber.App, string, string) {
	t.Helper()

	engine := agent.NewEngine(stubAgentAI{}, audio.NewPlayer(), nil)
	service := services.NewAgentService(engine, stubSettingsRepo{}, stubConversationRepo{}, "TestStore", "212")
	engine.SetLogger(service)
	handler := NewAgentHandler(service)

	app := fiber.New()
	app.Post("/agent/conversations", handler.StartConversation)
	app.Post("/agent/conversations/:id/playback/:clip", handler.TogglePlayback)
	app.Post("/agent/conversations/:id/playback/:clip/complete", handler.CompletePlayback)
	app.Get("/agent/playback", handler.GetPlayback)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/agent/conversations", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap agent.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	require.Len(t, snap.Messages, 3)
	require.NotEmpty(t, snap.Messages[2].AudioClip)

	return app, snap.ID, snap.Messages[2].AudioClip
}

func playbackBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestPlaybackLifecycleOverHTTP(t *testing.T) {
	app, convID, clipID := newPlaybackTestApp(t)
	base := "/agent/conversations/" + convID + "/playback/" + clipID

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, base, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "playing", playbackBody(t, resp)["state"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/agent/playback", nil))
	require.NoError(t, err)
	slot := playbackBody(t, resp)
	assert.Equal(t, clipID, slot["clip_id"])
	assert.Equal(t, "playing", slot["state"])

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, base+"/complete", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "stopped", playbackBody(t, resp)["state"])

	// Slot is free again, so the same clip starts over instead of resuming.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/agent/playback", nil))
	require.NoError(t, err)
	slot = playbackBody(t, resp)
	assert.Empty(t, slot["clip_id"])
	assert.Equal(t, "stopped", slot["state"])

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, base, nil))
	require.NoError(t, err)
	assert.Equal(t, "playing", playbackBody(t, resp)["state"])
}

func TestCompletePlaybackUnknownClip(t *testing.T) {
	app, convID, _ := newPlaybackTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/agent/conversations/"+convID+"/playback/nope/complete", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
