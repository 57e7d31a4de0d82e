package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkaniai/dukkani-ai-be/internal/core/agent"
	"github.com/dukkaniai/dukkani-ai-be/internal/core/audio"
	"github.com/dukkaniai/dukkani-ai-be/internal/core/genai"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
)

type fakeAgentAI struct{}

func (fakeAgentAI) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "Salam! Ready to confirm your order?", nil
}

func (fakeAgentAI) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	return []byte{1, 2, 3, 4}, nil
}

func (fakeAgentAI) Chat(ctx context.Context, systemPrompt string, history []genai.Turn, message string) (string, error) {
	return "Noted!", nil
}

type memSettingsRepo struct {
	settings *models.AgentSettings
}

func (r *memSettingsRepo) Get() (*models.AgentSettings, error) {
	if r.settings == nil {
		return models.DefaultAgentSettings(), nil
	}
	return r.settings, nil
}

func (r *memSettingsRepo) Save(settings *models.AgentSettings) error {
	r.settings = settings
	return nil
}

type memConversationRepo struct {
	conversations map[string]bool
	turns         []*models.ConversationTurn
	clears        int
}

func newMemConversationRepo() *memConversationRepo {
	return &memConversationRepo{conversations: make(map[string]bool)}
}

func (r *memConversationRepo) Ensure(conversationID, storeName string) error {
	r.conversations[conversationID] = true
	return nil
}

func (r *memConversationRepo) AppendTurn(turn *models.ConversationTurn) error {
	r.turns = append(r.turns, turn)
	return nil
}

func (r *memConversationRepo) ClearTurns(conversationID string) error {
	r.clears++
	return nil
}

func (r *memConversationRepo) GetTurns(conversationID string, limit int) ([]models.ConversationTurn, error) {
	return nil, nil
}

func (r *memConversationRepo) CountConversations() (int64, error) {
	return int64(len(r.conversations)), nil
}

func newTestAgentService() (*AgentService, *memSettingsRepo, *memConversationRepo) {
	settingsRepo := &memSettingsRepo{}
	conversationRepo := newMemConversationRepo()
	engine := agent.NewEngine(fakeAgentAI{}, audio.NewPlayer(), nil)
	svc := NewAgentService(engine, settingsRepo, conversationRepo, "TestStore", "212")
	return svc, settingsRepo, conversationRepo
}

func TestAgentGenerateRecordsConversation(t *testing.T) {
	svc, _, conversationRepo := newTestAgentService()

	snap, err := svc.Generate(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, snap.ID)
	assert.True(t, conversationRepo.conversations[snap.ID])
	assert.Zero(t, conversationRepo.clears)

	// Restarting an existing conversation clears persisted turns first.
	_, err = svc.Generate(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, conversationRepo.clears)
}

func TestUpdateSettingsPartial(t *testing.T) {
	svc, _, _ := newTestAgentService()

	tone := "Urgent"
	voice := true
	settings, err := svc.UpdateSettings(&models.UpdateAgentSettingsRequest{
		Tone:       &tone,
		VoiceNotes: &voice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Urgent", settings.Tone)
	assert.True(t, settings.VoiceNotes)
	// Untouched fields keep their defaults.
	assert.Equal(t, models.DefaultLanguage, settings.Language)
	assert.Equal(t, "MyStore Agent", settings.AgentName)
}

func TestUpdateSettingsValidation(t *testing.T) {
	svc, _, _ := newTestAgentService()

	bad := "Klingon"
	_, err := svc.UpdateSettings(&models.UpdateAgentSettingsRequest{Language: &bad})
	assert.Error(t, err)

	empty := ""
	_, err = svc.UpdateSettings(&models.UpdateAgentSettingsRequest{AgentName: &empty})
	assert.ErrorIs(t, err, models.ErrEmptyAgentName)
}

func TestUpdateSettingsNormalizesContact(t *testing.T) {
	svc, settingsRepo, _ := newTestAgentService()

	contact := "06 61 23 45 67"
	settings, err := svc.UpdateSettings(&models.UpdateAgentSettingsRequest{ContactNumber: &contact})
	require.NoError(t, err)
	assert.Equal(t, "212661234567", settings.ContactNumber)
	assert.Equal(t, "212661234567", settingsRepo.settings.ContactNumber)
}

func TestDeepLinkRequiresContact(t *testing.T) {
	svc, _, _ := newTestAgentService()

	_, err := svc.DeepLink("hi")
	assert.Error(t, err)
}

func TestDeepLink(t *testing.T) {
	svc, _, _ := newTestAgentService()

	contact := "0661234567"
	_, err := svc.UpdateSettings(&models.UpdateAgentSettingsRequest{ContactNumber: &contact})
	require.NoError(t, err)

	link, err := svc.DeepLink("I want to order")
	require.NoError(t, err)
	assert.Equal(t, "212661234567", link.Phone)
	assert.Contains(t, link.Link, "https://wa.me/212661234567?text=")
	assert.NotEmpty(t, link.QRPng)
}
