package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dukkaniai/dukkani-ai-be/internal/core/audio"
	"github.com/dukkaniai/dukkani-ai-be/internal/core/genai"
	"github.com/dukkaniai/dukkani-ai-be/internal/shared/utils"
)

// systemOrderNotice is the synthetic first entry of every generated transcript.
const systemOrderNotice = "New order received (Cash on Delivery)"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message text is required")
)

// AIClient is the slice of the generative AI service the engine needs.
type AIClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error)
	Chat(ctx context.Context, systemPrompt string, history []genai.Turn, message string) (string, error)
}

// ConversationLogger persists transcript turns (implemented by the store module)
type ConversationLogger interface {
	LogTurn(conversationID string, role, text string) error
}

// Config drives one greeting/reply run of the simulator. All fields are
// plain enumerated values validated upstream.
type Config struct {
	StoreName       string
	AgentName       string
	Language        string
	Tone            string
	ConfirmFields   []string
	IncludeDiscount bool
	VoiceNotes      bool
	Voice           string
}

// Engine drives the scripted order-confirmation interaction: greeting,
// optional voice note, then an interactive reply loop.
type Engine struct {
	ai     AIClient
	player *audio.Player
	logger ConversationLogger

	mu            sync.RWMutex
	conversations map[string]*conversation
}

func NewEngine(ai AIClient, player *audio.Player, logger ConversationLogger) *Engine {
	return &Engine{
		ai:            ai,
		player:        player,
		logger:        logger,
		conversations: make(map[string]*conversation),
	}
}

// SetLogger installs the transcript logger. The engine works without one;
// callers that persist transcripts wire it after construction.
func (e *Engine) SetLogger(logger ConversationLogger) {
	e.logger = logger
}

// Generate runs phases 1 and 2. An empty conversationID starts a new
// conversation; an existing one is cleared and restarted from scratch (the
// transcript never merges with prior history). A greeting failure aborts the
// whole sequence; a voice note failure degrades silently.
func (e *Engine) Generate(ctx context.Context, conversationID string, cfg Config) (*Snapshot, error) {
	conv := e.getOrCreate(conversationID)

	conv.mu.Lock()
	conv.reset()
	generation := conv.generation
	conv.mu.Unlock()

	brief := genai.GreetingBrief{
		StoreName:       cfg.StoreName,
		AgentName:       cfg.AgentName,
		Language:        cfg.Language,
		Tone:            cfg.Tone,
		ConfirmFields:   cfg.ConfirmFields,
		IncludeDiscount: cfg.IncludeDiscount,
	}

	// Phase 1: greeting
	greeting, err := e.ai.GenerateText(ctx, genai.BuildGreetingPrompt(brief))
	if err != nil {
		return nil, fmt.Errorf("failed to generate greeting: %w", err)
	}

	conv.mu.Lock()
	if conv.generation != generation {
		// Regenerated concurrently; this run lost.
		snap := conv.snapshot()
		conv.mu.Unlock()
		return snap, nil
	}
	conv.append(RoleSystem, systemOrderNotice, "", StatusDelivered)
	conv.append(RoleAgent, greeting, "", StatusDelivered)
	conv.mu.Unlock()

	e.logTurn(conv.id, string(RoleAgent), greeting)

	// Phase 2: voice note, best effort
	if cfg.VoiceNotes {
		e.attachVoiceNote(ctx, conv, generation, greeting, cfg.Voice)
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()
	return conv.snapshot(), nil
}

func (e *Engine) attachVoiceNote(ctx context.Context, conv *conversation, generation uint64, greeting, voice string) {
	pcm, err := e.ai.SynthesizeSpeech(ctx, greeting, voice)
	if err != nil {
		utils.LogWarn("voice note synthesis failed", map[string]interface{}{
			"conversation_id": conv.id, "error": err.Error(),
		})
		return
	}

	wav, err := audio.WrapPCM(pcm)
	if err != nil {
		utils.LogWarn("voice note encoding failed", map[string]interface{}{
			"conversation_id": conv.id, "error": err.Error(),
		})
		return
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()
	if conv.generation != generation {
		return
	}
	clipID := uuid.NewString()
	conv.clips[clipID] = wav
	conv.append(RoleAgent, "", clipID, StatusDelivered)
}

// Reply runs phase 3 for one customer message. The customer turn is appended
// synchronously before the AI call; the agent turn is applied only if the
// conversation has not been regenerated in the meantime.
func (e *Engine) Reply(ctx context.Context, conversationID, text string, cfg Config) (*Snapshot, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}
	conv, err := e.get(conversationID)
	if err != nil {
		return nil, err
	}

	brief := genai.GreetingBrief{
		StoreName:       cfg.StoreName,
		AgentName:       cfg.AgentName,
		Language:        cfg.Language,
		Tone:            cfg.Tone,
		ConfirmFields:   cfg.ConfirmFields,
		IncludeDiscount: cfg.IncludeDiscount,
	}

	// Optimistic local append.
	conv.mu.Lock()
	conv.append(RoleCustomer, text, "", StatusSent)
	conv.composing = true
	generation := conv.generation
	history := conv.history()
	conv.mu.Unlock()

	e.logTurn(conv.id, string(RoleCustomer), text)

	// History already contains the new customer turn; hand the provider
	// everything before it plus the message itself.
	turns := make([]genai.Turn, 0, len(history)-1)
	for _, t := range history[:len(history)-1] {
		turns = append(turns, genai.Turn{Role: t.role, Text: t.text})
	}

	reply, err := e.ai.Chat(ctx, genai.BuildReplySystemPrompt(brief), turns, text)

	conv.mu.Lock()
	defer conv.mu.Unlock()
	conv.composing = false

	if conv.generation != generation {
		utils.LogWarn("dropping stale agent reply", map[string]interface{}{
			"conversation_id": conv.id,
		})
		return conv.snapshot(), nil
	}
	if err != nil {
		utils.LogError("agent reply failed", err, map[string]interface{}{
			"conversation_id": conv.id,
		})
		return conv.snapshot(), fmt.Errorf("failed to generate reply: %w", err)
	}

	conv.append(RoleAgent, reply, "", StatusDelivered)
	e.logTurn(conv.id, string(RoleAgent), reply)
	return conv.snapshot(), nil
}

// Transcript returns the current state of a conversation.
func (e *Engine) Transcript(conversationID string) (*Snapshot, error) {
	conv, err := e.get(conversationID)
	if err != nil {
		return nil, err
	}
	conv.mu.Lock()
	defer conv.mu.Unlock()
	return conv.snapshot(), nil
}

// Clip returns the WAV bytes of a voice note.
func (e *Engine) Clip(conversationID, clipID string) ([]byte, error) {
	conv, err := e.get(conversationID)
	if err != nil {
		return nil, err
	}
	conv.mu.Lock()
	defer conv.mu.Unlock()
	wav, ok := conv.clips[clipID]
	if !ok {
		return nil, fmt.Errorf("clip not found")
	}
	return wav, nil
}

// TogglePlayback flips the process-wide playback slot for a clip.
func (e *Engine) TogglePlayback(conversationID, clipID string) (audio.PlaybackState, error) {
	if _, err := e.Clip(conversationID, clipID); err != nil {
		return audio.StateStopped, err
	}
	return e.player.Toggle(clipID), nil
}

// CompletePlayback clears the playback slot once a clip has finished
// playing, so the next toggle starts it from the beginning.
func (e *Engine) CompletePlayback(conversationID, clipID string) error {
	if _, err := e.Clip(conversationID, clipID); err != nil {
		return err
	}
	e.player.Complete(clipID)
	return nil
}

// ActiveClip reports which clip currently occupies the playback slot.
func (e *Engine) ActiveClip() (string, audio.PlaybackState) {
	return e.player.Active()
}

func (e *Engine) getOrCreate(conversationID string) *conversation {
	e.mu.Lock()
	defer e.mu.Unlock()

	if conversationID != "" {
		if conv, ok := e.conversations[conversationID]; ok {
			return conv
		}
	} else {
		conversationID = uuid.NewString()
	}

	conv := &conversation{
		id:    conversationID,
		clips: make(map[string][]byte),
	}
	e.conversations[conversationID] = conv
	return conv
}

func (e *Engine) get(conversationID string) (*conversation, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	conv, ok := e.conversations[conversationID]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return conv, nil
}

func (e *Engine) logTurn(conversationID, role, text string) {
	if e.logger == nil {
		return
	}
	go func() {
		_ = e.logger.LogTurn(conversationID, role, text)
	}()
}
