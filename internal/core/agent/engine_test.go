package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkaniai/dukkani-ai-be/internal/core/audio"
	"github.com/dukkaniai/dukkani-ai-be/internal/core/genai"
)

type fakeAI struct {
	greeting    string
	greetingErr error
	pcm         []byte
	speechErr   error
	reply       string
	replyErr    error

	textCalls   int
	speechCalls int
	chatHistory []genai.Turn
}

func (f *fakeAI) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.textCalls++
	return f.greeting, f.greetingErr
}

func (f *fakeAI) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	f.speechCalls++
	return f.pcm, f.speechErr
}

func (f *fakeAI) Chat(ctx context.Context, systemPrompt string, history []genai.Turn, message string) (string, error) {
	f.chatHistory = history
	return f.reply, f.replyErr
}

func newTestEngine(ai *fakeAI) *Engine {
	return NewEngine(ai, audio.NewPlayer(), nil)
}

func TestGenerateTranscriptShape(t *testing.T) {
	ai := &fakeAI{greeting: "Salam! Rayan here from TestStore."}
	engine := newTestEngine(ai)

	snap, err := engine.Generate(context.Background(), "", Config{StoreName: "TestStore"})
	require.NoError(t, err)
	require.NotEmpty(t, snap.ID)
	require.Len(t, snap.Messages, 2)

	assert.Equal(t, RoleSystem, snap.Messages[0].Role)
	assert.Equal(t, "New order received (Cash on Delivery)", snap.Messages[0].Text)
	assert.Equal(t, RoleAgent, snap.Messages[1].Role)
	assert.Equal(t, ai.greeting, snap.Messages[1].Text)
	assert.False(t, snap.Composing)
}

func TestGenerateGreetingFailureAborts(t *testing.T) {
	ai := &fakeAI{greetingErr: errors.New("quota exceeded")}
	engine := newTestEngine(ai)

	_, err := engine.Generate(context.Background(), "", Config{})
	assert.Error(t, err)
}

func TestGenerateWithVoiceNote(t *testing.T) {
	ai := &fakeAI{greeting: "hello", pcm: []byte{1, 2, 3, 4}}
	engine := newTestEngine(ai)

	snap, err := engine.Generate(context.Background(), "", Config{VoiceNotes: true})
	require.NoError(t, err)
	require.Len(t, snap.Messages, 3)

	voice := snap.Messages[2]
	assert.Equal(t, RoleAgent, voice.Role)
	assert.Empty(t, voice.Text)
	require.NotEmpty(t, voice.AudioClip)

	wav, err := engine.Clip(snap.ID, voice.AudioClip)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(wav[:4]))
}

func TestGenerateVoiceFailureDegradesSilently(t *testing.T) {
	ai := &fakeAI{greeting: "hello", speechErr: errors.New("tts down")}
	engine := newTestEngine(ai)

	snap, err := engine.Generate(context.Background(), "", Config{VoiceNotes: true})
	require.NoError(t, err)
	// Text transcript intact, just no voice bubble.
	assert.Len(t, snap.Messages, 2)
}

func TestGenerateOnExistingConversationResets(t *testing.T) {
	ai := &fakeAI{greeting: "hi", reply: "sure"}
	engine := newTestEngine(ai)

	snap, err := engine.Generate(context.Background(), "", Config{})
	require.NoError(t, err)

	_, err = engine.Reply(context.Background(), snap.ID, "is it available?", Config{})
	require.NoError(t, err)

	again, err := engine.Generate(context.Background(), snap.ID, Config{})
	require.NoError(t, err)
	assert.Equal(t, snap.ID, again.ID)
	// Old turns are gone, IDs restart from the top.
	require.Len(t, again.Messages, 2)
	assert.Equal(t, 1, again.Messages[0].ID)
}

func TestReplyAppendsCustomerThenAgent(t *testing.T) {
	ai := &fakeAI{greeting: "hi", reply: "Yes, in stock!"}
	engine := newTestEngine(ai)

	snap, err := engine.Generate(context.Background(), "", Config{})
	require.NoError(t, err)

	snap, err = engine.Reply(context.Background(), snap.ID, "do you have it in red?", Config{})
	require.NoError(t, err)
	require.Len(t, snap.Messages, 4)

	customer := snap.Messages[2]
	assert.Equal(t, RoleCustomer, customer.Role)
	assert.Equal(t, "do you have it in red?", customer.Text)
	assert.Equal(t, StatusSent, customer.Status)

	agent := snap.Messages[3]
	assert.Equal(t, RoleAgent, agent.Role)
	assert.Equal(t, "Yes, in stock!", agent.Text)
	assert.False(t, snap.Composing)

	// Provider history excludes the system notice and the in-flight message.
	require.Len(t, ai.chatHistory, 1)
	assert.Equal(t, "model", ai.chatHistory[0].Role)
}

func TestReplyEmptyMessage(t *testing.T) {
	engine := newTestEngine(&fakeAI{greeting: "hi"})

	snap, err := engine.Generate(context.Background(), "", Config{})
	require.NoError(t, err)

	_, err = engine.Reply(context.Background(), snap.ID, "", Config{})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestReplyUnknownConversation(t *testing.T) {
	engine := newTestEngine(&fakeAI{})

	_, err := engine.Reply(context.Background(), "missing", "hello", Config{})
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestReplyFailureKeepsCustomerTurn(t *testing.T) {
	ai := &fakeAI{greeting: "hi", replyErr: errors.New("model offline")}
	engine := newTestEngine(ai)

	snap, err := engine.Generate(context.Background(), "", Config{})
	require.NoError(t, err)

	_, err = engine.Reply(context.Background(), snap.ID, "hello?", Config{})
	assert.Error(t, err)

	snap, err = engine.Transcript(snap.ID)
	require.NoError(t, err)
	// Customer turn stays, composing indicator cleared, no agent turn.
	require.Len(t, snap.Messages, 3)
	assert.Equal(t, RoleCustomer, snap.Messages[2].Role)
	assert.False(t, snap.Composing)
}

// A reply that lands after the conversation was regenerated must not leak
// into the fresh transcript.
func TestStaleReplyDropped(t *testing.T) {
	release := make(chan struct{})
	ai := &blockingAI{
		fakeAI:  fakeAI{greeting: "hi", reply: "late"},
		entered: make(chan struct{}),
		release: release,
	}
	engine := NewEngine(ai, audio.NewPlayer(), nil)

	snap, err := engine.Generate(context.Background(), "", Config{})
	require.NoError(t, err)

	done := make(chan *Snapshot, 1)
	go func() {
		s, _ := engine.Reply(context.Background(), snap.ID, "first", Config{})
		done <- s
	}()

	// Wait until the reply is in flight, then regenerate underneath it.
	<-ai.entered
	_, err = engine.Generate(context.Background(), snap.ID, Config{})
	require.NoError(t, err)
	close(release)

	<-done
	final, err := engine.Transcript(snap.ID)
	require.NoError(t, err)
	require.Len(t, final.Messages, 2)
	for _, msg := range final.Messages {
		assert.NotEqual(t, "late", msg.Text)
	}
	assert.False(t, final.Composing)
}

type blockingAI struct {
	fakeAI
	entered chan struct{}
	release chan struct{}
	once    bool
}

func (b *blockingAI) Chat(ctx context.Context, systemPrompt string, history []genai.Turn, message string) (string, error) {
	if !b.once {
		b.once = true
		close(b.entered)
		<-b.release
	}
	return b.fakeAI.Chat(ctx, systemPrompt, history, message)
}

func TestTogglePlaybackSingleSlot(t *testing.T) {
	ai := &fakeAI{greeting: "hi", pcm: []byte{1, 2}}
	engine := newTestEngine(ai)

	snap, err := engine.Generate(context.Background(), "", Config{VoiceNotes: true})
	require.NoError(t, err)
	clipID := snap.Messages[2].AudioClip

	state, err := engine.TogglePlayback(snap.ID, clipID)
	require.NoError(t, err)
	assert.Equal(t, audio.StatePlaying, state)

	state, err = engine.TogglePlayback(snap.ID, clipID)
	require.NoError(t, err)
	assert.Equal(t, audio.StatePaused, state)

	_, err = engine.TogglePlayback(snap.ID, "nope")
	assert.Error(t, err)
}

func TestCompletePlaybackFreesSlot(t *testing.T) {
	ai := &fakeAI{greeting: "hi", pcm: []byte{1, 2}}
	engine := newTestEngine(ai)

	snap, err := engine.Generate(context.Background(), "", Config{VoiceNotes: true})
	require.NoError(t, err)
	clipID := snap.Messages[2].AudioClip

	_, err = engine.TogglePlayback(snap.ID, clipID)
	require.NoError(t, err)

	active, state := engine.ActiveClip()
	assert.Equal(t, clipID, active)
	assert.Equal(t, audio.StatePlaying, state)

	require.NoError(t, engine.CompletePlayback(snap.ID, clipID))
	active, state = engine.ActiveClip()
	assert.Empty(t, active)
	assert.Equal(t, audio.StateStopped, state)

	// A finished clip restarts from the top rather than resuming.
	state, err = engine.TogglePlayback(snap.ID, clipID)
	require.NoError(t, err)
	assert.Equal(t, audio.StatePlaying, state)

	err = engine.CompletePlayback(snap.ID, "nope")
	assert.Error(t, err)
}

// While the agent reply is still in flight, the customer turn must already
// be visible in the transcript with the composing indicator on.
func TestTranscriptShowsComposingDuringReply(t *testing.T) {
	release := make(chan struct{})
	ai := &blockingAI{
		fakeAI:  fakeAI{greeting: "hi", reply: "one moment"},
		entered: make(chan struct{}),
		release: release,
	}
	engine := NewEngine(ai, audio.NewPlayer(), nil)

	snap, err := engine.Generate(context.Background(), "", Config{})
	require.NoError(t, err)

	done := make(chan *Snapshot, 1)
	go func() {
		s, _ := engine.Reply(context.Background(), snap.ID, "anyone there?", Config{})
		done <- s
	}()

	<-ai.entered
	mid, err := engine.Transcript(snap.ID)
	require.NoError(t, err)
	require.Len(t, mid.Messages, 3)
	customer := mid.Messages[2]
	assert.Equal(t, RoleCustomer, customer.Role)
	assert.Equal(t, "anyone there?", customer.Text)
	assert.Equal(t, StatusSent, customer.Status)
	assert.True(t, mid.Composing)
	close(release)

	final := <-done
	require.NotNil(t, final)
	require.Len(t, final.Messages, 4)
	assert.False(t, final.Composing)
}
