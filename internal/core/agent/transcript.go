package agent

import (
	"sync"
	"time"
)

// Role of a transcript entry.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleSystem   Role = "system"
)

// DeliveryStatus marker shown next to a chat bubble.
type DeliveryStatus string

const (
	StatusSent      DeliveryStatus = "sent"
	StatusDelivered DeliveryStatus = "delivered"
)

// ChatMessage is a single transcript entry. IDs are a per-conversation
// counter, not globally unique.
type ChatMessage struct {
	ID        int            `json:"id"`
	Role      Role           `json:"role"`
	Text      string         `json:"text"`
	AudioClip string         `json:"audio_clip,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Status    DeliveryStatus `json:"status"`
}

// conversation owns the in-memory transcript for one simulated chat.
// generation increments every time the greeting is regenerated so late
// replies from an older run can be recognized and dropped.
type conversation struct {
	mu         sync.Mutex
	id         string
	generation uint64
	nextID     int
	messages   []ChatMessage
	composing  bool
	clips      map[string][]byte
}

func (c *conversation) append(role Role, text, clip string, status DeliveryStatus) ChatMessage {
	c.nextID++
	msg := ChatMessage{
		ID:        c.nextID,
		Role:      role,
		Text:      text,
		AudioClip: clip,
		Timestamp: time.Now(),
		Status:    status,
	}
	c.messages = append(c.messages, msg)
	return msg
}

// reset clears the transcript and invalidates in-flight replies.
func (c *conversation) reset() {
	c.generation++
	c.nextID = 0
	c.messages = nil
	c.composing = false
	c.clips = make(map[string][]byte)
}

// history returns prior turns in chat-API shape, excluding system notices.
func (c *conversation) history() []historyTurn {
	turns := make([]historyTurn, 0, len(c.messages))
	for _, msg := range c.messages {
		switch msg.Role {
		case RoleCustomer:
			turns = append(turns, historyTurn{role: "user", text: msg.Text})
		case RoleAgent:
			if msg.Text != "" {
				turns = append(turns, historyTurn{role: "model", text: msg.Text})
			}
		}
	}
	return turns
}

type historyTurn struct {
	role string
	text string
}

// Snapshot is a point-in-time copy of a conversation handed to callers.
type Snapshot struct {
	ID        string        `json:"id"`
	Messages  []ChatMessage `json:"messages"`
	Composing bool          `json:"composing"`
}

func (c *conversation) snapshot() *Snapshot {
	msgs := make([]ChatMessage, len(c.messages))
	copy(msgs, c.messages)
	return &Snapshot{
		ID:        c.id,
		Messages:  msgs,
		Composing: c.composing,
	}
}
