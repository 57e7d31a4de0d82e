package audio

import (
	"sync"
)

// PlaybackState of the active clip.
type PlaybackState string

const (
	StateStopped PlaybackState = "stopped"
	StatePlaying PlaybackState = "playing"
	StatePaused  PlaybackState = "paused"
)

// Player is a single-slot playback registry: at most one clip is playing at
// any time across the whole process.
type Player struct {
	mu     sync.Mutex
	clipID string
	state  PlaybackState
}

func NewPlayer() *Player {
	return &Player{state: StateStopped}
}

// Toggle drives the playback control for a clip and returns the resulting
// state of that clip. Starting a new clip stops whichever clip was active;
// toggling the active clip pauses/resumes it.
func (p *Player) Toggle(clipID string) PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.clipID == clipID {
		switch p.state {
		case StatePlaying:
			p.state = StatePaused
		default:
			p.state = StatePlaying
		}
		return p.state
	}

	p.clipID = clipID
	p.state = StatePlaying
	return p.state
}

// Complete clears the slot when a clip finishes on its own.
func (p *Player) Complete(clipID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.clipID == clipID {
		p.clipID = ""
		p.state = StateStopped
	}
}

// Stop force-clears the slot.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clipID = ""
	p.state = StateStopped
}

// Active returns the active clip ID and its state. The clip ID is empty when
// nothing is loaded.
func (p *Player) Active() (string, PlaybackState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateStopped {
		return "", StateStopped
	}
	return p.clipID, p.state
}
