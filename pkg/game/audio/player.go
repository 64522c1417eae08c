package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"topdown/pkg/game/entities"
)

// maxVoices caps how many cues may overlap
const maxVoices = 8

// Player mixes cues into the speaker
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
}

// NewPlayer creates a player. A disabled player ignores every cue.
func NewPlayer(enabled bool, volume float64) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: enabled,
	}
}

// Init opens the sound device. It does nothing for a disabled player.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues will be heard
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.initialized
}

// Play queues a cue. Cues beyond maxVoices are dropped.
func (p *Player) Play(c Cue) bool {
	if !p.Enabled() {
		return false
	}
	s := Streamer(c, p.volume)
	if s == nil {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len() >= maxVoices {
		return false
	}
	p.mixer.Add(s)
	return true
}

// HandleEvents plays the cue of every event, once per cue kind per batch
func (p *Player) HandleEvents(events []entities.Event, player entities.ID) {
	played := make(map[Cue]bool)
	for _, ev := range events {
		c := CueForEvent(ev, player)
		if c == CueNone || played[c] {
			continue
		}
		played[c] = true
		p.Play(c)
	}
}

// Close silences everything still playing
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
