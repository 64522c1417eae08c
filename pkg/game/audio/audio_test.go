package audio

import (
	"math"
	"testing"
	"time"

	"topdown/pkg/game/entities"
)

func drain(t *testing.T, c Cue) int {
	t.Helper()
	s := Streamer(c, 0.5)
	if s == nil {
		t.Fatalf("Streamer(%d) = nil", c)
	}
	total := 0
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if math.IsNaN(smp[0]) || math.Abs(smp[0]) > 1 {
				t.Fatalf("cue %d sample = %v, want within [-1,1]", c, smp[0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("cue %d never drained", c)
	return 0
}

func TestOscillator_SquareValues(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, SampleRate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Stream() = %d, %v, want 50, true", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("sample %d = %v, want -1 or 1", i, v)
		}
	}
}

func TestOscillator_StopsAfterDuration(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, SampleRate)
	want := SampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, want+100)
	n, _ := osc.Stream(buf)
	if n != want {
		t.Errorf("Stream() n = %d, want %d", n, want)
	}
	if n, ok := osc.Stream(buf); n != 0 || ok {
		t.Errorf("Stream() after end = %d, %v, want 0, false", n, ok)
	}
}

func TestEnvelope_StartsSilent(t *testing.T) {
	d := 20 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, SampleRate), d, 5*time.Millisecond, 5*time.Millisecond, SampleRate)

	buf := make([][2]float64, 4)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0][0])
	}
	if math.Abs(buf[3][0]) >= 1 {
		t.Errorf("sample during attack = %v, want below full volume", buf[3][0])
	}
}

func TestStreamer_EveryCueDrains(t *testing.T) {
	for c := CueShot; c <= CueWin; c++ {
		if n := drain(t, c); n == 0 {
			t.Errorf("cue %d produced no samples", c)
		}
	}
	if s := Streamer(CueNone, 1); s != nil {
		t.Error("Streamer(CueNone) != nil")
	}
}

func TestCueForEvent(t *testing.T) {
	const player entities.ID = 1
	cases := []struct {
		ev   entities.Event
		want Cue
	}{
		{entities.Event{Kind: entities.EventShot, Source: 2}, CueShot},
		{entities.Event{Kind: entities.EventHit, Source: 2}, CueHit},
		{entities.Event{Kind: entities.EventHit, Source: player}, CueHurt},
		{entities.Event{Kind: entities.EventDeath, Source: 2}, CueDeath},
		{entities.Event{Kind: entities.EventLeverToggled}, CueLever},
		{entities.Event{Kind: entities.EventDoorSlammed}, CueDoorSlam},
		{entities.Event{Kind: entities.EventKeyConsumed}, CueKey},
		{entities.Event{Kind: entities.EventGameWon}, CueWin},
		{entities.Event{Kind: entities.EventLevelReset}, CueNone},
	}
	for _, tc := range cases {
		if got := CueForEvent(tc.ev, player); got != tc.want {
			t.Errorf("CueForEvent(%s) = %d, want %d", tc.ev.Kind, got, tc.want)
		}
	}
}

func TestPlayer_DisabledIgnoresCues(t *testing.T) {
	p := NewPlayer(false, 1)
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if p.Enabled() {
		t.Error("Enabled() = true for disabled player")
	}
	if p.Play(CueShot) {
		t.Error("Play() = true for disabled player")
	}
	p.HandleEvents([]entities.Event{{Kind: entities.EventShot}}, 1)
	p.Close()
}
