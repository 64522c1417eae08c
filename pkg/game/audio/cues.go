package audio

import (
	"time"

	"github.com/gopxl/beep"

	"topdown/pkg/game/entities"
)

// Cue names a sound effect
type Cue int

const (
	CueNone Cue = iota
	CueShot
	CueHit
	CueHurt
	CueDeath
	CueLever
	CueDoorOpen
	CueDoorClose
	CueDoorSlam
	CueKey
	CuePickup
	CueDrop
	CueLevel
	CueWin
)

// CueForEvent picks the cue for a drained game event. Hits and deaths of the
// player sound different from those of enemies.
func CueForEvent(ev entities.Event, player entities.ID) Cue {
	switch ev.Kind {
	case entities.EventShot:
		return CueShot
	case entities.EventHit:
		if ev.Source == player {
			return CueHurt
		}
		return CueHit
	case entities.EventDeath:
		if ev.Source == player {
			return CueHurt
		}
		return CueDeath
	case entities.EventLeverToggled:
		return CueLever
	case entities.EventDoorOpening:
		return CueDoorOpen
	case entities.EventDoorClosing:
		return CueDoorClose
	case entities.EventDoorSlammed:
		return CueDoorSlam
	case entities.EventKeyConsumed:
		return CueKey
	case entities.EventItemTaken:
		return CuePickup
	case entities.EventItemDropped:
		return CueDrop
	case entities.EventLevelLoaded:
		return CueLevel
	case entities.EventGameWon:
		return CueWin
	default:
		return CueNone
	}
}

// Streamer synthesizes a cue at the given volume, or returns nil for CueNone
func Streamer(c Cue, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueShot:
		s = tone(880, 440, 60*time.Millisecond, WaveSquare)
	case CueHit:
		s = tone(300, 200, 80*time.Millisecond, WaveSaw)
	case CueHurt:
		s = beep.Mix(
			tone(120, 80, 200*time.Millisecond, WaveSaw),
			newVolume(tone(0, 0, 150*time.Millisecond, WaveNoise), 0.4),
		)
	case CueDeath:
		s = newVolume(tone(0, 0, 250*time.Millisecond, WaveNoise), 0.6)
	case CueLever:
		s = beep.Seq(
			tone(600, 600, 30*time.Millisecond, WaveSquare),
			tone(400, 400, 30*time.Millisecond, WaveSquare),
		)
	case CueDoorOpen:
		s = tone(90, 160, 400*time.Millisecond, WaveSaw)
	case CueDoorClose:
		s = tone(160, 90, 400*time.Millisecond, WaveSaw)
	case CueDoorSlam:
		s = beep.Mix(
			tone(70, 50, 180*time.Millisecond, WaveSquare),
			newVolume(tone(0, 0, 120*time.Millisecond, WaveNoise), 0.5),
		)
	case CueKey:
		s = beep.Seq(
			tone(988, 988, 70*time.Millisecond, WaveSine),
			tone(1319, 1319, 120*time.Millisecond, WaveSine),
		)
	case CuePickup:
		s = tone(660, 990, 90*time.Millisecond, WaveSine)
	case CueDrop:
		s = tone(440, 330, 90*time.Millisecond, WaveSine)
	case CueLevel:
		s = beep.Seq(
			tone(523, 523, 100*time.Millisecond, WaveSine),
			tone(659, 659, 100*time.Millisecond, WaveSine),
			tone(784, 784, 160*time.Millisecond, WaveSine),
		)
	case CueWin:
		s = beep.Seq(
			tone(523, 523, 120*time.Millisecond, WaveSquare),
			tone(659, 659, 120*time.Millisecond, WaveSquare),
			tone(784, 784, 120*time.Millisecond, WaveSquare),
			tone(1047, 1047, 300*time.Millisecond, WaveSquare),
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}
