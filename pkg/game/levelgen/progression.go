package levelgen

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// TotalLevels is the number of levels in a full run
const TotalLevels = 10

// Stage groups levels for display; stages cycle as levels advance
type Stage int

const (
	StageOutskirts Stage = iota
	StageCourtyard
	StageArmory
	StageKeep
	StageThrone
)

const stageCount = 5

// StageOf returns the stage of a 1-based level
func StageOf(level int) Stage {
	if level <= 0 {
		return StageOutskirts
	}
	return Stage(((level - 1) * stageCount / TotalLevels) % stageCount)
}

// Name returns the translated stage name
func (s Stage) Name() string {
	switch s {
	case StageCourtyard:
		return gotext.Get("STAGE_COURTYARD")
	case StageArmory:
		return gotext.Get("STAGE_ARMORY")
	case StageKeep:
		return gotext.Get("STAGE_KEEP")
	case StageThrone:
		return gotext.Get("STAGE_THRONE")
	default:
		return gotext.Get("STAGE_OUTSKIRTS")
	}
}

// Title returns the translated display title of a level
func Title(level int) string {
	return fmt.Sprintf(gotext.Get("LEVEL_TITLE"), level, StageOf(level).Name())
}

// IsFinalLevel returns true if the given level (1-based) is the last one
func IsFinalLevel(level, maxLevel int) bool {
	return level >= maxLevel
}

// NextLevel returns the level after current, or 0 when current is the last
func NextLevel(current, maxLevel int) int {
	if current <= 0 || IsFinalLevel(current, maxLevel) {
		return 0
	}
	return current + 1
}
