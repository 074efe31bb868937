package service

import (
	"math"

	"github.com/safezard/safezard-api/internal/dto"
)

// Clearance band thresholds: level 2 starts at 3 completed modules, level 3 at 6.
const (
	clearanceBandSize   = 3
	clearanceLevelTwo   = 3
	clearanceLevelThree = 6
)

// LevelFor derives the gamified clearance tier from a completed-module count.
// Progress resets to zero at each band boundary; that discontinuity is the
// intended design, not a rounding artifact.
func LevelFor(completedCount int) dto.ClearanceState {
	if completedCount < 0 {
		completedCount = 0
	}

	switch {
	case completedCount < clearanceLevelTwo:
		return dto.ClearanceState{
			Level:    1,
			Progress: bandProgress(completedCount),
		}
	case completedCount < clearanceLevelThree:
		return dto.ClearanceState{
			Level:    2,
			Progress: bandProgress(completedCount - clearanceLevelTwo),
		}
	default:
		return dto.ClearanceState{Level: 3, Progress: 100}
	}
}

func bandProgress(completedInBand int) int {
	return int(math.Round(float64(completedInBand) / clearanceBandSize * 100))
}
