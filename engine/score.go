package engine

import "time"

// Scoring follows the guideline tables: ordinary clears score
// 100/300/500/800 base points for 1-4 lines, T-spin clears 800/1200/1600
// for 1-3 lines. A back-to-back Tetris or T-spin multiplies the base by
// 1.5 (floored) before the level multiplier. Consecutive clearing locks
// build a combo that pays 50 points per step, scaled by level.

var (
	clearBase = [5]int{0, 100, 300, 500, 800}
	tSpinBase = [4]int{0, 800, 1200, 1600}
)

const (
	softDropPoint    = 1
	hardDropPerRow   = 2
	comboStepPoints  = 50
	linesPerLevel    = 10
	baseFallInterval = 1000 * time.Millisecond
	fallStepPerLevel = 75 * time.Millisecond
	minFallInterval  = 50 * time.Millisecond
)

// LockPoints converts a clearing lock into points. comboStreak is the
// number of consecutive clearing locks completed before this one;
// backToBack applies only when this clear itself qualifies (a four-line
// clear or a T-spin). A T-spin that clears no lines earns nothing here.
func LockPoints(linesCleared, level int, tSpin, backToBack bool, comboStreak int) int {
	if linesCleared <= 0 {
		return 0
	}
	var base int
	if tSpin {
		base = tSpinBase[min(linesCleared, 3)]
	} else {
		base = clearBase[min(linesCleared, 4)]
	}
	if backToBack && clearQualifiesBackToBack(linesCleared, tSpin) {
		base = base * 3 / 2
	}
	return base*level + comboStepPoints*comboStreak*level
}

func clearQualifiesBackToBack(linesCleared int, tSpin bool) bool {
	return linesCleared >= 4 || (tSpin && linesCleared > 0)
}

// ClearLabel names a clearing lock for display.
func ClearLabel(linesCleared int, tSpin bool) string {
	if tSpin {
		switch linesCleared {
		case 1:
			return "T-SPIN SINGLE"
		case 2:
			return "T-SPIN DOUBLE"
		default:
			return "T-SPIN TRIPLE"
		}
	}
	switch linesCleared {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	default:
		return "TETRIS"
	}
}

// LevelForLines maps cumulative cleared lines to a level, starting at 1.
func LevelForLines(lines int) int {
	return lines/linesPerLevel + 1
}

// FallIntervalForLevel is the automatic drop period: 1000ms at level 1,
// 75ms faster per level, clamped at 50ms.
func FallIntervalForLevel(level int) time.Duration {
	interval := baseFallInterval - time.Duration(level-1)*fallStepPerLevel
	if interval < minFallInterval {
		return minFallInterval
	}
	return interval
}
