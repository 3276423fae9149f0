// Package schedule maps calendar days onto slices of the two question phases.
package schedule

import (
	"time"

	"github.com/verte-zerg/hundred/internal/model"
)

// Challenge constants.
const (
	TotalDays     = 100
	PhaseOneDays  = 50
	PhaseOneDaily = 2
	PhaseTwoDaily = 1
	// SplitCount is where a single bank is cut into phase one and phase two.
	SplitCount = PhaseOneDays * PhaseOneDaily
)

// Day 1 of the challenge. The month is zero-based.
const (
	EpochYear  = 2025
	EpochMonth = 7
	EpochDay   = 21
)

const day = 24 * time.Hour

// Epoch returns local midnight of day 1 in loc.
func Epoch(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(EpochYear, time.Month(EpochMonth+1), EpochDay, 0, 0, 0, 0, loc)
}

// Plan bundles the scheduling parameters.
type Plan struct {
	Start         time.Time
	TotalDays     int
	PhaseOneDays  int
	PhaseOneDaily int
	PhaseTwoDaily int
}

// DefaultPlan returns the 100-day plan starting at the epoch.
func DefaultPlan(loc *time.Location) Plan {
	return Plan{
		Start:         Epoch(loc),
		TotalDays:     TotalDays,
		PhaseOneDays:  PhaseOneDays,
		PhaseOneDaily: PhaseOneDaily,
		PhaseTwoDaily: PhaseTwoDaily,
	}
}

// CurrentDay returns the 1-based day index for now.
func (p Plan) CurrentDay(now time.Time) (int, bool) {
	return CurrentDayIndex(now, p.Start, p.TotalDays)
}

// QuestionsForDay returns the questions assigned to the 0-based day index.
func (p Plan) QuestionsForDay(dayIdx int, phaseOne, phaseTwo []model.FlattenedQuestion) []model.FlattenedQuestion {
	if dayIdx < 0 {
		return []model.FlattenedQuestion{}
	}
	if dayIdx < p.PhaseOneDays {
		return window(phaseOne, dayIdx*p.PhaseOneDaily, p.PhaseOneDaily)
	}
	offset := dayIdx - p.PhaseOneDays
	return window(phaseTwo, offset*p.PhaseTwoDaily, p.PhaseTwoDaily)
}

// PhaseOf reports which phase (1 or 2) serves the 0-based day index.
func (p Plan) PhaseOf(dayIdx int) int {
	if dayIdx < p.PhaseOneDays {
		return 1
	}
	return 2
}

// CurrentDayIndex returns the 1-based day of today relative to start, clamped to
// totalDays. ok is false when today is before start.
func CurrentDayIndex(today, start time.Time, totalDays int) (int, bool) {
	diff := floorDiv(today.Sub(start), day)
	if diff < 0 {
		return int(diff) + 1, false
	}
	if totalDays > 0 && diff > int64(totalDays-1) {
		diff = int64(totalDays - 1)
	}
	return int(diff) + 1, true
}

// QuestionsForDay applies the default cardinalities: two per phase-one day, one per
// phase-two day. Days past both phases yield an empty slice.
func QuestionsForDay(dayIdx int, phaseOne, phaseTwo []model.FlattenedQuestion, phaseOneDays int) []model.FlattenedQuestion {
	p := Plan{PhaseOneDays: phaseOneDays, PhaseOneDaily: PhaseOneDaily, PhaseTwoDaily: PhaseTwoDaily}
	return p.QuestionsForDay(dayIdx, phaseOne, phaseTwo)
}

func window(items []model.FlattenedQuestion, start, size int) []model.FlattenedQuestion {
	if size <= 0 || start < 0 || start >= len(items) {
		return []model.FlattenedQuestion{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}

func floorDiv(d, unit time.Duration) int64 {
	q := int64(d / unit)
	if d%unit != 0 && d < 0 {
		q--
	}
	return q
}
