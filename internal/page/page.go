// Package page orders day blocks and attaches them to a mount.
package page

import (
	"context"
	"fmt"
	"time"

	"github.com/verte-zerg/hundred/internal/bank"
	"github.com/verte-zerg/hundred/internal/model"
	"github.com/verte-zerg/hundred/internal/render"
	"github.com/verte-zerg/hundred/internal/schedule"
)

// FailureMessage replaces the mount contents when the data source cannot be loaded.
const FailureMessage = "Failed to load questions. Please try again later."

// DayBlock is one labelled day with its rendered questions.
type DayBlock struct {
	Day       int
	Today     bool
	Title     string
	Questions []render.Block
}

// Mount is a display surface for day blocks.
type Mount interface {
	Clear()
	Append(block DayBlock)
	Fail(message string)
}

// Source loads the data document.
type Source func(ctx context.Context) (model.Document, error)

// FileSource returns a Source reading path or URL with bank.Load.
func FileSource(source string) Source {
	return func(ctx context.Context) (model.Document, error) {
		return bank.Load(ctx, source)
	}
}

// Assemble builds today's block followed by past days, oldest first.
// Nothing is produced when currentDay is outside [1, plan.TotalDays].
func Assemble(plan schedule.Plan, phaseOne, phaseTwo []model.FlattenedQuestion, currentDay int) []DayBlock {
	if currentDay < 1 || currentDay > plan.TotalDays {
		return nil
	}
	blocks := make([]DayBlock, 0, currentDay)
	blocks = append(blocks, dayBlock(plan, phaseOne, phaseTwo, currentDay, currentDay))
	for d := 1; d < currentDay && d <= plan.TotalDays; d++ {
		blocks = append(blocks, dayBlock(plan, phaseOne, phaseTwo, d, currentDay))
	}
	return blocks
}

// Build derives phases and the current day from doc and assembles the page.
func Build(doc model.Document, plan schedule.Plan, now time.Time) []DayBlock {
	phaseOne, phaseTwo := bank.Phases(doc, plan.PhaseOneDays*plan.PhaseOneDaily)
	current, ok := plan.CurrentDay(now)
	if !ok {
		return nil
	}
	return Assemble(plan, phaseOne, phaseTwo, current)
}

// Load runs one load cycle: clear the mount, load the document and append every
// day block. A load failure replaces the contents with FailureMessage.
func Load(ctx context.Context, src Source, plan schedule.Plan, now time.Time, m Mount) error {
	m.Clear()
	doc, err := src(ctx)
	if err != nil {
		m.Fail(FailureMessage)
		return fmt.Errorf("failed to load questions: %w", err)
	}
	MountAll(m, Build(doc, plan, now))
	return nil
}

// MountAll appends blocks to m in order.
func MountAll(m Mount, blocks []DayBlock) {
	for _, b := range blocks {
		m.Append(b)
	}
}

func dayBlock(plan schedule.Plan, phaseOne, phaseTwo []model.FlattenedQuestion, day, currentDay int) DayBlock {
	qs := plan.QuestionsForDay(day-1, phaseOne, phaseTwo)
	block := DayBlock{
		Day:       day,
		Today:     day == currentDay,
		Title:     DayTitle(day, day == currentDay),
		Questions: make([]render.Block, 0, len(qs)),
	}
	for _, q := range qs {
		block.Questions = append(block.Questions, render.Question(q, day, currentDay))
	}
	return block
}

// DayTitle labels a day block.
func DayTitle(day int, today bool) string {
	if today {
		return fmt.Sprintf("📅 Day %d (Today)", day)
	}
	return fmt.Sprintf("Day %d", day)
}
