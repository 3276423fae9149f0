package page

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/verte-zerg/hundred/internal/model"
	"github.com/verte-zerg/hundred/internal/render"
	"github.com/verte-zerg/hundred/internal/schedule"
)

type recordingMount struct {
	cleared int
	blocks  []DayBlock
	failure string
}

func (m *recordingMount) Clear() {
	m.cleared++
	m.blocks = nil
	m.failure = ""
}

func (m *recordingMount) Append(block DayBlock) {
	m.blocks = append(m.blocks, block)
}

func (m *recordingMount) Fail(message string) {
	m.blocks = nil
	m.failure = message
}

func phase(n, base int) []model.FlattenedQuestion {
	out := make([]model.FlattenedQuestion, n)
	for i := range out {
		out[i].ID = base + i
		out[i].Section = "S"
	}
	return out
}

func TestAssembleTodayFirstThenAscending(t *testing.T) {
	plan := schedule.DefaultPlan(time.UTC)
	blocks := Assemble(plan, phase(100, 1), phase(50, 101), 4)
	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(blocks))
	}
	if !blocks[0].Today || blocks[0].Day != 4 || blocks[0].Title != "📅 Day 4 (Today)" {
		t.Fatalf("unexpected first block: %+v", blocks[0])
	}
	for i, want := range []int{1, 2, 3} {
		b := blocks[i+1]
		if b.Day != want || b.Today || b.Title != DayTitle(want, false) {
			t.Fatalf("unexpected past block %d: %+v", i, b)
		}
	}
	if len(blocks[0].Questions) != 2 || blocks[0].Questions[0].QuestionID != 7 {
		t.Fatalf("unexpected today questions: %+v", blocks[0].Questions)
	}
	if blocks[0].Questions[0].Role != render.RoleCurrent || blocks[1].Questions[0].Role != render.RolePast {
		t.Fatalf("unexpected roles")
	}
}

func TestAssembleOutOfRange(t *testing.T) {
	plan := schedule.DefaultPlan(time.UTC)
	if got := Assemble(plan, phase(4, 1), nil, 0); len(got) != 0 {
		t.Fatalf("expected no blocks before the start, got %d", len(got))
	}
	if got := Assemble(plan, phase(4, 1), nil, 101); len(got) != 0 {
		t.Fatalf("expected no blocks past the horizon, got %d", len(got))
	}
	got := Assemble(plan, phase(4, 1), nil, 1)
	if len(got) != 1 || !got[0].Today {
		t.Fatalf("expected a single today block, got %+v", got)
	}
}

func TestLoadMountsBlocks(t *testing.T) {
	plan := schedule.DefaultPlan(time.UTC)
	doc := model.Document{QuestionBank: []model.Section{{
		Name:      "Arrays",
		Questions: []model.Question{{ID: 1}, {ID: 2}, {ID: 3}},
	}}}
	src := func(context.Context) (model.Document, error) { return doc, nil }
	m := &recordingMount{}
	now := plan.Start.Add(24*time.Hour + time.Minute)
	if err := Load(context.Background(), src, plan, now, m); err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.cleared != 1 || len(m.blocks) != 2 {
		t.Fatalf("unexpected mount state: cleared=%d blocks=%d", m.cleared, len(m.blocks))
	}
	if m.blocks[0].Day != 2 || len(m.blocks[0].Questions) != 1 || m.blocks[0].Questions[0].QuestionID != 3 {
		t.Fatalf("unexpected today block: %+v", m.blocks[0])
	}
}

func TestLoadBeforeStartRendersNothing(t *testing.T) {
	plan := schedule.DefaultPlan(time.UTC)
	src := func(context.Context) (model.Document, error) { return model.Document{}, nil }
	m := &recordingMount{blocks: []DayBlock{{Day: 9}}}
	if err := Load(context.Background(), src, plan, plan.Start.Add(-time.Hour), m); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(m.blocks) != 0 {
		t.Fatalf("expected prior contents cleared and nothing rendered, got %d", len(m.blocks))
	}
}

func TestLoadFailure(t *testing.T) {
	plan := schedule.DefaultPlan(time.UTC)
	src := func(context.Context) (model.Document, error) { return model.Document{}, errors.New("offline") }
	m := &recordingMount{}
	if err := Load(context.Background(), src, plan, plan.Start, m); err == nil {
		t.Fatalf("expected error")
	}
	if m.failure != FailureMessage || len(m.blocks) != 0 {
		t.Fatalf("unexpected mount state: %+v", m)
	}
}
