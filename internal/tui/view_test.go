package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/hundred/internal/model"
	"github.com/verte-zerg/hundred/internal/page"
	"github.com/verte-zerg/hundred/internal/schedule"
	"github.com/verte-zerg/hundred/internal/theme"
)

func sampleCanvas(t *testing.T, currentDay int) *Canvas {
	t.Helper()
	plan := schedule.DefaultPlan(time.UTC)
	one := []model.FlattenedQuestion{
		{Question: model.Question{ID: 1, Text: "Two sum", TestCases: []model.TestCase{{Input: "1 2", Output: "3", Explanation: "add"}}}, Section: "Arrays", Icon: "#", Color: "#336699"},
		{Question: model.Question{ID: 2, Text: "Reverse", Video: "https://v/2"}, Section: "Arrays", Color: "#336699"},
		{Question: model.Question{ID: 3, Text: "Merge", Notes: &model.Note{Kind: model.NoteText, Value: "use two pointers"}}, Section: "Lists"},
	}
	c := &Canvas{}
	page.MountAll(c, page.Assemble(plan, one, nil, currentDay))
	return c
}

func TestRenderStaticShowsEverything(t *testing.T) {
	out := RenderStatic(sampleCanvas(t, 2), 80, theme.Light)
	for _, want := range []string{
		"📅 Day 2 (Today)",
		"Day 1",
		"Q1 (Arrays)",
		"Q3 (Lists)",
		"Two sum",
		"Input 1:",
		"Explanation 1:",
		"Watch Video",
		"https://v/2",
		"use two pointers",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "Day 2 (Today)") > strings.Index(out, "Day 1") {
		t.Fatalf("expected today block before past days")
	}
}

func TestRenderCanvasCollapsedTestCases(t *testing.T) {
	out, lay := renderCanvas(sampleCanvas(t, 1), viewState{width: 60, selected: 0, revealAll: true})
	if !strings.Contains(out, "▸ Show Sample Test Cases") {
		t.Fatalf("expected collapsed summary:\n%s", out)
	}
	if strings.Contains(out, "Input 1:") {
		t.Fatalf("expected test cases hidden while collapsed")
	}
	if len(lay.blockStarts) != 1 || len(lay.questionStarts) != 2 {
		t.Fatalf("unexpected layout: %+v", lay)
	}
	if lay.blockStarts[0] != 0 || lay.questionStarts[0] != 1 {
		t.Fatalf("unexpected offsets: %+v", lay)
	}
}

func TestRenderCanvasCopyAcknowledgement(t *testing.T) {
	c := sampleCanvas(t, 1)
	out, _ := renderCanvas(c, viewState{width: 60, selected: 0, acked: map[int]bool{0: true}, revealAll: true})
	if !strings.Contains(out, "✅") {
		t.Fatalf("expected acknowledgement label:\n%s", out)
	}
	if strings.Count(out, "📋") != 1 {
		t.Fatalf("expected the other question to keep its copy label:\n%s", out)
	}
}

func TestRenderCanvasFailureAndEmpty(t *testing.T) {
	c := &Canvas{}
	c.Fail(page.FailureMessage)
	out, lay := renderCanvas(c, viewState{width: 60})
	if !strings.Contains(out, page.FailureMessage) || len(lay.blockStarts) != 0 {
		t.Fatalf("unexpected failure render: %q", out)
	}
	c.Clear()
	out, _ = renderCanvas(c, viewState{width: 60})
	if !strings.Contains(out, emptyPageText) {
		t.Fatalf("unexpected empty render: %q", out)
	}
}
