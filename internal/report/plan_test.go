package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/hundred/internal/model"
	"github.com/verte-zerg/hundred/internal/schedule"
)

func questions(n, base int, section string) []model.FlattenedQuestion {
	out := make([]model.FlattenedQuestion, n)
	for i := range out {
		out[i].ID = base + i
		out[i].Section = section
	}
	return out
}

func TestBuildPlan(t *testing.T) {
	plan := schedule.DefaultPlan(time.UTC)
	one := append(questions(3, 1, "Arrays"), questions(1, 4, "Graphs")...)
	two := questions(2, 50, "Final")
	rows := BuildPlan(plan, one, two, 2)
	if len(rows) != schedule.TotalDays {
		t.Fatalf("expected %d rows, got %d", schedule.TotalDays, len(rows))
	}
	if rows[0].Status != StatusDone || rows[1].Status != StatusToday || rows[2].Status != StatusUpcoming {
		t.Fatalf("unexpected statuses: %s %s %s", rows[0].Status, rows[1].Status, rows[2].Status)
	}
	if strings.Join(rows[1].Questions, ",") != "Q3,Q4" || strings.Join(rows[1].Sections, ",") != "Arrays,Graphs" {
		t.Fatalf("unexpected day 2: %+v", rows[1])
	}
	if len(rows[2].Questions) != 0 || rows[2].Phase != 1 {
		t.Fatalf("expected empty phase-one day 3, got %+v", rows[2])
	}
	if rows[50].Phase != 2 || strings.Join(rows[50].Questions, ",") != "Q50" {
		t.Fatalf("unexpected day 51: %+v", rows[50])
	}
	if !rows[1].Date.Equal(plan.Start.AddDate(0, 0, 1)) {
		t.Fatalf("unexpected date for day 2: %v", rows[1].Date)
	}

	s := Summarize(rows, one, two, 2)
	if s.ScheduledDays != 4 || s.EmptyDays != 96 || s.PhaseOneQuestions != 4 || s.PhaseTwoQuestions != 2 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestRenderPlanAndSummary(t *testing.T) {
	plan := schedule.DefaultPlan(time.UTC)
	rows := BuildPlan(plan, questions(2, 1, "Arrays"), nil, 0)
	var buf bytes.Buffer
	if err := RenderPlan(&buf, rows[:2]); err != nil {
		t.Fatalf("render plan: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Q1, Q2") || !strings.Contains(out, "2025-08-21") || !strings.Contains(out, StatusUpcoming) {
		t.Fatalf("unexpected plan output:\n%s", out)
	}
	buf.Reset()
	if err := RenderSummary(&buf, Summarize(rows, nil, nil, 0)); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "Current day: not started") {
		t.Fatalf("unexpected summary output:\n%s", buf.String())
	}
}
