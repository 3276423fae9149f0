package schedule

import (
	"testing"
	"time"

	"github.com/verte-zerg/hundred/internal/model"
)

func makePhase(n, base int) []model.FlattenedQuestion {
	out := make([]model.FlattenedQuestion, n)
	for i := range out {
		out[i].ID = base + i
	}
	return out
}

func ids(qs []model.FlattenedQuestion) []int {
	out := make([]int, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestCurrentDayIndex(t *testing.T) {
	start := time.Date(2025, time.August, 21, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		offset time.Duration
		want   int
		ok     bool
	}{
		{0, 1, true},
		{23 * time.Hour, 1, true},
		{49 * day, 50, true},
		{99 * day, 100, true},
		{150 * day, 100, true},
		{-time.Hour, 0, false},
		{-2 * day, -1, false},
	}
	for _, tc := range cases {
		got, ok := CurrentDayIndex(start.Add(tc.offset), start, TotalDays)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("offset %v: got %d/%v, want %d/%v", tc.offset, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEpochIsZeroBasedMonth(t *testing.T) {
	e := Epoch(time.UTC)
	if e.Year() != 2025 || e.Month() != time.August || e.Day() != 21 {
		t.Fatalf("unexpected epoch: %v", e)
	}
	plan := DefaultPlan(time.UTC)
	if d, ok := plan.CurrentDay(e.Add(12 * time.Hour)); !ok || d != 1 {
		t.Fatalf("expected day 1 on epoch, got %d/%v", d, ok)
	}
}

func TestQuestionsForDaySlices(t *testing.T) {
	one := makePhase(100, 0)
	two := makePhase(50, 1000)

	check := func(dayIdx int, want []int) {
		t.Helper()
		got := ids(QuestionsForDay(dayIdx, one, two, PhaseOneDays))
		if len(got) != len(want) {
			t.Fatalf("day %d: got %v, want %v", dayIdx, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("day %d: got %v, want %v", dayIdx, got, want)
			}
		}
	}
	check(0, []int{0, 1})
	check(49, []int{98, 99})
	check(50, []int{1000})
	check(99, []int{1049})
	check(100, nil)
	check(5000, nil)
}

func TestQuestionsForDayConcatenation(t *testing.T) {
	one := makePhase(100, 0)
	two := makePhase(50, 1000)
	var all []int
	for d := 0; d < TotalDays; d++ {
		all = append(all, ids(QuestionsForDay(d, one, two, PhaseOneDays))...)
	}
	want := append(ids(one), ids(two)...)
	if len(all) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(all))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Fatalf("mismatch at %d: got %d, want %d", i, all[i], want[i])
		}
	}
}

func TestQuestionsForDayPartialAndEarlyExhaustion(t *testing.T) {
	one := makePhase(5, 0)
	two := makePhase(2, 100)

	if got := ids(QuestionsForDay(2, one, two, PhaseOneDays)); len(got) != 1 || got[0] != 4 {
		t.Fatalf("expected partial final day [4], got %v", got)
	}
	for d := 3; d < PhaseOneDays; d++ {
		if got := QuestionsForDay(d, one, two, PhaseOneDays); len(got) != 0 {
			t.Fatalf("day %d: expected empty phase-one slot, got %v", d, ids(got))
		}
	}
	if got := ids(QuestionsForDay(PhaseOneDays, one, two, PhaseOneDays)); len(got) != 1 || got[0] != 100 {
		t.Fatalf("expected phase two to start after all phase-one days, got %v", got)
	}
}

func TestQuestionsForDayNeverFails(t *testing.T) {
	for _, d := range []int{-1, 0, 1, 1 << 20} {
		if got := QuestionsForDay(d, nil, nil, PhaseOneDays); got == nil || len(got) != 0 {
			t.Fatalf("day %d: expected empty non-nil slice, got %v", d, got)
		}
	}
}

func TestPlanCustomCardinality(t *testing.T) {
	plan := Plan{TotalDays: 10, PhaseOneDays: 2, PhaseOneDaily: 3, PhaseTwoDaily: 2}
	one := makePhase(6, 0)
	two := makePhase(4, 10)
	if got := ids(plan.QuestionsForDay(1, one, two)); len(got) != 3 || got[0] != 3 {
		t.Fatalf("unexpected phase-one day: %v", got)
	}
	if got := ids(plan.QuestionsForDay(3, one, two)); len(got) != 2 || got[0] != 12 {
		t.Fatalf("unexpected phase-two day: %v", got)
	}
	if plan.PhaseOf(1) != 1 || plan.PhaseOf(2) != 2 {
		t.Fatalf("unexpected phase boundaries")
	}
}
