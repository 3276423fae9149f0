package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/verte-zerg/hundred/internal/model"
	"github.com/verte-zerg/hundred/internal/schedule"
)

// Row describes one scheduled day.
type Row struct {
	Day       int
	Date      time.Time
	Phase     int
	Questions []string
	Sections  []string
	Status    string
}

// Day statuses.
const (
	StatusDone     = "done"
	StatusToday    = "today"
	StatusUpcoming = "upcoming"
)

// Summary totals the schedule.
type Summary struct {
	PhaseOneQuestions int
	PhaseTwoQuestions int
	ScheduledDays     int
	EmptyDays         int
	CurrentDay        int
	HasCurrent        bool
}

// BuildPlan lists every day of the plan with its questions. currentDay is 0 when
// the challenge has not started.
func BuildPlan(plan schedule.Plan, phaseOne, phaseTwo []model.FlattenedQuestion, currentDay int) []Row {
	rows := make([]Row, 0, plan.TotalDays)
	for d := 1; d <= plan.TotalDays; d++ {
		qs := plan.QuestionsForDay(d-1, phaseOne, phaseTwo)
		row := Row{
			Day:    d,
			Date:   plan.Start.AddDate(0, 0, d-1),
			Phase:  plan.PhaseOf(d - 1),
			Status: status(d, currentDay),
		}
		seen := map[string]struct{}{}
		for _, q := range qs {
			row.Questions = append(row.Questions, fmt.Sprintf("Q%d", q.ID))
			if _, ok := seen[q.Section]; ok {
				continue
			}
			seen[q.Section] = struct{}{}
			row.Sections = append(row.Sections, q.Section)
		}
		rows = append(rows, row)
	}
	return rows
}

// Summarize totals rows.
func Summarize(rows []Row, phaseOne, phaseTwo []model.FlattenedQuestion, currentDay int) Summary {
	s := Summary{
		PhaseOneQuestions: len(phaseOne),
		PhaseTwoQuestions: len(phaseTwo),
		CurrentDay:        currentDay,
		HasCurrent:        currentDay > 0,
	}
	for _, r := range rows {
		if len(r.Questions) == 0 {
			s.EmptyDays++
			continue
		}
		s.ScheduledDays++
	}
	return s
}

// RenderPlan writes the schedule table.
func RenderPlan(w io.Writer, rows []Row) error {
	for _, line := range formatTable(planColumns, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary prints the schedule totals.
func RenderSummary(w io.Writer, s Summary) error {
	current := "not started"
	if s.HasCurrent {
		current = strconv.Itoa(s.CurrentDay)
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Current day: %s", current),
		fmt.Sprintf("Phase one questions: %d", s.PhaseOneQuestions),
		fmt.Sprintf("Phase two questions: %d", s.PhaseTwoQuestions),
		fmt.Sprintf("Days with questions: %d", s.ScheduledDays),
		fmt.Sprintf("Empty days: %d", s.EmptyDays),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func status(day, currentDay int) string {
	switch {
	case currentDay <= 0 || day > currentDay:
		return StatusUpcoming
	case day == currentDay:
		return StatusToday
	default:
		return StatusDone
	}
}
