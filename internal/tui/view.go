package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hundred/internal/model"
	"github.com/verte-zerg/hundred/internal/render"
	"github.com/verte-zerg/hundred/internal/theme"
)

const emptyPageText = "Nothing to show yet."

type palette struct {
	dayTitle   lipgloss.Style
	todayTitle lipgloss.Style
	title      lipgloss.Style
	text       lipgloss.Style
	label      lipgloss.Style
	muted      lipgloss.Style
	link       lipgloss.Style
	errorText  lipgloss.Style
	selected   lipgloss.Style
	border     lipgloss.Color
	accent     lipgloss.Color
	hidden     lipgloss.Color
}

var (
	lightPalette = palette{
		dayTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A")).Bold(true),
		todayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#9A6B12")).Bold(true),
		title:      lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E1E")).Bold(true),
		text:       lipgloss.NewStyle().Foreground(lipgloss.Color("#2B2B2B")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E1E")).Bold(true),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		link:       lipgloss.NewStyle().Foreground(lipgloss.Color("#1F5FBF")).Underline(true),
		errorText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#C62828")),
		selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9A6B12")).Bold(true),
		border:     lipgloss.Color("#B0B0B0"),
		accent:     lipgloss.Color("#9A6B12"),
		hidden:     lipgloss.Color("#E0E0E0"),
	}
	darkPalette = palette{
		dayTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0")).Bold(true),
		todayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
		title:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		text:       lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
		link:       lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB2FF")).Underline(true),
		errorText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
		border:     lipgloss.Color("#4A4A4A"),
		accent:     lipgloss.Color("#C89A3A"),
		hidden:     lipgloss.Color("#2A2A2A"),
	}
)

func paletteFor(t theme.Theme) palette {
	if t.IsDark() {
		return darkPalette
	}
	return lightPalette
}

// viewState carries everything besides the mounted blocks that affects rendering.
type viewState struct {
	width     int
	theme     theme.Theme
	selected  int
	acked     map[int]bool
	expanded  map[int]bool
	revealed  map[int]bool
	revealAll bool
	expandAll bool
}

// layout records the first content line of each day block and question.
type layout struct {
	blockStarts    []int
	questionStarts []int
	lines          int
}

type sheet struct {
	lines []string
}

func (s *sheet) add(text string) int {
	start := len(s.lines)
	s.lines = append(s.lines, strings.Split(text, "\n")...)
	return start
}

func (s *sheet) String() string {
	return strings.Join(s.lines, "\n")
}

// RenderStatic renders a canvas fully expanded and revealed, without selection.
func RenderStatic(c *Canvas, width int, t theme.Theme) string {
	out, _ := renderCanvas(c, viewState{
		width:     width,
		theme:     t,
		selected:  -1,
		revealAll: true,
		expandAll: true,
	})
	return out
}

func renderCanvas(c *Canvas, st viewState) (string, layout) {
	pal := paletteFor(st.theme)
	if st.width <= 0 {
		st.width = 80
	}
	var lay layout
	if c.Failure() != "" {
		return pal.errorText.Render(c.Failure()), lay
	}
	if len(c.Blocks()) == 0 {
		return pal.muted.Render(emptyPageText), lay
	}
	var sh sheet
	idx := 0
	for bi, block := range c.Blocks() {
		if bi > 0 {
			sh.add("")
		}
		revealed := st.revealAll || st.revealed[bi]
		titleStyle := pal.dayTitle
		if block.Today {
			titleStyle = pal.todayTitle
		}
		if !revealed {
			titleStyle = pal.muted
		}
		lay.blockStarts = append(lay.blockStarts, sh.add(titleStyle.Render(block.Title)))
		for _, q := range block.Questions {
			lay.questionStarts = append(lay.questionStarts, sh.add(renderQuestion(q, idx, st, pal, revealed)))
			idx++
		}
	}
	lay.lines = len(sh.lines)
	return sh.String(), lay
}

func renderQuestion(b render.Block, idx int, st viewState, pal palette, revealed bool) string {
	inner := st.width - 4
	if inner < 10 {
		inner = 10
	}
	selected := idx == st.selected
	parts := make([]string, 0, len(b.Units))
	for _, u := range b.Units {
		switch u := u.(type) {
		case *render.Header:
			parts = append(parts, renderHeader(u, st.acked[idx], selected, pal))
		case *render.Body:
			parts = append(parts, pal.text.Render(wrapText(u.Text, inner)))
		case *render.TestCases:
			parts = append(parts, renderTestCases(u, st.expandAll || st.expanded[idx], inner, pal))
		case *render.VideoLink:
			parts = append(parts, pal.link.Render(u.Label+" ↗")+" "+pal.muted.Render(u.Href))
		case *render.Notes:
			parts = append(parts, renderNotes(u, inner, pal))
		}
	}

	border := lipgloss.RoundedBorder()
	if b.Role == render.RoleCurrent {
		border = lipgloss.ThickBorder()
	}
	color := sectionColor(b.Color, pal)
	switch {
	case !revealed:
		color = pal.hidden
	case selected:
		color = pal.accent
	}
	box := lipgloss.NewStyle().
		Border(border, true).
		BorderForeground(color).
		Padding(0, 1).
		Width(st.width - 2)
	return box.Render(strings.Join(parts, "\n"))
}

func renderHeader(h *render.Header, acked, selected bool, pal palette) string {
	label := h.Copy.Label
	if acked {
		label = h.Copy.AckLabel
	}
	var segments []string
	if selected {
		segments = append(segments, pal.selected.Render("›"))
	}
	if h.Icon != "" {
		segments = append(segments, h.Icon)
	}
	segments = append(segments, pal.title.Render(h.Title), label)
	return strings.Join(segments, " ")
}

func renderTestCases(tc *render.TestCases, expanded bool, width int, pal palette) string {
	if !expanded {
		return pal.muted.Render("▸ " + tc.Summary)
	}
	lines := []string{pal.muted.Render("▾ " + tc.Summary)}
	valueWidth := width - 2
	for _, c := range tc.Cases {
		for _, f := range c.Fields {
			lines = append(lines, "  "+pal.label.Render(f.Label))
			lines = append(lines, indent(pal.text.Render(wrapText(f.Value, valueWidth)), "  "))
		}
	}
	return strings.Join(lines, "\n")
}

func renderNotes(n *render.Notes, width int, pal palette) string {
	switch n.Kind {
	case model.NoteImage:
		return pal.muted.Render(n.Alt+":") + " " + pal.link.Render(n.Value)
	default:
		return pal.text.Render(wrapText(n.Value, width))
	}
}

func sectionColor(c string, pal palette) lipgloss.Color {
	if strings.HasPrefix(c, "#") && (len(c) == 4 || len(c) == 7) {
		return lipgloss.Color(c)
	}
	return pal.border
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
