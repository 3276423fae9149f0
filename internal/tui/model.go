package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hundred/internal/page"
	"github.com/verte-zerg/hundred/internal/render"
	"github.com/verte-zerg/hundred/internal/schedule"
	"github.com/verte-zerg/hundred/internal/theme"
)

const (
	loadingText         = "Loading questions..."
	defaultRevealMargin = 2
	maxContentWidth     = 100
)

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))

// Options configures a Model.
type Options struct {
	Plan         schedule.Plan
	Source       page.Source
	Now          func() time.Time
	Prefs        theme.Preferences
	Clipboard    render.Clipboard
	Theme        theme.Theme
	RevealMargin int
}

type bankLoadedMsg struct {
	canvas *Canvas
	err    error
}

type copyRevertMsg struct {
	index int
}

// Model implements the Bubble Tea challenge UI.
type Model struct {
	opts Options

	canvas  *Canvas
	loading bool
	status  string

	theme    theme.Theme
	viewport viewport.Model
	keys     keyMap
	help     help.Model

	width  int
	height int

	selected int
	acked    map[int]bool
	expanded map[int]bool
	revealed map[int]bool
	layout   layout
}

// NewModel constructs a challenge TUI model.
func NewModel(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RevealMargin < 0 {
		opts.RevealMargin = defaultRevealMargin
	}
	m := &Model{
		opts:     opts,
		canvas:   &Canvas{},
		loading:  true,
		theme:    opts.Theme,
		viewport: viewport.New(0, 0),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.resetView()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *Model) loadCmd() tea.Cmd {
	src := m.opts.Source
	plan := m.opts.Plan
	now := m.opts.Now()
	return func() tea.Msg {
		c := &Canvas{}
		err := page.Load(context.Background(), src, plan, now, c)
		return bankLoadedMsg{canvas: c, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayout()
		return m, nil
	case bankLoadedMsg:
		m.loading = false
		m.canvas = msg.canvas
		if msg.err != nil {
			logErrf("%v\n", msg.err)
		}
		m.resetView()
		m.refresh()
		return m, nil
	case copyRevertMsg:
		delete(m.acked, msg.index)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updateLayout()
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	}
	if m.loading {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Next):
		m.moveSelection(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveSelection(-1)
		return m, nil
	case key.Matches(msg, m.keys.Expand):
		if m.selected >= 0 {
			m.expanded[m.selected] = !m.expanded[m.selected]
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.reveal()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.reveal()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.reveal()
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) renderHeader() string {
	text := "100 Days of Code"
	if current, ok := m.opts.Plan.CurrentDay(m.opts.Now()); ok {
		text = fmt.Sprintf("100 Days of Code · Day %d of %d", current, m.opts.Plan.TotalDays)
	}
	return headerStyle.Render(truncateLine(text+" · "+string(m.theme), m.width))
}

func (m *Model) renderBody() string {
	if m.loading {
		return paletteFor(m.theme).muted.Render(loadingText)
	}
	return m.viewport.View()
}

func (m *Model) renderFooter() string {
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = paletteFor(m.theme).errorText.Render(m.status) + "\n" + footer
	}
	return footer
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = 1
	footerHeight = lipgloss.Height(m.help.View(m.keys))
	if m.status != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width > 0 && m.height > 0 {
		_, bodyHeight, _ := m.layoutHeights()
		m.viewport.Width = m.width
		m.viewport.Height = bodyHeight
	}
	m.refresh()
}

func (m *Model) contentWidth() int {
	w := m.width
	if w <= 0 {
		w = 80
	}
	if w > maxContentWidth {
		w = maxContentWidth
	}
	return w
}

func (m *Model) resetView() {
	m.acked = map[int]bool{}
	m.expanded = map[int]bool{}
	m.revealed = map[int]bool{}
	m.selected = -1
	if m.canvas.QuestionCount() > 0 {
		m.selected = 0
	}
	m.viewport.GotoTop()
}

// refresh re-renders the canvas into the viewport and reveals whatever is in view.
func (m *Model) refresh() {
	m.render()
	m.reveal()
}

func (m *Model) render() {
	content, lay := renderCanvas(m.canvas, viewState{
		width:    m.contentWidth(),
		theme:    m.theme,
		selected: m.selected,
		acked:    m.acked,
		expanded: m.expanded,
		revealed: m.revealed,
	})
	m.layout = lay
	m.viewport.SetContent(content)
}

// reveal marks every block whose title has scrolled into view. Marks are never
// removed. It reports whether anything changed.
func (m *Model) reveal() bool {
	if m.viewport.Height <= 0 {
		return false
	}
	limit := m.viewport.YOffset + m.viewport.Height - m.opts.RevealMargin
	if limit <= m.viewport.YOffset {
		limit = m.viewport.YOffset + 1
	}
	changed := false
	for i, start := range m.layout.blockStarts {
		if start < limit && !m.revealed[i] {
			m.revealed[i] = true
			changed = true
		}
	}
	if changed {
		m.render()
	}
	return changed
}

func (m *Model) moveSelection(delta int) {
	count := m.canvas.QuestionCount()
	if count == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.selected = next
	m.render()
	if next < len(m.layout.questionStarts) {
		m.viewport.SetYOffset(m.layout.questionStarts[next])
	}
	m.reveal()
}

func (m *Model) copySelected() tea.Cmd {
	block, ok := m.selectedBlock()
	if !ok {
		return nil
	}
	header := block.Header()
	if header == nil {
		return nil
	}
	if !render.Copy(m.opts.Clipboard, header.Copy) {
		return nil
	}
	idx := m.selected
	m.acked[idx] = true
	m.render()
	return tea.Tick(render.CopyAckDelay, func(time.Time) tea.Msg {
		return copyRevertMsg{index: idx}
	})
}

func (m *Model) selectedBlock() (render.Block, bool) {
	if m.selected < 0 {
		return render.Block{}, false
	}
	idx := 0
	for _, day := range m.canvas.Blocks() {
		for _, q := range day.Questions {
			if idx == m.selected {
				return q, true
			}
			idx++
		}
	}
	return render.Block{}, false
}

func (m *Model) toggleTheme() {
	if m.opts.Prefs == nil {
		m.theme = m.theme.Opposite()
		m.render()
		return
	}
	next, err := theme.Toggle(context.Background(), m.opts.Prefs, m.theme)
	if err != nil {
		m.status = err.Error()
		logErrf("%v\n", err)
	} else {
		m.status = ""
	}
	m.theme = next
	m.updateLayout()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
