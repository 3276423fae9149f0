// Package main provides the CLI entrypoint for hundred.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/hundred/internal/bank"
	"github.com/verte-zerg/hundred/internal/config"
	"github.com/verte-zerg/hundred/internal/model"
	"github.com/verte-zerg/hundred/internal/page"
	"github.com/verte-zerg/hundred/internal/render"
	"github.com/verte-zerg/hundred/internal/report"
	"github.com/verte-zerg/hundred/internal/schedule"
	"github.com/verte-zerg/hundred/internal/store"
	"github.com/verte-zerg/hundred/internal/theme"
	"github.com/verte-zerg/hundred/internal/tui"
)

const (
	defaultRevealMargin = 2
	defaultServeAddr    = ":8080"
	defaultPlainWidth   = 80
	dateLayout          = "2006-01-02"
)

var (
	challengeSource string
	challengeDate   string
	revealMargin    int

	todayDay int

	copyDay    int
	copyIndex  int
	copyStdout bool

	serveAddr string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hundred",
		Short:         "100 Days of Code challenge tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runBrowseCmd,
	}

	rootCmd.PersistentFlags().StringVar(&challengeSource, "source", config.DefaultSourcePath(), "question bank path or URL (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&challengeDate, "date", "", "treat this date as today (YYYY-MM-DD)")
	rootCmd.Flags().IntVar(&revealMargin, "reveal-margin", defaultRevealMargin, "lines from the bottom edge before a question is revealed")

	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadSettings applies the config file to flags the user did not set.
func loadSettings(cmd *cobra.Command) (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "source", &challengeSource, fileCfg.Challenge.Source)
	if strings.TrimSpace(challengeSource) == "" {
		return config.FileConfig{}, fmt.Errorf("--source must not be empty")
	}
	return fileCfg, nil
}

func clock() (func() time.Time, error) {
	if challengeDate == "" {
		return time.Now, nil
	}
	fixed, err := time.ParseInLocation(dateLayout, challengeDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --date value: %w", err)
	}
	return func() time.Time { return fixed }, nil
}

func openStore() (*store.Store, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "reveal-margin", &revealMargin, fileCfg.UI.RevealMargin)
	if revealMargin < 0 {
		return fmt.Errorf("--reveal-margin must be >= 0")
	}
	now, err := clock()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	current, err := theme.Load(context.Background(), st)
	if err != nil {
		logErrf("failed to read theme: %v\n", err)
	}

	m := tui.NewModel(tui.Options{
		Plan:         schedule.DefaultPlan(time.Local),
		Source:       page.FileSource(challengeSource),
		Now:          now,
		Prefs:        st,
		Clipboard:    render.SystemClipboard{},
		Theme:        current,
		RevealMargin: revealMargin,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadPhases reads the bank and returns the plan, both phases and the current day (0 if outside the window).
func loadPhases(cmd *cobra.Command) (schedule.Plan, []model.FlattenedQuestion, []model.FlattenedQuestion, int, error) {
	plan := schedule.DefaultPlan(time.Local)
	if _, err := loadSettings(cmd); err != nil {
		return plan, nil, nil, 0, err
	}
	now, err := clock()
	if err != nil {
		return plan, nil, nil, 0, err
	}
	doc, err := bank.Load(cmd.Context(), challengeSource)
	if err != nil {
		return plan, nil, nil, 0, bankLoadError(challengeSource, err)
	}
	phaseOne, phaseTwo := bank.Phases(doc, plan.PhaseOneDays*plan.PhaseOneDaily)
	current, ok := plan.CurrentDay(now())
	if !ok {
		current = 0
	}
	return plan, phaseOne, phaseTwo, current, nil
}

func resolveDay(cmd *cobra.Command, flag string, value, current, total int) (int, error) {
	if !cmd.Flags().Changed(flag) {
		return current, nil
	}
	if value < 1 || value > total {
		return 0, fmt.Errorf("--%s must be between 1 and %d", flag, total)
	}
	return value, nil
}

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's questions",
		Args:  cobra.NoArgs,
		RunE:  runTodayCmd,
	}
	cmd.Flags().IntVar(&todayDay, "day", 0, "print this day as if it were today")
	return cmd
}

func runTodayCmd(cmd *cobra.Command, _ []string) error {
	plan, phaseOne, phaseTwo, current, err := loadPhases(cmd)
	if err != nil {
		return err
	}
	day, err := resolveDay(cmd, "day", todayDay, current, plan.TotalDays)
	if err != nil {
		return err
	}

	canvas := &tui.Canvas{}
	if blocks := page.Assemble(plan, phaseOne, phaseTwo, day); len(blocks) > 0 {
		page.MountAll(canvas, blocks[:1])
	}

	th := themeOrDefault(cmd.Context())
	out := tui.RenderStatic(canvas, terminalWidth(), th)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy a question transcript to the clipboard",
		Args:  cobra.NoArgs,
		RunE:  runCopyCmd,
	}
	cmd.Flags().IntVar(&copyDay, "day", 0, "day to copy from (default: today)")
	cmd.Flags().IntVar(&copyIndex, "index", 1, "question number within the day")
	cmd.Flags().BoolVar(&copyStdout, "stdout", false, "print the transcript instead of copying it")
	return cmd
}

func runCopyCmd(cmd *cobra.Command, _ []string) error {
	plan, phaseOne, phaseTwo, current, err := loadPhases(cmd)
	if err != nil {
		return err
	}
	day, err := resolveDay(cmd, "day", copyDay, current, plan.TotalDays)
	if err != nil {
		return err
	}
	if day == 0 {
		return fmt.Errorf("the challenge is not running on this date; pass --day")
	}
	questions := plan.QuestionsForDay(day-1, phaseOne, phaseTwo)
	if len(questions) == 0 {
		return fmt.Errorf("no questions scheduled for day %d", day)
	}
	if copyIndex < 1 || copyIndex > len(questions) {
		return fmt.Errorf("--index must be between 1 and %d", len(questions))
	}
	block := render.Question(questions[copyIndex-1], day, current)
	header := block.Header()

	if copyStdout {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), header.Copy.Transcript); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if !render.Copy(render.SystemClipboard{}, header.Copy) {
		return fmt.Errorf("failed to copy to clipboard (try --stdout)")
	}
	logErrf("%s Copied %s\n", header.Copy.AckLabel, header.Title)
	return nil
}

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the 100-day schedule",
		Args:  cobra.NoArgs,
		RunE:  runPlanCmd,
	}
}

func runPlanCmd(cmd *cobra.Command, _ []string) error {
	plan, phaseOne, phaseTwo, current, err := loadPhases(cmd)
	if err != nil {
		return err
	}
	rows := report.BuildPlan(plan, phaseOne, phaseTwo, current)
	out := cmd.OutOrStdout()
	if err := report.RenderPlan(out, rows); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := report.RenderSummary(out, report.Summarize(rows, phaseOne, phaseTwo, current)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the saved theme",
		Args:  cobra.NoArgs,
		RunE:  runThemeCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE:  runThemeToggleCmd,
	})
	return cmd
}

func runThemeCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	current, err := theme.Load(cmd.Context(), st)
	if err != nil {
		return fmt.Errorf("failed to read theme: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), current); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runThemeToggleCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	current, err := theme.Load(cmd.Context(), st)
	if err != nil {
		return fmt.Errorf("failed to read theme: %w", err)
	}
	next, err := theme.Toggle(cmd.Context(), st, current)
	if err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), next); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func themeOrDefault(ctx context.Context) theme.Theme {
	st, err := openStore()
	if err != nil {
		logErrf("%v\n", err)
		return theme.Light
	}
	defer closeStore(st)
	current, err := theme.Load(ctx, st)
	if err != nil {
		logErrf("failed to read theme: %v\n", err)
	}
	return current
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultPlainWidth
	}
	return width
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hundred configuration
# Uncomment a value to enable it. CLI flags override config values.

[challenge]
# source = %q   # Question bank path or http(s) URL (.json, .yaml, .yml)

[ui]
# reveal-margin = %d   # Lines from the bottom edge before a question is revealed

[serve]
# addr = %q   # Listen address for hundred serve
`,
		config.DefaultSourcePath(),
		defaultRevealMargin,
		defaultServeAddr,
	)
}

func bankLoadError(source string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load question bank: %v", err),
		fmt.Sprintf("expected question bank at: %s", source),
		"Set another location with: hundred --source <path-or-url>",
		"Or persist it with: hundred config ([challenge] source)",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
