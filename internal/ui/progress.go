package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// terminalProgress implements the Progress interface.
type terminalProgress struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress backed by the given theme and headless
// manager. Output goes to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return &terminalProgress{theme: theme, headless: hm, writer: os.Stdout}
}

// newTerminalProgress creates a terminalProgress with a custom writer
// (for testing).
func newTerminalProgress(theme *Theme, hm *HeadlessManager, w io.Writer) *terminalProgress {
	return &terminalProgress{theme: theme, headless: hm, writer: w}
}

// Start creates a determinate progress bar with the given total.
// In headless mode it returns a log-based progress bar.
func (p *terminalProgress) Start(title string, total int) ProgressBar {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newLogProgressBar(title, total, p.writer)
	}
	return newAnimatedProgressBar(p.theme, title, total)
}

// Spinner creates an indeterminate spinner.
// In headless mode it prints the title as a log line.
func (p *terminalProgress) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newLogSpinner(title, p.writer)
	}
	return newAnimatedSpinner(p.theme, title)
}

// --- animatedSpinner ---

// spinnerTitleMsg updates the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg stops the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// animatedSpinner implements Spinner with a bubbles spinner running in
// its own bubbletea program.
type animatedSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newAnimatedSpinner(theme *Theme, title string) *animatedSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title))
	s := &animatedSpinner{program: p}

	go func() {
		_, _ = p.Run()
	}()

	return s
}

// SetTitle updates the spinner title.
func (s *animatedSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Stop halts the spinner and waits for the program to exit.
func (s *animatedSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// --- animatedProgressBar ---

// barIncrMsg advances the progress bar.
type barIncrMsg int

// barTitleMsg updates the progress bar title.
type barTitleMsg string

// barDoneMsg completes the progress bar.
type barDoneMsg struct{}

// barModel is the bubbletea Model for the animated progress bar.
type barModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newBarModel(theme *Theme, title string, total int) barModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
	)
	if theme.NoColor {
		bar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	}
	return barModel{bar: bar, title: title, total: total}
}

func (m barModel) Init() tea.Cmd {
	return nil
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case barIncrMsg:
		m.current = min(m.current+int(msg), m.total)
		return m, nil
	case barTitleMsg:
		m.title = string(msg)
		return m, nil
	case barDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m barModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + fmt.Sprintf(" [%d/%d] %s\n", m.current, m.total, m.title)
}

// animatedProgressBar implements ProgressBar with a bubbles progress
// bar running in its own bubbletea program.
type animatedProgressBar struct {
	program *tea.Program
	once    sync.Once
}

func newAnimatedProgressBar(theme *Theme, title string, total int) *animatedProgressBar {
	p := tea.NewProgram(newBarModel(theme, title, total))
	b := &animatedProgressBar{program: p}

	go func() {
		_, _ = p.Run()
	}()

	return b
}

// Increment advances the progress by n.
func (b *animatedProgressBar) Increment(n int) {
	b.program.Send(barIncrMsg(n))
}

// SetTitle updates the progress bar title.
func (b *animatedProgressBar) SetTitle(title string) {
	b.program.Send(barTitleMsg(title))
}

// Done completes the progress bar and waits for the program to exit.
func (b *animatedProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(barDoneMsg{})
		b.program.Wait()
	})
}

// --- logProgressBar ---

// logProgressBar implements ProgressBar with plain text log output.
type logProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
}

func newLogProgressBar(title string, total int, w io.Writer) *logProgressBar {
	return &logProgressBar{title: title, total: total, writer: w}
}

// Increment advances the progress by n and writes a log line.
func (b *logProgressBar) Increment(n int) {
	b.current = min(b.current+n, b.total)
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

// SetTitle updates the progress bar title.
func (b *logProgressBar) SetTitle(title string) {
	b.title = title
}

// Done completes the progress bar at 100%.
func (b *logProgressBar) Done() {
	b.current = b.total
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

// --- logSpinner ---

// logSpinner implements Spinner with plain text log output.
type logSpinner struct {
	title   string
	writer  io.Writer
	stopped bool
}

func newLogSpinner(title string, w io.Writer) *logSpinner {
	s := &logSpinner{title: title, writer: w}
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return s
}

// SetTitle updates the spinner title and prints a log line.
func (s *logSpinner) SetTitle(title string) {
	s.title = title
	_, _ = fmt.Fprintf(s.writer, "%s\n", title)
}

// Stop halts the spinner.
func (s *logSpinner) Stop() {
	s.stopped = true
}
