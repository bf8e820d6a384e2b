// Package watch renders the live session status as a full-screen view
// that refreshes once per second.
package watch

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bneiser/timetrack/internal/tracker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
)

type tickMsg time.Time

// Model is the Bubble Tea model behind `track watch`.
type Model struct {
	machine *tracker.Machine
	info    tracker.StatusInfo
	spin    spinner.Model
	err     error
}

// New builds the watch model over a session state machine.
func New(machine *tracker.Machine) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = runningStyle

	m := Model{machine: machine, spin: s}
	m.info, m.err = machine.Status()
	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the refresh and spinner tickers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.spin.Tick)
}

// Update handles key presses and the per-second refresh.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.info, m.err = m.machine.Status()
		return m, tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current session.
func (m Model) View() string {
	if m.err != nil {
		return boxStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}

	title := titleStyle.Render("timetrack")
	var body string
	switch m.info.State {
	case tracker.Running:
		body = fmt.Sprintf("%s %s  %s\nelapsed %s",
			m.spin.View(),
			runningStyle.Render("tracking"),
			m.info.Activity,
			formatElapsed(m.info.Elapsed))
	case tracker.Paused:
		body = fmt.Sprintf("%s  %s\nelapsed %s",
			pausedStyle.Render("paused"),
			m.info.Activity,
			formatElapsed(m.info.Elapsed))
	default:
		body = idleStyle.Render("no task is currently running")
	}

	if len(m.info.Notes) > 0 {
		body += "\n"
		for _, note := range m.info.Notes {
			body += "\n" + noteStyle.Render("• "+note)
		}
	}

	return title + "\n" + boxStyle.Render(body) + "\n" +
		idleStyle.Render("q to quit") + "\n"
}

func formatElapsed(d time.Duration) string {
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
