// Package ui implements the simulator's terminal front-end: a Bubble
// Tea model that shows the simulated LCD stack display, reads typed RPL
// source line by line, and shows a spinner while a long decimal
// division or bignum multiply is running but still interruptible
// (adapted from the progress-model pattern used elsewhere for streamed
// pipeline events).
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Event is something the evaluator goroutine reports back to the UI.
type Event struct {
	Stack   []string // current operand stack, top first
	Busy    bool     // a long operation is in flight
	Error   string   // non-empty if the last submission failed
	Done    bool     // the simulator is exiting
}

type eventMsg Event

// Submit is sent from the UI to the evaluator goroutine each time the
// user presses Enter on a non-empty input line.
type Submit struct {
	Text string
}

// Model is the Bubble Tea model driving the simulator's screen.
type Model struct {
	events    <-chan Event
	submits   chan<- Submit
	translate func(tea.KeyMsg) (string, bool)

	stack   []string
	input   strings.Builder
	spinner spinner.Model
	busy    bool
	lastErr string
	width   int
	quit    bool
}

var (
	lcdStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	stackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// New builds the model. events reports evaluator state; submits carries
// typed input lines back to the evaluator goroutine. translate, if
// non-nil, resolves a function-key press to keymap-bound RPL text that
// submits immediately rather than being typed into the line editor.
func New(events <-chan Event, submits chan<- Submit, translate func(tea.KeyMsg) (string, bool)) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	return &Model{events: events, submits: submits, translate: translate, spinner: sp, width: 40}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *Model) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return eventMsg(Event{Done: true})
		}
		return eventMsg(ev)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		ev := Event(msg)
		if ev.Done {
			m.quit = true
			return m, tea.Quit
		}
		m.stack = ev.Stack
		m.busy = ev.Busy
		m.lastErr = ev.Error
		return m, m.listen()
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.translate != nil {
		if text, ok := m.translate(msg); ok {
			m.submits <- Submit{Text: text}
			return m, nil
		}
	}
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quit = true
		return m, tea.Quit
	case tea.KeyEnter:
		text := strings.TrimSpace(m.input.String())
		m.input.Reset()
		if text == "" {
			return m, nil
		}
		m.submits <- Submit{Text: text}
		return m, nil
	case tea.KeyBackspace:
		s := m.input.String()
		if len(s) > 0 {
			m.input.Reset()
			m.input.WriteString(s[:len(s)-1])
		}
		return m, nil
	case tea.KeyRunes:
		m.input.WriteString(string(msg.Runes))
		return m, nil
	case tea.KeySpace:
		m.input.WriteString(" ")
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quit {
		return ""
	}
	var b strings.Builder
	for i := len(m.stack) - 1; i >= 0; i-- {
		b.WriteString(stackStyle.Render(fmt.Sprintf("%d: %s", i+1, m.stack[i])))
		b.WriteString("\n")
	}
	if len(m.stack) == 0 {
		b.WriteString(stackStyle.Render("(empty)"))
		b.WriteString("\n")
	}
	screen := lcdStyle.Width(m.width).Render(b.String())

	var status string
	switch {
	case m.lastErr != "":
		status = errorStyle.Render("ERROR: " + m.lastErr)
	case m.busy:
		status = m.spinner.View() + " working… (Esc to interrupt)"
	default:
		status = " "
	}

	prompt := promptStyle.Render("> ") + m.input.String()
	return screen + "\n" + status + "\n" + prompt
}
