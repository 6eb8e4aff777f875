// Package ui shows a spinner while the generator call is in flight. Output
// goes to the controlling terminal so stdout stays clean for the suggested
// command.
package ui

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type spinnerDoneMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	start   time.Time
}

var spinnerStyles = []spinner.Spinner{
	spinner.Line,
	spinner.Dot,
	spinner.MiniDot,
	spinner.Jump,
	spinner.Pulse,
	spinner.Points,
	spinner.Globe,
	spinner.Moon,
}

var (
	terminalOutput     io.Writer
	terminalOutputOnce sync.Once
)

func getTerminalOutput() io.Writer {
	terminalOutputOnce.Do(func() {
		if runtime.GOOS == "windows" {
			terminalOutput = os.Stderr
			return
		}
		f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			terminalOutput = io.Discard
			return
		}
		terminalOutput = f
	})
	return terminalOutput
}

// StartSpinner shows message with a spinner and returns a stop function.
// Stopping is idempotent.
func StartSpinner(message string) func() {
	_ = os.Setenv("CLICOLOR_FORCE", "1")
	lipgloss.SetColorProfile(termenv.ANSI)
	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(getTerminalOutput()))
	done := make(chan struct{})
	go func() {
		_, _ = p.Run()
		close(done)
	}()
	var stopOnce sync.Once
	return func() {
		stopOnce.Do(func() {
			p.Send(spinnerDoneMsg{})
			<-done
		})
	}
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = randomSpinnerStyle()
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinnerModel{spinner: s, message: message, start: time.Now()}
}

func randomSpinnerStyle() spinner.Spinner {
	seed := time.Now().UnixNano()
	return spinnerStyles[int(seed%int64(len(spinnerStyles)))]
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.done {
		return "\r\033[2K"
	}
	elapsed := time.Since(m.start).Seconds()
	return fmt.Sprintf("\n  %s %s (%.1fs)\n", m.spinner.View(), m.message, elapsed)
}
