package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TUI forwards progress updates into a running bubbletea program.
type TUI struct {
	program *tea.Program
}

func NewTUI(p *tea.Program) *TUI {
	return &TUI{program: p}
}

func (t *TUI) UpdateStatus(status string) {
	t.program.Send(StatusMsg(status))
}

func (t *TUI) UpdateStep(step, total int) {
	t.program.Send(StepMsg{Step: step, Total: total})
}

func (t *TUI) Log(msg string) {
	t.program.Send(LogMsg(msg))
}

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#2563EB")).
		Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#04B575"))
)

type Model struct {
	Title    string
	Status   string
	Step     int
	Total    int
	Log      []string
	Progress progress.Model
	Viewport viewport.Model
	Quitting bool
	Ready    bool
	Width    int
	Height   int
}

type LogMsg string
type StatusMsg string
type StepMsg struct {
	Step  int
	Total int
}

func NewModel(title string, totalSteps int) Model {
	p := progress.New(progress.WithDefaultGradient())
	return Model{
		Title:    title,
		Status:   "Initializing...",
		Total:    totalSteps,
		Progress: p,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if !m.Ready {
			m.Viewport = viewport.New(msg.Width, msg.Height-10)
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = msg.Height - 10
		}

	case LogMsg:
		m.Log = append(m.Log, string(msg))
		m.Viewport.SetContent(strings.Join(m.Log, "\n"))
		m.Viewport.GotoBottom()

	case StatusMsg:
		m.Status = string(msg)

	case StepMsg:
		m.Step = msg.Step
		if msg.Total > 0 {
			m.Total = msg.Total
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if !m.Ready {
		return "\n  Initializing..."
	}

	header := titleStyle.Render(" " + m.Title + " ")
	status := infoStyle.Render(fmt.Sprintf(" Status: %s ", m.Status))
	step := fmt.Sprintf(" Step: %d/%d ", m.Step, m.Total)

	ratio := 0.0
	if m.Total > 0 {
		ratio = float64(m.Step) / float64(m.Total)
	}
	prog := m.Progress.ViewAs(ratio)

	view := fmt.Sprintf("%s%s%s\n\n%s\n\n%s",
		header, status, step,
		m.Viewport.View(),
		prog)

	if m.Quitting {
		return view + "\n  Quitting...\n"
	}

	return view
}
