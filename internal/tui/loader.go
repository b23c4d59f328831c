package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Task is a unit of work displayed behind a spinner. The result is
// delivered through the model once the task returns.
type Task func(ctx context.Context) error

type taskDoneMsg struct {
	err error
}

// LoaderModel shows a spinner with a message while a Task runs.
// It is the terminal equivalent of a loading overlay: the view blocks
// until the work finishes or the user cancels with ctrl+c.
type LoaderModel struct {
	spinner  spinner.Model
	message  string
	task     Task
	ctx      context.Context
	cancel   context.CancelFunc
	done     bool
	quitting bool
	err      error
	styles   Styles
}

// NewLoaderModel creates a loader for the given message and task
func NewLoaderModel(ctx context.Context, message string, task Task) *LoaderModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	ctx, cancel := context.WithCancel(ctx)
	return &LoaderModel{
		spinner: s,
		message: message,
		task:    task,
		ctx:     ctx,
		cancel:  cancel,
		styles:  DefaultStyles(),
	}
}

// Err returns the task's error once the loader has finished
func (m *LoaderModel) Err() error {
	return m.err
}

// Init starts the spinner tick and kicks off the task
func (m *LoaderModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runTask())
}

func (m *LoaderModel) runTask() tea.Cmd {
	return func() tea.Msg {
		return taskDoneMsg{err: m.task(m.ctx)}
	}
}

// Update handles spinner ticks, task completion, and cancellation
func (m *LoaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.done = true
		m.err = msg.err
		m.cancel()
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			m.cancel()
			m.err = m.ctx.Err()
			return m, tea.Quit
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// View renders the spinner line
func (m *LoaderModel) View() string {
	if m.done || m.quitting {
		return ""
	}
	return m.spinner.View() + " " + m.styles.Muted.Render(m.message)
}

// RunWithLoader runs task behind a spinner when attached to a terminal,
// and plainly otherwise so piped output stays clean.
func RunWithLoader(ctx context.Context, message string, task Task) error {
	if !IsInteractive() {
		return task(ctx)
	}

	model := NewLoaderModel(ctx, message, task)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return err
	}
	return model.Err()
}
