package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderTaskResultDelivered(t *testing.T) {
	m := NewLoaderModel(context.Background(), "loading", func(ctx context.Context) error {
		return assert.AnError
	})

	msg := m.runTask()()
	done, ok := msg.(taskDoneMsg)
	require.True(t, ok)
	assert.Equal(t, assert.AnError, done.err)

	updated, cmd := m.Update(done)
	loader := updated.(*LoaderModel)
	assert.True(t, loader.done)
	assert.Equal(t, assert.AnError, loader.Err())
	require.NotNil(t, cmd)
}

func TestLoaderCtrlCCancels(t *testing.T) {
	m := NewLoaderModel(context.Background(), "loading", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	loader := updated.(*LoaderModel)
	assert.True(t, loader.quitting)
	assert.Error(t, loader.ctx.Err())
	require.NotNil(t, cmd)
}

func TestLoaderViewHidesAfterDone(t *testing.T) {
	m := NewLoaderModel(context.Background(), "loading merchants", func(ctx context.Context) error {
		return nil
	})

	assert.Contains(t, m.View(), "loading merchants")
	m.done = true
	assert.Empty(t, m.View())
}

func TestRunWithLoaderNonInteractive(t *testing.T) {
	// Test binaries never have a tty on stdin, so the task runs directly.
	called := false
	err := RunWithLoader(context.Background(), "noop", func(ctx context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
