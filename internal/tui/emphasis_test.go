package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expire runs a Trigger command's scheduled message synchronously. tea.Tick
// wraps a timer; tests skip the wait by invoking the expiry directly.
func expireMsg(e *Emphasis) emphasisExpiredMsg {
	return emphasisExpiredMsg{gen: e.gen}
}

func TestEmphasis_TriggerLightsFlag(t *testing.T) {
	e := NewEmphasis(650 * time.Millisecond)
	assert.False(t, e.Active())

	cmd := e.Trigger()
	require.NotNil(t, cmd)
	assert.True(t, e.Active())
}

func TestEmphasis_ExpireEndsWindow(t *testing.T) {
	e := NewEmphasis(650 * time.Millisecond)
	e.Trigger()

	changed := e.Expire(expireMsg(e))
	assert.True(t, changed)
	assert.False(t, e.Active())
}

func TestEmphasis_RetriggerRestartsInsteadOfStacking(t *testing.T) {
	// Two selection changes inside one window produce a single continuous
	// emphasis period ending one window after the second change.
	e := NewEmphasis(650 * time.Millisecond)

	e.Trigger()
	firstExpiry := expireMsg(e)

	// Second change at t=300ms, before the first window ends.
	e.Trigger()

	// The first timer fires at t=650ms; its generation is stale.
	assert.False(t, e.Expire(firstExpiry))
	assert.True(t, e.Active(), "flag must stay continuously lit")

	// The second timer fires at t=950ms and ends the window.
	assert.True(t, e.Expire(expireMsg(e)))
	assert.False(t, e.Active())
}

func TestEmphasis_ExpireWhenIdleIsNoOp(t *testing.T) {
	e := NewEmphasis(650 * time.Millisecond)

	assert.False(t, e.Expire(emphasisExpiredMsg{gen: 0}))
	assert.False(t, e.Active())
}

func TestEmphasis_TickCarriesGeneration(t *testing.T) {
	// The scheduled command must embed the generation it was created with,
	// not read it at fire time.
	e := NewEmphasis(time.Millisecond)
	cmd := e.Trigger()
	e.Trigger() // advance the generation

	msg := runCmd(t, cmd)
	expired, ok := msg.(emphasisExpiredMsg)
	require.True(t, ok)
	assert.Equal(t, 1, expired.gen)
	assert.False(t, e.Expire(expired), "stale generation must be dropped")
}

// runCmd executes a tea.Cmd, following a single tick to its message.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}
