package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/parlor/pkg/kv"
)

const (
	testSlide = 280 * time.Millisecond
	testWidth = 180 * time.Millisecond
)

func newTestIndicator() (*Indicator, *kv.Store[string, ControlBox]) {
	registry := kv.New[string, ControlBox]()
	return NewIndicator(registry, testSlide, testWidth), registry
}

func TestIndicator_UnregisteredKeyIsSilentNoOp(t *testing.T) {
	in, _ := newTestIndicator()

	in.Retarget("ghost", time.Now())

	assert.False(t, in.placed)
	assert.False(t, in.Animating())
	assert.Equal(t, "", in.View(80))
}

func TestIndicator_MissingControlKeepsPreviousGeometry(t *testing.T) {
	in, registry := newTestIndicator()
	registry.Set(AllKey, ControlBox{Offset: 0, Width: 5})

	now := time.Now()
	in.Retarget(AllKey, now)
	before := in.current

	// The requested control was never measured; geometry must not move.
	in.Retarget("unmounted", now)

	assert.Equal(t, before, in.current)
	assert.False(t, in.Animating())
}

func TestIndicator_FirstPlacementSnaps(t *testing.T) {
	in, registry := newTestIndicator()
	registry.Set("mira", ControlBox{Offset: 7, Width: 11})

	in.Retarget("mira", time.Now())

	assert.True(t, in.placed)
	assert.False(t, in.Animating())
	assert.Equal(t, 7.0, in.current.offset)
	assert.Equal(t, 11.0, in.current.width)
}

func TestIndicator_RetargetAnimatesTowardNewControl(t *testing.T) {
	in, registry := newTestIndicator()
	registry.Set(AllKey, ControlBox{Offset: 0, Width: 5})
	registry.Set("mira", ControlBox{Offset: 20, Width: 12})

	start := time.Now()
	in.Retarget(AllKey, start)
	in.Retarget("mira", start)
	require.True(t, in.Animating())

	// Midway the offset has left the origin but the motion is not done.
	still := in.Advance(start.Add(testSlide / 2))
	assert.True(t, still)
	assert.Greater(t, in.current.offset, 0.0)

	// After both durations the geometry lands exactly on the target.
	still = in.Advance(start.Add(testSlide + time.Millisecond))
	assert.False(t, still)
	assert.Equal(t, 20.0, in.current.offset)
	assert.Equal(t, 12.0, in.current.width)
}

func TestIndicator_ResizeRetargetUsesLatestMeasurement(t *testing.T) {
	in, registry := newTestIndicator()
	registry.Set("mira", ControlBox{Offset: 20, Width: 12})

	start := time.Now()
	in.Retarget("mira", start)
	in.Advance(start.Add(time.Hour))

	// A resize moved the control; the next retarget must follow the fresh
	// box, not the stale one.
	registry.Set("mira", ControlBox{Offset: 4, Width: 12})
	in.Retarget("mira", start)
	in.Advance(start.Add(testSlide * 2))

	assert.Equal(t, 4.0, in.current.offset)
}

func TestEaseOutBack_Overshoots(t *testing.T) {
	assert.InDelta(t, 0.0, easeOutBack(0), 1e-9)
	assert.InDelta(t, 1.0, easeOutBack(1), 1e-9)

	overshot := false
	for i := 1; i < 100; i++ {
		if easeOutBack(float64(i)/100) > 1 {
			overshot = true
			break
		}
	}
	assert.True(t, overshot, "easeOutBack should exceed 1 before settling")
}

func TestEaseOutCubic_Monotone(t *testing.T) {
	assert.InDelta(t, 0.0, easeOutCubic(0), 1e-9)
	assert.InDelta(t, 1.0, easeOutCubic(1), 1e-9)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := easeOutCubic(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestIndicator_View(t *testing.T) {
	in, registry := newTestIndicator()
	registry.Set("mira", ControlBox{Offset: 3, Width: 4})
	in.Retarget("mira", time.Now())

	plain := ansi.Strip(in.View(20))
	assert.Equal(t, "   ▔▔▔▔", strings.TrimRight(plain, " "))
}

func TestIndicator_ViewClampsToRailWidth(t *testing.T) {
	in, registry := newTestIndicator()
	registry.Set("mira", ControlBox{Offset: 6, Width: 10})
	in.Retarget("mira", time.Now())

	plain := ansi.Strip(in.View(8))
	assert.Equal(t, "      ▔▔", plain)
}
