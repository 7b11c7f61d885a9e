package tui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/parlor/internal/core/styles"
	"github.com/colonyops/parlor/pkg/kv"
)

// frameTickMsg drives indicator interpolation while an animation runs.
type frameTickMsg time.Time

func scheduleFrameTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// geometry is a fractional (offset, width) pair in cells.
type geometry struct {
	offset float64
	width  float64
}

// Indicator draws the sliding highlight bar under the selected rail
// control. Its geometry is derived from the control registry and animated
// toward the latest target: offset travels with a slight overshoot, width
// settles on a shorter plain ease.
type Indicator struct {
	registry *kv.Store[string, ControlBox]

	slideDur time.Duration
	widthDur time.Duration

	current geometry
	from    geometry
	target  geometry

	startedAt time.Time
	animating bool
	placed    bool // false until the first successful measurement
}

// NewIndicator creates an indicator reading geometry from registry.
func NewIndicator(registry *kv.Store[string, ControlBox], slide, width time.Duration) *Indicator {
	return &Indicator{
		registry: registry,
		slideDur: slide,
		widthDur: width,
	}
}

// Retarget points the indicator at the control registered under key. If the
// control has not been measured yet the call is a silent no-op and the
// previous geometry stays in effect; the next retarget after measurement
// will catch up.
func (in *Indicator) Retarget(key string, now time.Time) {
	box, ok := in.registry.Get(key)
	if !ok {
		return
	}

	target := geometry{offset: float64(box.Offset), width: float64(box.Width)}
	if !in.placed {
		// First placement snaps; there is nothing to slide from.
		in.current = target
		in.target = target
		in.placed = true
		return
	}
	if target == in.target {
		return
	}

	in.from = in.current
	in.target = target
	in.startedAt = now
	in.animating = true
}

// Animating reports whether frame ticks should keep coming.
func (in *Indicator) Animating() bool {
	return in.animating
}

// Advance moves the current geometry toward the target for the given time
// and returns whether the animation is still running.
func (in *Indicator) Advance(now time.Time) bool {
	if !in.animating {
		return false
	}

	elapsed := now.Sub(in.startedAt)
	ts := progress(elapsed, in.slideDur)
	tw := progress(elapsed, in.widthDur)

	in.current.offset = lerp(in.from.offset, in.target.offset, easeOutBack(ts))
	in.current.width = lerp(in.from.width, in.target.width, easeOutCubic(tw))

	if ts >= 1 && tw >= 1 {
		in.current = in.target
		in.animating = false
	}
	return in.animating
}

// View renders the indicator bar padded to the rail width.
func (in *Indicator) View(railWidth int) string {
	if !in.placed || railWidth <= 0 {
		return ""
	}

	offset := int(math.Round(in.current.offset))
	width := int(math.Round(in.current.width))
	if offset < 0 {
		offset = 0
	}
	if offset+width > railWidth {
		width = railWidth - offset
	}
	if width <= 0 {
		return ""
	}

	bar := strings.Repeat(" ", offset) + strings.Repeat(styles.IconIndicator, width)
	return styles.IndicatorStyle.Render(bar)
}

func progress(elapsed, dur time.Duration) float64 {
	if dur <= 0 || elapsed >= dur {
		return 1
	}
	if elapsed < 0 {
		return 0
	}
	return float64(elapsed) / float64(dur)
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// easeOutBack overshoots slightly before settling, giving the indicator its
// springy travel.
func easeOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// easeOutCubic is a plain deceleration curve used for width changes.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
