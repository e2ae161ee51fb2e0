package landing

import (
	"math"
	"time"
)

const DefaultCounterDuration = 2 * time.Second

type CounterState int

const (
	CounterIdle CounterState = iota
	CounterRunning
	CounterDone
)

// Counter animates from 0 to a target once, starting the first time it is seen.
// It is not safe for concurrent use.
type Counter struct {
	target   int
	duration time.Duration
	state    CounterState
	started  time.Time
}

func NewCounter(target int, duration time.Duration) *Counter {
	if duration <= 0 {
		duration = DefaultCounterDuration
	}
	return &Counter{
		target:   target,
		duration: duration,
	}
}

// Observe reports visibility at now. Only the first visible observation starts the
// animation; later ones, visible or not, change nothing.
func (c *Counter) Observe(now time.Time, visible bool) {
	if c.state != CounterIdle || !visible {
		return
	}
	c.state = CounterRunning
	c.started = now
}

// Value is floor(target × progress) at now, and exactly target once the duration elapsed.
func (c *Counter) Value(now time.Time) int {
	switch c.state {
	case CounterIdle:
		return 0
	case CounterDone:
		return c.target
	}

	progress := float64(now.Sub(c.started)) / float64(c.duration)
	if progress >= 1 {
		c.state = CounterDone
		return c.target
	}
	if progress < 0 {
		progress = 0
	}
	return int(math.Floor(float64(c.target) * progress))
}

func (c *Counter) State() CounterState {
	return c.state
}

// Frames samples a full run of a counter at steps evenly spaced instants.
// The last frame is always the target.
func Frames(target int, duration time.Duration, steps int) []int {
	if steps < 1 {
		steps = 1
	}

	c := NewCounter(target, duration)
	start := time.Time{}
	c.Observe(start, true)

	frames := make([]int, 0, steps)
	for i := 1; i <= steps; i++ {
		at := start.Add(time.Duration(int64(c.duration) * int64(i) / int64(steps)))
		frames = append(frames, c.Value(at))
	}
	return frames
}
