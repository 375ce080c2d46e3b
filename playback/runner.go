package playback

import (
	"context"
	"time"
)

// DefaultTickInterval is how often a Runner ticks its controller.
const DefaultTickInterval = 100 * time.Millisecond

type command func(*Controller)

// Runner drives a Controller from a ticker in its own goroutine. Once Run has
// been called the controller must only be used through the Runner; callbacks
// registered with Subscribe run on the Run goroutine.
type Runner struct {
	ctrl     *Controller
	cmds     chan command
	done     chan struct{}
	interval time.Duration
}

// NewRunner returns a Runner for c ticking at the given interval, or at
// DefaultTickInterval if interval is not positive.
func NewRunner(c *Controller, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return &Runner{
		ctrl:     c,
		interval: interval,
		cmds:     make(chan command, 8),
		done:     make(chan struct{}),
	}
}

// Subscribe registers fn with the controller. It must be called before Run.
func (r *Runner) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return r.ctrl.Subscribe(fn)
}

// Run ticks the controller until playback finishes or ctx is cancelled. The
// ticker only exists while playback is Running, so a paused or finished
// controller never receives a stale tick.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)

	var (
		ticker *time.Ticker
		tick   <-chan time.Time
	)

	stop := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tick = nil
		}
	}

	defer stop()

	for {
		switch r.ctrl.State() {
		case Finished:
			return nil
		case Running:
			if ticker == nil {
				ticker = time.NewTicker(r.interval)
				tick = ticker.C
			}
		case Paused:
			stop()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			r.ctrl.Tick()
		case cmd := <-r.cmds:
			cmd(r.ctrl)
		}
	}
}

func (r *Runner) send(cmd command) {
	select {
	case r.cmds <- cmd:
	case <-r.done:
	}
}

// Pause pauses playback.
func (r *Runner) Pause() {
	r.send((*Controller).Pause)
}

// Resume resumes paused playback.
func (r *Runner) Resume() {
	r.send((*Controller).Resume)
}

// Toggle pauses or resumes playback.
func (r *Runner) Toggle() {
	r.send((*Controller).Toggle)
}

// SkipNext jumps to the next step.
func (r *Runner) SkipNext() {
	r.send((*Controller).SkipNext)
}

// SkipPrev restarts the current step or jumps to the previous one.
func (r *Runner) SkipPrev() {
	r.send((*Controller).SkipPrev)
}
