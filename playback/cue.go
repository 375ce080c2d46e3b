package playback

// Cue names an audible signal.
type Cue string

const (
	// CueTick is the short signal played during the last seconds of a step.
	CueTick Cue = "tick"
	// CueLong is the signal played when a step runs out.
	CueLong Cue = "long"
)

// countdownSeconds is the number of final seconds announced by a tick cue.
const countdownSeconds = 3

// CueDispatcher decides when cues fire. A tick cue fires once for each of the
// final whole seconds of a step no matter how often it is asked, and the long
// cue fires once when the step is exhausted.
type CueDispatcher struct {
	lastSecond int
	longFired  bool
}

// Reset prepares the dispatcher for a new step.
func (d *CueDispatcher) Reset() {
	d.lastSecond = 0
	d.longFired = false
}

// Tick reports whether the tick cue should fire for the given whole seconds
// remaining in the step.
func (d *CueDispatcher) Tick(remaining int) bool {
	if remaining < 1 || remaining > countdownSeconds || remaining == d.lastSecond {
		return false
	}

	d.lastSecond = remaining

	return true
}

// Long reports whether the long cue should fire for the given sample.
func (d *CueDispatcher) Long(s Sample) bool {
	if !s.Exhausted() || d.longFired {
		return false
	}

	d.longFired = true

	return true
}
