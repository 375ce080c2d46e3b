package workout

const (
	DefaultName = "New Workout"

	labelPrepare  = "Prepare"
	labelWork     = "Work"
	labelRest     = "Rest"
	labelCooldown = "Cooldown"
)

// IntervalOptions describes a classic interval workout: an optional warm up
// block, a work/rest block repeated for a number of sets, and an optional
// cool down block. Durations are in seconds and zero values skip the step.
type IntervalOptions struct {
	Name     string
	Sets     int
	Prepare  int
	Work     int
	Rest     int
	Cooldown int
}

// NewInterval builds a workout from opts.
func NewInterval(opts IntervalOptions) *Workout {
	w := New(opts.Name)

	if opts.Prepare > 0 {
		id := w.CreateBlock(DefaultSets)
		w.CreateSubBlock(id, labelPrepare, opts.Prepare)
	}

	if opts.Work > 0 || opts.Rest > 0 {
		id := w.CreateBlock(opts.Sets)

		if opts.Work > 0 {
			w.CreateSubBlock(id, labelWork, opts.Work)
		}

		if opts.Rest > 0 {
			w.CreateSubBlock(id, labelRest, opts.Rest)
		}
	}

	if opts.Cooldown > 0 {
		id := w.CreateBlock(DefaultSets)
		w.CreateSubBlock(id, labelCooldown, opts.Cooldown)
	}

	return w
}

// NewTemplate returns the starter workout offered to new users: 5 seconds
// to prepare, three sets of 10 seconds work and 10 seconds rest, and a one
// minute cool down.
func NewTemplate(name string) *Workout {
	if name == "" {
		name = DefaultName
	}

	return NewInterval(IntervalOptions{
		Name:     name,
		Sets:     3,
		Prepare:  5,
		Work:     10,
		Rest:     10,
		Cooldown: 60,
	})
}
