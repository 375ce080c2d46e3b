package app

import (
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ayoisaiah/interval/internal/workout"
)

// index converts the 1-based position arg into an index of a list of n
// items.
func index(kind, arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > n {
		return 0, errInvalidIndex.Fmt(kind, arg, n)
	}

	return i - 1, nil
}

// parseSeconds reads a step length. A plain number is a count of seconds.
func parseSeconds(s string) (int, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errInvalidNumber.Fmt("duration", s)
	}

	return int(d / time.Second), nil
}

func block(w *workout.Workout, arg string) (*workout.Block, error) {
	i, err := index("block", arg, len(w.Blocks))
	if err != nil {
		return nil, err
	}

	return w.Blocks[i], nil
}

func step(b *workout.Block, arg string) (*workout.SubBlock, error) {
	i, err := index("step", arg, len(b.SubBlocks))
	if err != nil {
		return nil, err
	}

	return b.SubBlocks[i], nil
}

// stepChange holds the fields of a step to update. Empty fields are left
// alone.
type stepChange struct {
	Label    string
	Duration string
	Color    string
}

func addBlock(sets int) func(*workout.Workout) error {
	return func(w *workout.Workout) error {
		w.CreateBlock(sets)
		return nil
	}
}

func removeBlock(arg string) func(*workout.Workout) error {
	return func(w *workout.Workout) error {
		b, err := block(w, arg)
		if err != nil {
			return err
		}

		w.DeleteBlock(b.ID)

		return nil
	}
}

func moveBlock(from, to string) func(*workout.Workout) error {
	return func(w *workout.Workout) error {
		i, err := index("block", from, len(w.Blocks))
		if err != nil {
			return err
		}

		j, err := index("block", to, len(w.Blocks))
		if err != nil {
			return err
		}

		w.MoveBlock(i, j)

		return nil
	}
}

func setBlockSets(arg, sets string) func(*workout.Workout) error {
	return func(w *workout.Workout) error {
		b, err := block(w, arg)
		if err != nil {
			return err
		}

		n, err := strconv.Atoi(sets)
		if err != nil {
			return errInvalidNumber.Fmt("sets", sets)
		}

		b.SetSets(n)

		return nil
	}
}

func addStep(arg string, change stepChange) func(*workout.Workout) error {
	return func(w *workout.Workout) error {
		b, err := block(w, arg)
		if err != nil {
			return err
		}

		label := change.Label
		if label == "" {
			label = workout.DefaultSubBlockLabel
		}

		duration := workout.DefaultSubBlockDuration

		if change.Duration != "" {
			duration, err = parseSeconds(change.Duration)
			if err != nil {
				return err
			}
		}

		id := w.CreateSubBlock(b.ID, label, duration)

		if change.Color != "" {
			return setColor(b.SubBlock(id), change.Color)
		}

		return nil
	}
}

func removeStep(blockArg, stepArg string) func(*workout.Workout) error {
	return func(w *workout.Workout) error {
		b, err := block(w, blockArg)
		if err != nil {
			return err
		}

		s, err := step(b, stepArg)
		if err != nil {
			return err
		}

		w.DeleteSubBlock(b.ID, s.ID)

		return nil
	}
}

func moveStep(blockArg, from, to string) func(*workout.Workout) error {
	return func(w *workout.Workout) error {
		b, err := block(w, blockArg)
		if err != nil {
			return err
		}

		i, err := index("step", from, len(b.SubBlocks))
		if err != nil {
			return err
		}

		j, err := index("step", to, len(b.SubBlocks))
		if err != nil {
			return err
		}

		b.MoveSubBlock(i, j)

		return nil
	}
}

func updateStep(blockArg, stepArg string, change stepChange) func(*workout.Workout) error {
	return func(w *workout.Workout) error {
		b, err := block(w, blockArg)
		if err != nil {
			return err
		}

		s, err := step(b, stepArg)
		if err != nil {
			return err
		}

		if change.Label != "" {
			s.Label = change.Label
		}

		if change.Duration != "" {
			d, err := parseSeconds(change.Duration)
			if err != nil {
				return err
			}

			s.SetDuration(d)
		}

		if change.Color != "" {
			return setColor(s, change.Color)
		}

		return nil
	}
}

func setColor(s *workout.SubBlock, hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return errInvalidNumber.Fmt("colour", hex)
	}

	s.Color = c.Hex()

	return nil
}
