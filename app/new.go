package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/interval/internal/workout"
)

// intervalAnswers holds the raw answers of the new workout form.
type intervalAnswers struct {
	Name     string
	Sets     string
	Prepare  string
	Work     string
	Rest     string
	Cooldown string
}

func defaultAnswers(name string) intervalAnswers {
	return intervalAnswers{
		Name:     name,
		Sets:     "3",
		Prepare:  "5",
		Work:     "10",
		Rest:     "10",
		Cooldown: "60",
	}
}

// options converts the answers to the options of an interval workout.
func (a intervalAnswers) options() (workout.IntervalOptions, error) {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return workout.IntervalOptions{}, errEmptyName
	}

	sets, err := strconv.Atoi(strings.TrimSpace(a.Sets))
	if err != nil {
		return workout.IntervalOptions{}, errInvalidNumber.Fmt("sets", a.Sets)
	}

	opts := workout.IntervalOptions{Name: name, Sets: sets}

	for _, f := range []struct {
		dst *int
		raw string
	}{
		{&opts.Prepare, a.Prepare},
		{&opts.Work, a.Work},
		{&opts.Rest, a.Rest},
		{&opts.Cooldown, a.Cooldown},
	} {
		if strings.TrimSpace(f.raw) == "" {
			continue
		}

		*f.dst, err = parseSeconds(f.raw)
		if err != nil {
			return workout.IntervalOptions{}, err
		}
	}

	return opts, nil
}

func validSeconds(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	_, err := parseSeconds(s)

	return err
}

// askInterval runs the new workout form.
func askInterval(name string) (workout.IntervalOptions, error) {
	a := defaultAnswers(name)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&a.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errEmptyName
					}

					return nil
				}),
			huh.NewInput().
				Title("Sets").
				Description("How many times work and rest are repeated").
				Value(&a.Sets).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
						return errInvalidNumber.Fmt("sets", s)
					}

					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Prepare").
				Description("Seconds before the first set. Leave empty to skip").
				Value(&a.Prepare).
				Validate(validSeconds),
			huh.NewInput().
				Title("Work").
				Value(&a.Work).
				Validate(validSeconds),
			huh.NewInput().
				Title("Rest").
				Description("Leave empty to skip").
				Value(&a.Rest).
				Validate(validSeconds),
			huh.NewInput().
				Title("Cooldown").
				Description("Seconds after the last set. Leave empty to skip").
				Value(&a.Cooldown).
				Validate(validSeconds),
		),
	)

	if err := form.Run(); err != nil {
		return workout.IntervalOptions{}, err
	}

	return a.options()
}

// confirm asks a yes or no question.
func confirm(title string) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()

	return ok, err
}
