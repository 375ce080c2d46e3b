package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/interval/internal/config"
	"github.com/ayoisaiah/interval/internal/models"
	"github.com/ayoisaiah/interval/internal/timeutil"
	"github.com/ayoisaiah/interval/internal/ui"
	"github.com/ayoisaiah/interval/internal/workout"
	"github.com/ayoisaiah/interval/store"
)

const noWorkoutsMsg = "No workouts saved yet. Create one with 'interval new'"

var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// library is the stored workout collection as seen by a single command.
type library struct {
	db  store.DB
	cfg *config.Config
	out io.Writer
}

func (l *library) Close() error {
	return l.db.Close()
}

// workouts returns every stored workout in stored order.
func (l *library) workouts() ([]*workout.Workout, error) {
	records, err := l.db.Workouts()
	if err != nil {
		return nil, err
	}

	out := make([]*workout.Workout, len(records))

	for i := range records {
		out[i] = workout.FromModel(&records[i])
	}

	return out, nil
}

// find resolves ref to a stored workout. ref is either a workout id or a
// name, compared without regard to case.
func (l *library) find(ref string) (*workout.Workout, error) {
	all, err := l.workouts()
	if err != nil {
		return nil, err
	}

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		i := slices.IndexFunc(all, func(w *workout.Workout) bool {
			return w.ID == id
		})
		if i >= 0 {
			return all[i], nil
		}
	}

	var matches []*workout.Workout

	for _, w := range all {
		if strings.EqualFold(w.Name, strings.TrimSpace(ref)) {
			matches = append(matches, w)
		}
	}

	switch len(matches) {
	case 0:
		return nil, errWorkoutNotFound.Fmt(ref)
	case 1:
		return matches[0], nil
	default:
		return nil, errAmbiguousWorkout.Fmt(ref, len(matches))
	}
}

func (l *library) save(w *workout.Workout) error {
	return l.db.SaveWorkout(w.ToModel())
}

// edit applies fn to the workout identified by ref and saves the result.
func (l *library) edit(ref string, fn func(*workout.Workout) error) (*workout.Workout, error) {
	w, err := l.find(ref)
	if err != nil {
		return nil, err
	}

	if err := fn(w); err != nil {
		return nil, err
	}

	return w, l.save(w)
}

func (l *library) rename(ref, name string) (*workout.Workout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errEmptyName
	}

	return l.edit(ref, func(w *workout.Workout) error {
		w.Name = name
		return nil
	})
}

func (l *library) remove(w *workout.Workout) error {
	return l.db.DeleteWorkout(w.ID)
}

// list prints the stored workouts sorted by name.
func (l *library) list(asJSON bool) error {
	all, err := l.workouts()
	if err != nil {
		return err
	}

	slices.SortStableFunc(all, func(a, b *workout.Workout) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}

		return 0
	})

	if asJSON {
		records := make([]*models.Workout, len(all))
		for i, w := range all {
			records[i] = w.ToModel()
		}

		return writeJSON(l.out, records)
	}

	if len(all) == 0 {
		pterm.Info.Println(noWorkoutsMsg)
		return nil
	}

	rows := [][]string{{"ID", "NAME", "BLOCKS", "STEPS", "DURATION"}}

	for _, w := range all {
		var steps int
		for range w.Positions() {
			steps++
		}

		rows = append(rows, []string{
			strconv.FormatInt(w.ID, 10),
			w.Name,
			strconv.Itoa(len(w.Blocks)),
			strconv.Itoa(steps),
			timeutil.Humanize(w.TotalDuration()),
		})
	}

	ui.PrintTable(rows, l.out)

	return nil
}

// show prints the blocks of a workout followed by the order in which its
// steps are played.
func (l *library) show(ref string, asJSON bool) error {
	w, err := l.find(ref)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(l.out, w.ToModel())
	}

	fmt.Fprintf(
		l.out,
		"%s (%s)\n\n",
		ui.Highlight(w.Name),
		timeutil.Humanize(w.TotalDuration()),
	)

	blocks := [][]string{{"BLOCK", "SETS", "STEP", "LABEL", "DURATION", "COLOR"}}

	for i, b := range w.Blocks {
		if !b.Playable() {
			blocks = append(blocks, []string{
				strconv.Itoa(i + 1), strconv.Itoa(b.Sets()), "-", "(empty)", "", "",
			})

			continue
		}

		for j, s := range b.SubBlocks {
			row := []string{"", "", strconv.Itoa(j + 1), s.Label, timeutil.Clock(s.Duration()), ui.Swatch(s.Color) + " " + s.Color}
			if j == 0 {
				row[0] = strconv.Itoa(i + 1)
				row[1] = strconv.Itoa(b.Sets())
			}

			blocks = append(blocks, row)
		}
	}

	ui.PrintTable(blocks, l.out)

	timeline := [][]string{{"#", "STARTS AT", "LABEL", "SET", "DURATION"}}

	n := 0

	for p := range w.Positions() {
		n++

		s := w.SubBlockAt(p)
		timeline = append(timeline, []string{
			strconv.Itoa(n),
			timeutil.Clock(w.DurationBefore(p)),
			s.Label,
			fmt.Sprintf("%d / %d", p.Set, w.Blocks[p.BlockIndex].Sets()),
			timeutil.Clock(s.Duration()),
		})
	}

	if n == 0 {
		pterm.Fprintln(l.out, "\nThis workout has nothing to play")
		return nil
	}

	fmt.Fprintln(l.out)
	ui.PrintTable(timeline, l.out)

	return nil
}

// export writes a workout record as JSON to path, or to the output if path
// is empty.
func (l *library) export(ref, path string) error {
	w, err := l.find(ref)
	if err != nil {
		return err
	}

	if path == "" {
		return writeJSON(l.out, w.ToModel())
	}

	f, err := createFile(path)
	if err != nil {
		return errWriteExport.Fmt(path).Wrap(err)
	}

	if err := writeJSON(f, w.ToModel()); err != nil {
		_ = f.Close()
		return errWriteExport.Fmt(path).Wrap(err)
	}

	if err := f.Close(); err != nil {
		return errWriteExport.Fmt(path).Wrap(err)
	}

	return nil
}

// importFile saves the workouts in the file at path. The file holds either a
// single workout record or a list of them. A workout with the id of a stored
// one replaces it.
func (l *library) importFile(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, errReadImport.Fmt(path).Wrap(err)
	}

	records, err := decodeRecords(b)
	if err != nil {
		return 0, errReadImport.Fmt(path).Wrap(err)
	}

	for i := range records {
		w := workout.FromModel(&records[i])
		if w.ID == 0 {
			w.ID = workout.NewID()
		}

		if strings.TrimSpace(w.Name) == "" {
			w.Name = workout.DefaultName
		}

		if err := l.save(w); err != nil {
			return i, err
		}
	}

	return len(records), nil
}

func decodeRecords(b []byte) ([]models.Workout, error) {
	trimmed := strings.TrimSpace(string(b))

	if strings.HasPrefix(trimmed, "[") {
		var records []models.Workout

		err := json.Unmarshal(b, &records)

		return records, err
	}

	var record models.Workout
	if err := json.Unmarshal(b, &record); err != nil {
		return nil, err
	}

	return []models.Workout{record}, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}
