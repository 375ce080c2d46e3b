// Package report prints the outcome of commands to the terminal
package report

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/interval/internal/ui"
)

func WorkoutSaved(name string) {
	pterm.Success.Printfln("workout %s saved", ui.Highlight(name))
}

func WorkoutDeleted(name string) {
	pterm.Info.Printfln("workout %s deleted", ui.Highlight(name))
}

func WorkoutImported(count int) {
	pterm.Success.Printfln("imported %d workout(s)", count)
}

func Error(err error) {
	pterm.Error.Println(err)
}
