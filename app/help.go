package app

import (
	"github.com/pterm/pterm"
)

func helpText() string {
	description := `{{.Name}}{{if .Usage}} - {{.Usage}}{{end}}`

	usage := pterm.Yellow("USAGE:") + `
   {{.HelpName}} {{if .UsageText}}{{ .UsageText | nindent 3 | trim }}{{else}}{{if .VisibleFlags}}[GLOBAL OPTIONS] {{end}}{{if .Commands}}[COMMAND] [OPTIONS]{{end}}{{end}}`

	author := `{{if len .Authors}}

` + pterm.Yellow("AUTHOR") + `:{{range .Authors}}
   {{ . }}{{end}}{{end}}`

	version := `{{if .Version}}

` + pterm.Yellow("VERSION") + `:
   {{.Version}}{{end}}`

	commands := `{{if .VisibleCommands}}

` + pterm.Yellow("COMMANDS") + `:{{range .VisibleCategories}}{{if .Name}}
   {{.Name}}:{{range .VisibleCommands}}
     {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
   {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}`

	options := `{{if .VisibleFlags}}

` + pterm.Yellow("GLOBAL OPTIONS") + `:{{range .VisibleFlags}}
   {{.}}{{end}}{{end}}`

	env := `

` + pterm.Yellow("ENVIRONMENT") + `:` + envHelp()

	docs := `

` + pterm.Yellow("DOCUMENTATION") + `:
   https://github.com/ayoisaiah/interval`

	return description + usage + author + version + commands + options + env + docs + "\n"
}

func envHelp() string {
	return `
   INTERVAL_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

   INTERVAL_DEBUG: set to any value to write debug messages to the log file.

   INTERVAL_ENV: suffix added to the config, database and log file names (useful for testing).`
}
