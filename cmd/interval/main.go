package main

import (
	"os"

	"github.com/ayoisaiah/interval/app"
	"github.com/ayoisaiah/interval/internal/osutil"
	"github.com/ayoisaiah/interval/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Error(err)
		os.Exit(int(osutil.ExitError))
	}
}
