package main

import (
	"os"

	"github.com/hbjs97/cenv/internal/cli"
)

func main() {
	app := &cli.App{}
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
