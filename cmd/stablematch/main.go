package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// logger writes human-readable diagnostics to stderr; report output goes
// to stdout so it can be piped cleanly.
var logger zerolog.Logger

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "stablematch",
		Usage: "Stable many-to-one matching via client-proposing deferred acceptance",
		Commands: []*cli.Command{
			runCmd,
			demoCmd,
			scaleCmd,
			ruralCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}
