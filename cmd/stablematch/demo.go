package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mfleda/stablematch/scenario"
)

var demoCmd = &cli.Command{
	Name:  "demo",
	Usage: "Run the built-in service-marketplace example",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "trace",
			Value: true,
			Usage: "print the per-round proposal/eviction log",
		},
	},
	Action: func(ctx *cli.Context) error {
		s := scenario.Marketplace()
		logger.Info().Str("scenario", s.Name).Msg("running built-in demo")

		return runScenario(os.Stdout, s, ctx.Bool("trace"), true)
	},
}
