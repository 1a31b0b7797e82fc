package main

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mfleda/stablematch/matching"
	"github.com/mfleda/stablematch/report"
	"github.com/mfleda/stablematch/scenario"
)

var runCmd = &cli.Command{
	Name:    "run",
	Usage:   "Run the matching on a TOML scenario file",
	Aliases: []string{"r"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "scenario",
			Required: true,
			Usage:    "path to the scenario .toml",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "print the per-round proposal/eviction log",
		},
		&cli.BoolFlag{
			Name:  "check",
			Usage: "verify stability after the run",
		},
	},
	Action: func(ctx *cli.Context) error {
		s, err := scenario.Load(ctx.String("scenario"))
		if err != nil {
			return err
		}
		logger.Info().
			Str("scenario", s.Name).
			Int("providers", len(s.Providers)).
			Int("clients", len(s.Clients)).
			Msg("scenario loaded")

		return runScenario(os.Stdout, s, ctx.Bool("trace"), ctx.Bool("check"))
	},
}

// runScenario executes one validated scenario end to end: configuration,
// optional round trace, summary, optional stability check.
func runScenario(w io.Writer, s *scenario.Scenario, trace, check bool) error {
	providers, clients := s.Build()

	var opts []matching.Option
	if trace {
		opts = append(opts, matching.WithRoundLog())
	}
	eng := matching.New(providers, clients, opts...)
	res := eng.Execute()

	names := report.Names(s.Names())
	if err := report.Config(w, s); err != nil {
		return err
	}
	if trace {
		if err := report.Rounds(w, eng.Log(), names); err != nil {
			return err
		}
	}
	if err := report.Summary(w, s, res, names); err != nil {
		return err
	}
	if check {
		stable, pairs := eng.VerifyStability()

		return report.Stability(w, stable, pairs, names)
	}

	return nil
}
