package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mfleda/stablematch/matching"
	"github.com/mfleda/stablematch/scenario"
)

var scaleCmd = &cli.Command{
	Name:  "scale",
	Usage: "Run random instances of increasing size and report proposal growth",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "sizes",
			Value: "10,20,50,100,200,500",
			Usage: "comma-separated client counts",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "PRNG seed for instance generation",
		},
	},
	Action: func(ctx *cli.Context) error {
		sizes, err := parseSizes(ctx.String("sizes"))
		if err != nil {
			return err
		}
		seed := ctx.Int64("seed")
		logger.Info().Ints("sizes", sizes).Int64("seed", seed).Msg("running scale experiment")

		for _, n := range sizes {
			s := scenario.Random(scenario.RandomConfig{Clients: n, Seed: seed})
			providers, clients := s.Build()
			eng := matching.New(providers, clients)
			res := eng.Execute()
			stable, _ := eng.VerifyStability()

			fmt.Fprintf(os.Stdout, "n=%4d clients, m=%3d providers: %6d proposals, %4d rounds, %12s, stable=%v\n",
				n, len(s.Providers), res.Proposals, res.Rounds, res.Elapsed, stable)
		}

		return nil
	},
}

// parseSizes parses a comma-separated list of positive client counts.
func parseSizes(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, errors.New("invalid sizes: expected comma-separated positive integers")
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}
