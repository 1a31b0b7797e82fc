package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mfleda/stablematch/matching"
	"github.com/mfleda/stablematch/scenario"
)

var ruralCmd = &cli.Command{
	Name:  "rural",
	Usage: "Demonstrate the rural hospitals theorem on the built-in instance",
	Action: func(ctx *cli.Context) error {
		base := scenario.RuralHospitals()
		logger.Info().Str("scenario", base.Name).Msg("running rural-hospitals demonstration")

		fmt.Fprintf(os.Stdout, "Seats: %d, clients: %d\n", totalSeats(base), len(base.Clients))

		// Re-run under several client orderings; under-subscribed
		// providers must receive identical allocation sets every time.
		orderings := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}}
		var reference map[string][]string
		invariant := true

		for _, perm := range orderings {
			s := reorderClients(base, perm)
			providers, clients := s.Build()
			eng := matching.New(providers, clients)
			res := eng.Execute()

			under := underSubscribed(s, res)
			fmt.Fprintf(os.Stdout, "ordering %v: %s\n", perm, formatAllocations(s, under))

			if reference == nil {
				reference = under

				continue
			}
			if !sameAllocations(reference, under) {
				invariant = false
			}
		}

		if invariant {
			fmt.Fprintf(os.Stdout, "Under-subscribed providers received identical allocations in every run.\n")
		} else {
			fmt.Fprintf(os.Stdout, "Invariant violated: allocations differed between runs.\n")
		}

		return nil
	},
}

// reorderClients returns a copy of s with its clients permuted.
func reorderClients(s *scenario.Scenario, perm []int) *scenario.Scenario {
	out := *s
	out.Clients = make([]scenario.ClientSpec, len(perm))
	for i, j := range perm {
		out.Clients[i] = s.Clients[j]
	}

	return &out
}

// underSubscribed extracts the allocation sets (rank order dropped) of
// providers left below capacity.
func underSubscribed(s *scenario.Scenario, res matching.Result) map[string][]string {
	under := make(map[string][]string)
	for providerID := range res.OpenSeats {
		held := append([]string(nil), res.Matching[providerID]...)
		sort.Strings(held)
		under[providerID] = held
	}

	return under
}

func sameAllocations(a, b map[string][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for providerID, held := range a {
		other, ok := b[providerID]
		if !ok || len(held) != len(other) {
			return false
		}
		for i := range held {
			if held[i] != other[i] {
				return false
			}
		}
	}

	return true
}

func formatAllocations(s *scenario.Scenario, under map[string][]string) string {
	parts := make([]string, 0, len(under))
	for _, p := range s.Providers {
		if held, ok := under[p.ID]; ok {
			parts = append(parts, fmt.Sprintf("%s=[%s]", p.ID, strings.Join(held, ",")))
		}
	}

	return strings.Join(parts, " ")
}

func totalSeats(s *scenario.Scenario) int {
	seats := 0
	for _, p := range s.Providers {
		seats += p.Capacity
	}

	return seats
}
