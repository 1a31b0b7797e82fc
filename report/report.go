package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mfleda/stablematch/matching"
	"github.com/mfleda/stablematch/scenario"
)

// Names maps entity ids to display names. Ids missing from the table
// render as themselves.
type Names map[string]string

// DisplayName resolves an id to its display name, falling back to the id.
func (n Names) DisplayName(id string) string {
	if name, ok := n[id]; ok && name != "" {
		return name
	}

	return id
}

// Config writes the problem configuration: providers with capacities and
// rankings, then clients with rankings.
func Config(w io.Writer, s *scenario.Scenario) error {
	if _, err := fmt.Fprintf(w, "Providers and capacities:\n"); err != nil {
		return err
	}
	for _, p := range s.Providers {
		fmt.Fprintf(w, "  %s (%s): capacity = %d\n", p.Name, p.ID, p.Capacity)
		fmt.Fprintf(w, "    prefers: %s\n", strings.Join(p.Prefers, " > "))
	}
	fmt.Fprintf(w, "Clients and preferences:\n")
	for _, c := range s.Clients {
		fmt.Fprintf(w, "  %s (%s): %s\n", c.Name, c.ID, strings.Join(c.Prefers, " > "))
	}

	return nil
}

// Rounds writes the event log grouped by round: proposals with their
// outcome first, capacity evictions after.
func Rounds(w io.Writer, events []matching.Event, names Names) error {
	round := 0
	for _, ev := range events {
		if ev.Round != round {
			round = ev.Round
			if _, err := fmt.Fprintf(w, "Round %d:\n", round); err != nil {
				return err
			}
		}
		client := names.DisplayName(ev.ClientID)
		provider := names.DisplayName(ev.ProviderID)
		switch ev.Kind {
		case matching.EventProposed, matching.EventRefused:
			fmt.Fprintf(w, "  %s -> %s: %s\n", client, provider, ev.Kind)
		case matching.EventEvicted:
			fmt.Fprintf(w, "  %s evicted %s\n", provider, client)
		}
	}

	return nil
}

// Summary writes the final matching, the run metrics and the leftovers
// (unallocated clients, open seats). Providers print in scenario order;
// the result's matching map itself carries no ordering.
func Summary(w io.Writer, s *scenario.Scenario, res matching.Result, names Names) error {
	if _, err := fmt.Fprintf(w, "Matching:\n"); err != nil {
		return err
	}
	for _, p := range s.Providers {
		held := res.Matching[p.ID]
		shown := make([]string, len(held))
		for i, id := range held {
			shown[i] = names.DisplayName(id)
		}
		fmt.Fprintf(w, "  %s: [%s] (%d/%d)\n",
			names.DisplayName(p.ID), strings.Join(shown, ", "), len(held), p.Capacity)
	}

	fmt.Fprintf(w, "Metrics:\n")
	fmt.Fprintf(w, "  rounds:    %d\n", res.Rounds)
	fmt.Fprintf(w, "  proposals: %d\n", res.Proposals)
	fmt.Fprintf(w, "  elapsed:   %s\n", res.Elapsed)

	if len(res.UnmatchedClients) > 0 {
		shown := make([]string, len(res.UnmatchedClients))
		for i, id := range res.UnmatchedClients {
			shown[i] = names.DisplayName(id)
		}
		fmt.Fprintf(w, "  unallocated clients: %s\n", strings.Join(shown, ", "))
	} else {
		fmt.Fprintf(w, "  all clients allocated\n")
	}

	if len(res.OpenSeats) > 0 {
		fmt.Fprintf(w, "  open seats:\n")
		for _, p := range s.Providers {
			if open, ok := res.OpenSeats[p.ID]; ok {
				fmt.Fprintf(w, "    %s: %d\n", names.DisplayName(p.ID), open)
			}
		}
	}

	return nil
}

// Stability writes the verdict of the blocking-pair scan.
func Stability(w io.Writer, stable bool, pairs []matching.BlockingPair, names Names) error {
	if stable {
		_, err := fmt.Fprintf(w, "Stability: STABLE (no blocking pairs)\n")

		return err
	}

	if _, err := fmt.Fprintf(w, "Stability: UNSTABLE, %d blocking pair(s):\n", len(pairs)); err != nil {
		return err
	}
	for _, bp := range pairs {
		fmt.Fprintf(w, "  (%s, %s)\n", names.DisplayName(bp.ClientID), names.DisplayName(bp.ProviderID))
	}

	return nil
}
