// Package matching_test contains unit tests for the Deferred Acceptance
// engine. These tests validate the round mechanics, the capacity rule, the
// tolerance for unknown ids and empty lists, reset-on-reexecution, and the
// classic scenario outcomes (marketplace, residency, rural hospitals).
package matching_test

import (
	"testing"

	"github.com/mfleda/stablematch/matching"
	"github.com/mfleda/stablematch/scenario"
)

// buildEngine constructs an engine from a scenario fixture.
func buildEngine(s *scenario.Scenario, opts ...matching.Option) *matching.Engine {
	providers, clients := s.Build()

	return matching.New(providers, clients, opts...)
}

// ------------------------------------------------------------------------
// 1. Elementary scenarios with hand-checked outcomes.
// ------------------------------------------------------------------------

func TestExecute_SingleSeatContest(t *testing.T) {
	// One provider with one seat, three clients all wanting it. Exactly one
	// client wins, in one round, after three proposals.
	providers := []*matching.Provider{
		matching.NewProvider("P1", "Sole Provider", 1, []string{"C1", "C2", "C3"}),
	}
	clients := []*matching.Client{
		matching.NewClient("C1", "", []string{"P1"}),
		matching.NewClient("C2", "", []string{"P1"}),
		matching.NewClient("C3", "", []string{"P1"}),
	}

	eng := matching.New(providers, clients)
	res := eng.Execute()

	if got := res.Matching["P1"]; len(got) != 1 || got[0] != "C1" {
		t.Fatalf("Matching[P1] = %v; want [C1]", got)
	}
	if got, want := res.Rounds, 1; got != want {
		t.Errorf("Rounds = %d; want %d", got, want)
	}
	if got, want := res.Proposals, 3; got != want {
		t.Errorf("Proposals = %d; want %d", got, want)
	}
	if len(res.UnmatchedClients) != 2 || res.UnmatchedClients[0] != "C2" || res.UnmatchedClients[1] != "C3" {
		t.Errorf("UnmatchedClients = %v; want [C2 C3]", res.UnmatchedClients)
	}
	if len(res.OpenSeats) != 0 {
		t.Errorf("OpenSeats = %v; want empty", res.OpenSeats)
	}

	if stable, pairs := eng.VerifyStability(); !stable {
		t.Errorf("expected stable matching, got blocking pairs %v", pairs)
	}
}

func TestExecute_MutualFirstChoices(t *testing.T) {
	// Two providers, two clients, preferences aligned so everyone gets
	// their first choice in a single round of two proposals.
	providers := []*matching.Provider{
		matching.NewProvider("A", "", 1, []string{"c1", "c2"}),
		matching.NewProvider("B", "", 1, []string{"c2", "c1"}),
	}
	clients := []*matching.Client{
		matching.NewClient("c1", "", []string{"A", "B"}),
		matching.NewClient("c2", "", []string{"B", "A"}),
	}

	eng := matching.New(providers, clients)
	res := eng.Execute()

	if got := res.Matching["A"]; len(got) != 1 || got[0] != "c1" {
		t.Errorf("Matching[A] = %v; want [c1]", got)
	}
	if got := res.Matching["B"]; len(got) != 1 || got[0] != "c2" {
		t.Errorf("Matching[B] = %v; want [c2]", got)
	}
	if res.Rounds != 1 || res.Proposals != 2 {
		t.Errorf("Rounds=%d Proposals=%d; want 1 and 2", res.Rounds, res.Proposals)
	}
}

// ------------------------------------------------------------------------
// 2. Fixture scenarios: marketplace, residency-style, rural hospitals.
// ------------------------------------------------------------------------

func TestExecute_Marketplace(t *testing.T) {
	eng := buildEngine(scenario.Marketplace())
	res := eng.Execute()

	want := map[string][]string{
		"E1": {"C2", "C1"},
		"E2": {"C3", "C5"},
		"E3": {"C4"},
	}
	assertMatching(t, res, want)

	if res.Rounds != 3 {
		t.Errorf("Rounds = %d; want 3", res.Rounds)
	}
	if res.Proposals != 7 {
		t.Errorf("Proposals = %d; want 7", res.Proposals)
	}
	if len(res.UnmatchedClients) != 0 {
		t.Errorf("UnmatchedClients = %v; want none", res.UnmatchedClients)
	}
	if len(res.OpenSeats) != 0 {
		t.Errorf("OpenSeats = %v; want none", res.OpenSeats)
	}
}

func TestExecute_NRMP(t *testing.T) {
	eng := buildEngine(scenario.NRMP())
	res := eng.Execute()

	want := map[string][]string{
		"H1": {"R1", "R2", "R5"},
		"H2": {"R4", "R3", "R6"},
		"H3": {"R7", "R8"},
	}
	assertMatching(t, res, want)

	if res.Rounds != 2 || res.Proposals != 9 {
		t.Errorf("Rounds=%d Proposals=%d; want 2 and 9", res.Rounds, res.Proposals)
	}
}

func TestExecute_RuralHospitals(t *testing.T) {
	eng := buildEngine(scenario.RuralHospitals())
	res := eng.Execute()

	want := map[string][]string{
		"P1": {"C1", "C2"},
		"P2": {"C3"},
		"P3": {},
	}
	assertMatching(t, res, want)

	if res.OpenSeats["P2"] != 1 || res.OpenSeats["P3"] != 2 {
		t.Errorf("OpenSeats = %v; want P2:1 P3:2", res.OpenSeats)
	}
}

func TestExecute_RuralHospitals_OrderInvariant(t *testing.T) {
	// Rural hospitals theorem: the under-subscribed providers and the
	// clients they receive are identical across all stable matchings, so
	// permuting the client insertion order must not change them.
	orderings := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}, {2, 0, 1}}
	base := scenario.RuralHospitals()

	for _, perm := range orderings {
		s := &scenario.Scenario{Name: base.Name, Providers: base.Providers}
		for _, j := range perm {
			s.Clients = append(s.Clients, base.Clients[j])
		}

		res := buildEngine(s).Execute()
		if got := res.Matching["P2"]; len(got) != 1 || got[0] != "C3" {
			t.Errorf("ordering %v: Matching[P2] = %v; want [C3]", perm, got)
		}
		if got := res.Matching["P3"]; len(got) != 0 {
			t.Errorf("ordering %v: Matching[P3] = %v; want empty", perm, got)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Input tolerance: unknown ids, unacceptable clients, empty lists,
//    zero capacity.
// ------------------------------------------------------------------------

func TestExecute_UnknownProviderIDIsRefused(t *testing.T) {
	providers := []*matching.Provider{
		matching.NewProvider("P1", "", 1, []string{"C1"}),
	}
	clients := []*matching.Client{
		matching.NewClient("C1", "", []string{"ZZ", "P1"}),
	}

	res := matching.New(providers, clients).Execute()

	// The proposal to the unknown id counts but is refused; the client
	// lands at its second choice one round later.
	if got := res.Matching["P1"]; len(got) != 1 || got[0] != "C1" {
		t.Fatalf("Matching[P1] = %v; want [C1]", got)
	}
	if res.Proposals != 2 || res.Rounds != 2 {
		t.Errorf("Rounds=%d Proposals=%d; want 2 and 2", res.Rounds, res.Proposals)
	}
}

func TestExecute_UnacceptableClientIsRefused(t *testing.T) {
	providers := []*matching.Provider{
		matching.NewProvider("P1", "", 1, []string{"C2"}), // C1 not listed
	}
	clients := []*matching.Client{
		matching.NewClient("C1", "", []string{"P1"}),
	}

	res := matching.New(providers, clients).Execute()

	if len(res.Matching["P1"]) != 0 {
		t.Errorf("Matching[P1] = %v; want empty", res.Matching["P1"])
	}
	if len(res.UnmatchedClients) != 1 || res.UnmatchedClients[0] != "C1" {
		t.Errorf("UnmatchedClients = %v; want [C1]", res.UnmatchedClients)
	}
}

func TestExecute_EmptyPreferenceListsAreInert(t *testing.T) {
	providers := []*matching.Provider{
		matching.NewProvider("P1", "", 2, nil), // accepts nobody
		matching.NewProvider("P2", "", 1, []string{"C1", "C2"}),
	}
	clients := []*matching.Client{
		matching.NewClient("C1", "", nil), // never proposes
		matching.NewClient("C2", "", []string{"P1", "P2"}),
	}

	res := matching.New(providers, clients).Execute()

	if got := res.Matching["P2"]; len(got) != 1 || got[0] != "C2" {
		t.Errorf("Matching[P2] = %v; want [C2]", got)
	}
	if len(res.UnmatchedClients) != 1 || res.UnmatchedClients[0] != "C1" {
		t.Errorf("UnmatchedClients = %v; want [C1]", res.UnmatchedClients)
	}
	if res.OpenSeats["P1"] != 2 {
		t.Errorf("OpenSeats[P1] = %d; want 2", res.OpenSeats["P1"])
	}
}

func TestExecute_ZeroCapacityProviderEvictsEveryone(t *testing.T) {
	providers := []*matching.Provider{
		matching.NewProvider("P1", "", 0, []string{"C1"}),
	}
	clients := []*matching.Client{
		matching.NewClient("C1", "", []string{"P1"}),
	}

	eng := matching.New(providers, clients)
	res := eng.Execute()

	if len(res.Matching["P1"]) != 0 {
		t.Errorf("Matching[P1] = %v; want empty", res.Matching["P1"])
	}
	if len(res.UnmatchedClients) != 1 {
		t.Errorf("UnmatchedClients = %v; want [C1]", res.UnmatchedClients)
	}
	// A zero-capacity provider has no open seats to report.
	if _, ok := res.OpenSeats["P1"]; ok {
		t.Errorf("OpenSeats lists zero-capacity provider: %v", res.OpenSeats)
	}
	if stable, pairs := eng.VerifyStability(); !stable {
		t.Errorf("expected stable, got blocking pairs %v", pairs)
	}
}

// ------------------------------------------------------------------------
// 4. Capacity respect and at-most-one allocation, on a fixture.
// ------------------------------------------------------------------------

func TestExecute_CapacityAndSingleAllocationInvariants(t *testing.T) {
	s := scenario.NRMP()
	res := buildEngine(s).Execute()

	capacities := make(map[string]int, len(s.Providers))
	for _, p := range s.Providers {
		capacities[p.ID] = p.Capacity
	}

	holder := make(map[string]string)
	for providerID, held := range res.Matching {
		if len(held) > capacities[providerID] {
			t.Errorf("provider %s holds %d clients, capacity %d", providerID, len(held), capacities[providerID])
		}
		for _, clientID := range held {
			if prev, ok := holder[clientID]; ok {
				t.Errorf("client %s held by both %s and %s", clientID, prev, providerID)
			}
			holder[clientID] = providerID
		}
	}
	for _, clientID := range res.UnmatchedClients {
		if providerID, ok := holder[clientID]; ok {
			t.Errorf("client %s reported unmatched but held by %s", clientID, providerID)
		}
	}
}

// ------------------------------------------------------------------------
// 5. Reset, idempotence and determinism.
// ------------------------------------------------------------------------

func TestExecute_RepeatedInvocationIsEquivalent(t *testing.T) {
	eng := buildEngine(scenario.Marketplace(), matching.WithRoundLog())

	first := eng.Execute()
	firstLog := eng.Log()

	second := eng.Execute()
	secondLog := eng.Log()

	if !first.Equivalent(second) {
		t.Fatalf("re-execution diverged: first=%+v second=%+v", first, second)
	}
	if len(firstLog) != len(secondLog) {
		t.Fatalf("log lengths differ: %d vs %d", len(firstLog), len(secondLog))
	}
	for i := range firstLog {
		if firstLog[i] != secondLog[i] {
			t.Errorf("log[%d] differs: %+v vs %+v", i, firstLog[i], secondLog[i])
		}
	}
}

func TestExecute_FreshEnginesAgree(t *testing.T) {
	a := buildEngine(scenario.NRMP()).Execute()
	b := buildEngine(scenario.NRMP()).Execute()

	if !a.Equivalent(b) {
		t.Errorf("two engines over the same input diverged: %+v vs %+v", a, b)
	}
}

// ------------------------------------------------------------------------
// 6. Round log contents and proposal monotonicity.
// ------------------------------------------------------------------------

func TestExecute_RoundLogReplaysTheRun(t *testing.T) {
	eng := buildEngine(scenario.Marketplace(), matching.WithRoundLog())
	res := eng.Execute()
	log := eng.Log()

	if len(log) == 0 {
		t.Fatal("expected a non-empty round log")
	}

	// Round numbers never decrease and never exceed the round count.
	prevRound := 1
	proposalsSeen := 0
	asked := make(map[[2]string]int)
	for _, ev := range log {
		if ev.Round < prevRound || ev.Round > res.Rounds {
			t.Fatalf("event %+v out of round sequence (prev %d, total %d)", ev, prevRound, res.Rounds)
		}
		prevRound = ev.Round

		if ev.Kind == matching.EventProposed || ev.Kind == matching.EventRefused {
			proposalsSeen++
			asked[[2]string{ev.ClientID, ev.ProviderID}]++
		}
	}

	if proposalsSeen != res.Proposals {
		t.Errorf("log records %d proposals; result says %d", proposalsSeen, res.Proposals)
	}
	// Each client asks each provider at most once per run.
	for pair, count := range asked {
		if count > 1 {
			t.Errorf("client %s proposed to %s %d times", pair[0], pair[1], count)
		}
	}
}

func TestExecute_NoLogWithoutOption(t *testing.T) {
	eng := buildEngine(scenario.Marketplace())
	eng.Execute()

	if log := eng.Log(); log != nil {
		t.Errorf("expected nil log without WithRoundLog, got %d events", len(log))
	}
}

// ------------------------------------------------------------------------
// 7. Helpers.
// ------------------------------------------------------------------------

func assertMatching(t *testing.T, res matching.Result, want map[string][]string) {
	t.Helper()
	for providerID, expect := range want {
		got := res.Matching[providerID]
		if len(got) != len(expect) {
			t.Errorf("Matching[%s] = %v; want %v", providerID, got, expect)

			continue
		}
		for i := range expect {
			if got[i] != expect[i] {
				t.Errorf("Matching[%s] = %v; want %v", providerID, got, expect)

				break
			}
		}
	}
}
