package matching

import "time"

// Result is the immutable snapshot an Execute call returns: the matching
// itself plus run counters and leftovers. It holds no references back into
// engine-owned state, so it stays valid after the Engine is reused or
// discarded.
type Result struct {
	// Matching maps provider id → held client ids, ordered from the
	// provider's most to least preferred.
	Matching map[string][]string

	// Rounds is the number of proposal/acceptance rounds executed.
	Rounds int

	// Proposals is the total number of proposals made, refused ones
	// included. Bounded by Σ client preference-list lengths.
	Proposals int

	// Elapsed is the wall time Execute spent.
	Elapsed time.Duration

	// UnmatchedClients lists clients left without an allocation, in caller
	// insertion order.
	UnmatchedClients []string

	// OpenSeats maps provider id → number of unfilled seats, listing only
	// providers below capacity.
	OpenSeats map[string]int
}

// Equivalent reports whether two results describe the same run outcome:
// matching content, counters and leftovers. Elapsed wall time is ignored,
// as it legitimately varies between otherwise identical runs.
func (r Result) Equivalent(o Result) bool {
	if r.Rounds != o.Rounds || r.Proposals != o.Proposals {
		return false
	}
	if len(r.Matching) != len(o.Matching) {
		return false
	}
	for providerID, held := range r.Matching {
		other, ok := o.Matching[providerID]
		if !ok || !equalStrings(held, other) {
			return false
		}
	}
	if !equalStrings(r.UnmatchedClients, o.UnmatchedClients) {
		return false
	}
	if len(r.OpenSeats) != len(o.OpenSeats) {
		return false
	}
	for providerID, seats := range r.OpenSeats {
		if o.OpenSeats[providerID] != seats {
			return false
		}
	}

	return true
}

// equalStrings compares two string slices element-wise.
func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
