package matching

// BlockingPair is a (client, provider) pair that would jointly abandon the
// current matching: the client prefers the provider over its allocation,
// and the provider has a free seat or prefers the client over its worst
// held client.
type BlockingPair struct {
	ClientID   string
	ProviderID string
}

// VerifyStability scans the post-run state for blocking pairs and reports
// whether the matching is stable (no pair found). Pairs are returned in
// client insertion order, then by the client's preference order.
//
// For each client the scan walks its preference list from the top down to
// — but excluding — its current allocation; an unallocated client has its
// whole list scanned. Providers ranked below the current allocation are
// deliberately never inspected: a blocking pair requires the client to
// strictly prefer the alternative.
//
// This is a pure read-only pass over engine-owned state, O(n·m) worst
// case. Call it only after Execute has returned; allocations read mid-run
// or before the first run are meaningless.
func (e *Engine) VerifyStability() (bool, []BlockingPair) {
	var pairs []BlockingPair

	for _, clientID := range e.clientOrder {
		c := e.clients[clientID]
		current := c.allocatedTo

		for _, providerID := range c.Prefs {
			if providerID == current {
				// Reached the actual allocation: everything below is less
				// preferred and cannot block.
				break
			}

			p, ok := e.providers[providerID]
			if !ok {
				continue
			}
			if !p.acceptable(clientID) {
				continue
			}

			// The provider side blocks if a seat is open, or if its worst
			// held client ranks below this one.
			if p.hasOpenSeat() {
				pairs = append(pairs, BlockingPair{ClientID: clientID, ProviderID: providerID})

				continue
			}
			if worst, held := p.worstHeld(); held && p.rankOf(clientID) < p.rankOf(worst) {
				pairs = append(pairs, BlockingPair{ClientID: clientID, ProviderID: providerID})
			}
		}
	}

	return len(pairs) == 0, pairs
}
