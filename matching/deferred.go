// Package matching — deferred.go implements the Deferred Acceptance engine
// (client-proposing Gale–Shapley for the Hospital/Residents problem).
//
// Notes on implementation choices:
//
//   - The engine performs no input validation (see package doc); boundary
//     checks belong to the caller, typically via scenario.Validate.
//   - Free clients and proposal-receiving providers are iterated in stable
//     orders (caller insertion order / first-proposal order), so the round
//     count, proposal count and event log are reproducible run to run. The
//     matching content itself is invariant to proposal order regardless.
//   - Execute resets all mutable entity state up front, so one Engine can
//     be re-run on the same configuration and yields an equivalent Result.
package matching

import (
	"sort"
	"time"
)

// Engine runs the Deferred Acceptance algorithm over one pair of
// populations. It exclusively owns the Provider/Client mutable state for
// the duration of each Execute call. Not safe for concurrent use.
type Engine struct {
	providers map[string]*Provider // arena: provider id → entity
	clients   map[string]*Client   // arena: client id → entity

	providerOrder []string // caller insertion order, for stable iteration
	clientOrder   []string

	opts Options

	rounds    int
	proposals int
	log       []Event
}

// New builds an Engine over the given populations. Entities are stored in
// id-indexed arenas; all cross-references during the run are id lookups.
// If an id occurs twice within one population, the last entity wins.
func New(providers []*Provider, clients []*Client, opts ...Option) *Engine {
	// 1) Build and finalize Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Index both populations, remembering insertion order.
	e := &Engine{
		providers:     make(map[string]*Provider, len(providers)),
		clients:       make(map[string]*Client, len(clients)),
		providerOrder: make([]string, 0, len(providers)),
		clientOrder:   make([]string, 0, len(clients)),
		opts:          cfg,
	}
	for _, p := range providers {
		if _, seen := e.providers[p.ID]; !seen {
			e.providerOrder = append(e.providerOrder, p.ID)
		}
		e.providers[p.ID] = p
	}
	for _, c := range clients {
		if _, seen := e.clients[c.ID]; !seen {
			e.clientOrder = append(e.clientOrder, c.ID)
		}
		e.clients[c.ID] = c
	}

	return e
}

// Execute runs Deferred Acceptance to its fixed point and returns the
// resulting stable matching as an immutable Result.
//
// The run proceeds in rounds. Each round, every free client proposes to
// the next provider on its list; every provider that received proposals
// keeps the capacity-best subset of {held ∪ proposed} and evicts the rest.
// The run ends when no client is both free and has an unasked provider.
//
// Execute resets all mutable state first, so repeated invocations on the
// same Engine are independent and yield equivalent Results.
//
// Complexity: O(Σ|prefs|) proposals total — each client asks each
// acceptable provider at most once.
func (e *Engine) Execute() Result {
	start := time.Now()

	// 1) Reset mutable state to support repeated invocation.
	e.reset()

	// 2) Free set: clients with no allocation and providers left to ask,
	//    in caller insertion order.
	free := e.freeClients()

	// 3) Round loop: runs until the free set empties, which is guaranteed
	//    since every round either allocates clients or burns cursors.
	for len(free) > 0 {
		e.rounds++

		// 3a) Proposal phase. Iterate the snapshot taken at round start;
		//     allocations changed mid-round do not affect this iteration.
		pending, touched := e.proposalPhase(free)

		// 3b) Acceptance phase, provider by provider in the order each
		//     received its first proposal this round.
		e.acceptancePhase(pending, touched)

		// 3c) Recompute the free set for the next round.
		free = e.freeClients()
	}

	// 4) Snapshot the final state into the Result.
	return e.buildResult(start)
}

// Log returns the ordered event stream recorded during the last Execute,
// or nil when the engine was built without WithRoundLog.
func (e *Engine) Log() []Event {
	return e.log
}

// reset clears all engine- and entity-level mutable state.
func (e *Engine) reset() {
	for _, p := range e.providers {
		p.held = nil
	}
	for _, c := range e.clients {
		c.cursor = 0
		c.allocatedTo = ""
	}
	e.rounds = 0
	e.proposals = 0
	e.log = nil
	if e.opts.RoundLog {
		e.log = make([]Event, 0, e.opts.EventCapacity)
	}
}

// freeClients returns, in caller insertion order, the ids of clients that
// are unallocated and still have unasked providers.
func (e *Engine) freeClients() []string {
	var free []string
	for _, clientID := range e.clientOrder {
		c := e.clients[clientID]
		if c.free() && !c.exhausted() {
			free = append(free, clientID)
		}
	}

	return free
}

// proposalPhase advances each free client's cursor by one and routes the
// proposal. Acceptable proposals are grouped per provider as pending;
// proposals to unknown or non-accepting providers are refused on the spot
// (the client stays free and retries next round if anyone is left).
// touched lists the providers that received ≥1 pending proposal, in
// first-proposal order.
func (e *Engine) proposalPhase(free []string) (pending map[string][]string, touched []string) {
	pending = make(map[string][]string)

	for _, clientID := range free {
		c := e.clients[clientID]

		providerID, ok := c.nextProvider()
		if !ok {
			// Exhausted; drops out of the free set at the recompute.
			continue
		}
		e.proposals++

		p, exists := e.providers[providerID]
		if exists && p.acceptable(clientID) {
			if _, seen := pending[providerID]; !seen {
				touched = append(touched, providerID)
			}
			pending[providerID] = append(pending[providerID], clientID)
			e.record(EventProposed, clientID, providerID)
		} else {
			// Unknown id or unacceptable client: silent refusal, not an
			// error. The client stays in the pool for the next round.
			e.record(EventRefused, clientID, providerID)
		}
	}

	return pending, touched
}

// acceptancePhase lets each touched provider re-evaluate its held list
// against this round's pending proposals: the candidate set is sorted by
// the provider's rank and truncated to capacity. Evicted clients lose
// their allocation and return to the pool; accepted ones are bound to the
// provider.
func (e *Engine) acceptancePhase(pending map[string][]string, touched []string) {
	for _, providerID := range touched {
		p := e.providers[providerID]

		// Candidate set = currently held ∪ this round's pending. The two
		// are disjoint: held clients are allocated and never propose.
		candidates := make([]string, 0, len(p.held)+len(pending[providerID]))
		candidates = append(candidates, p.held...)
		candidates = append(candidates, pending[providerID]...)

		// Rank-sort ascending; lower index = more preferred. All
		// candidates are acceptable here, so ranks are always defined.
		sort.SliceStable(candidates, func(i, j int) bool {
			return p.rankOf(candidates[i]) < p.rankOf(candidates[j])
		})

		// Keep the best up to capacity, evict the rest.
		cut := len(candidates)
		if p.Capacity < cut {
			cut = p.Capacity
		}
		accepted, evicted := candidates[:cut], candidates[cut:]

		p.held = accepted
		for _, clientID := range accepted {
			e.clients[clientID].allocatedTo = providerID
		}
		for _, clientID := range evicted {
			e.clients[clientID].allocatedTo = ""
			e.record(EventEvicted, clientID, providerID)
		}
	}
}

// buildResult snapshots the final provider/client state into a Result
// value with no back-references into engine-owned state.
func (e *Engine) buildResult(start time.Time) Result {
	matching := make(map[string][]string, len(e.providers))
	openSeats := make(map[string]int)
	for _, providerID := range e.providerOrder {
		p := e.providers[providerID]
		matching[providerID] = p.Held()
		if open := p.Capacity - len(p.held); open > 0 {
			openSeats[providerID] = open
		}
	}

	var unmatched []string
	for _, clientID := range e.clientOrder {
		if e.clients[clientID].free() {
			unmatched = append(unmatched, clientID)
		}
	}

	return Result{
		Matching:         matching,
		Rounds:           e.rounds,
		Proposals:        e.proposals,
		Elapsed:          time.Since(start),
		UnmatchedClients: unmatched,
		OpenSeats:        openSeats,
	}
}

// record appends an event to the round log when logging is enabled.
func (e *Engine) record(kind EventKind, clientID, providerID string) {
	if !e.opts.RoundLog {
		return
	}
	e.log = append(e.log, Event{
		Round:      e.rounds,
		ClientID:   clientID,
		ProviderID: providerID,
		Kind:       kind,
	})
}
