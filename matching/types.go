// Package matching defines the entity model and configuration options for
// the Deferred Acceptance engine.
//
// Provider and Client are built once per run configuration via NewProvider
// and NewClient; the Engine exclusively owns and mutates their allocation
// state during Execute. Entities reference each other only by id — there
// are no direct ownership links between the two populations.
package matching

import (
	"errors"
	"math"
)

// ErrBadEventCapacity indicates that WithEventCapacity was given a negative
// value, which is not meaningful for a log pre-allocation hint.
var ErrBadEventCapacity = errors.New("matching: event capacity must be non-negative")

// Provider is the capacity-bearing side of the matching. Identity fields
// (ID, Name, Capacity, Prefs) are fixed at construction; the held list is
// engine-owned and mutated only during Execute.
//
// Precondition: Capacity ≥ 0. Negative capacities are undefined behavior in
// the engine and must be rejected at the boundary before construction.
type Provider struct {
	// ID uniquely identifies the provider within its population.
	ID string

	// Name is display-only; correctness depends solely on ids.
	Name string

	// Capacity is the maximum number of clients held at once (≥ 0).
	Capacity int

	// Prefs lists acceptable client ids, most preferred first. A client id
	// absent from Prefs is unacceptable to this provider.
	Prefs []string

	// rank maps client id → position in Prefs (lower = more preferred).
	// Precomputed once so preference comparisons cost O(1) instead of a
	// list scan per lookup.
	rank map[string]int

	// held is the engine-owned tentative allocation, kept sorted by rank
	// after every acceptance phase; len(held) ≤ Capacity between rounds.
	held []string
}

// NewProvider builds a Provider and precomputes its rank map.
// The prefs slice is retained as-is; callers must not mutate it afterwards.
func NewProvider(id, name string, capacity int, prefs []string) *Provider {
	rank := make(map[string]int, len(prefs))
	for i, clientID := range prefs {
		// First occurrence wins if an id is listed twice.
		if _, ok := rank[clientID]; !ok {
			rank[clientID] = i
		}
	}

	return &Provider{
		ID:       id,
		Name:     name,
		Capacity: capacity,
		Prefs:    prefs,
		rank:     rank,
	}
}

// Held returns a copy of the currently held client ids, ordered from most
// to least preferred. Between rounds (and after Execute returns) its length
// never exceeds Capacity.
func (p *Provider) Held() []string {
	out := make([]string, len(p.held))
	copy(out, p.held)

	return out
}

// acceptable reports whether the client appears in this provider's
// preference list.
func (p *Provider) acceptable(clientID string) bool {
	_, ok := p.rank[clientID]

	return ok
}

// rankOf returns the client's preference rank (lower = more preferred).
// Unknown clients rank worse than any listed candidate; this cannot occur
// during acceptance because pending proposals are pre-filtered to
// acceptable clients.
func (p *Provider) rankOf(clientID string) int {
	if r, ok := p.rank[clientID]; ok {
		return r
	}

	return math.MaxInt
}

// hasOpenSeat reports whether the provider currently holds fewer clients
// than its capacity.
func (p *Provider) hasOpenSeat() bool {
	return len(p.held) < p.Capacity
}

// worstHeld returns the least-preferred currently held client, or false if
// nothing is held. Because held is kept rank-sorted, it is the last entry.
func (p *Provider) worstHeld() (string, bool) {
	if len(p.held) == 0 {
		return "", false
	}

	return p.held[len(p.held)-1], true
}

// Client is the single-seat side of the matching. Identity fields (ID,
// Name, Prefs) are fixed at construction; cursor and allocation are
// engine-owned and reset at the start of every Execute call.
type Client struct {
	// ID uniquely identifies the client within its population. The two id
	// spaces are independent; a client and a provider may share an id.
	ID string

	// Name is display-only.
	Name string

	// Prefs lists acceptable provider ids, most preferred first. A provider
	// absent from Prefs is never proposed to.
	Prefs []string

	// cursor indexes the next provider in Prefs to propose to. It is
	// monotonically non-decreasing within a run, so each acceptable
	// provider is asked at most once.
	cursor int

	// allocatedTo holds the current provider id, or "" while free.
	allocatedTo string
}

// NewClient builds a Client. The prefs slice is retained as-is; callers
// must not mutate it afterwards.
func NewClient(id, name string, prefs []string) *Client {
	return &Client{
		ID:    id,
		Name:  name,
		Prefs: prefs,
	}
}

// Allocation returns the provider id this client is matched to, and false
// if the client is unallocated. Meaningful only after Execute has returned.
func (c *Client) Allocation() (string, bool) {
	return c.allocatedTo, c.allocatedTo != ""
}

// nextProvider advances the cursor and returns the next provider id to
// propose to, or false if the preference list is exhausted.
func (c *Client) nextProvider() (string, bool) {
	if c.cursor >= len(c.Prefs) {
		return "", false
	}
	providerID := c.Prefs[c.cursor]
	c.cursor++

	return providerID, true
}

// free reports whether the client currently has no allocation.
func (c *Client) free() bool {
	return c.allocatedTo == ""
}

// exhausted reports whether the client has no providers left to ask.
func (c *Client) exhausted() bool {
	return c.cursor >= len(c.Prefs)
}

// Options configures an Engine.
//   - RoundLog: if true, record an ordered Event stream during Execute.
//   - EventCapacity: pre-allocation hint for the event log (entries).
type Options struct {
	RoundLog      bool
	EventCapacity int
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithRoundLog enables accumulation of the per-round event log.
// Without it, Execute records nothing and Log returns nil.
func WithRoundLog() Option {
	return func(o *Options) {
		o.RoundLog = true
	}
}

// WithEventCapacity sets the initial capacity of the event log, avoiding
// reallocation on large instances. Implies nothing about RoundLog.
// Must pass a non-negative value; negative values cause ErrBadEventCapacity.
func WithEventCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			// Panic to signal invalid configuration early, as option
			// constructors cannot return errors.
			panic(ErrBadEventCapacity.Error())
		}
		o.EventCapacity = n
	}
}

// DefaultOptions returns the Options an Engine starts from before
// functional overrides: no round log, no pre-allocation.
func DefaultOptions() Options {
	return Options{
		RoundLog:      false,
		EventCapacity: 0,
	}
}
