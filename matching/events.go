package matching

// EventKind classifies an entry in the round log.
type EventKind int

const (
	// EventProposed — the client proposed and the provider took the
	// proposal into this round's acceptance phase (tentative; the client
	// may still be evicted in the same round or later).
	EventProposed EventKind = iota

	// EventRefused — the proposal was dead on arrival: the provider id is
	// unknown, or the provider does not consider the client acceptable.
	EventRefused

	// EventEvicted — the client lost the capacity contest during an
	// acceptance phase. Covers both newly proposed clients that did not
	// make the cut and previously held clients displaced by better ones.
	EventEvicted
)

// String returns a short human-readable label for the kind.
func (k EventKind) String() string {
	switch k {
	case EventProposed:
		return "proposed"
	case EventRefused:
		return "refused"
	case EventEvicted:
		return "evicted"
	default:
		return "unknown"
	}
}

// Event is one structured entry of the round log. Events are recorded in
// the order they occur, so the log replays the run exactly.
type Event struct {
	// Round is the 1-based round number the event occurred in.
	Round int

	// ClientID is the proposing (or evicted) client.
	ClientID string

	// ProviderID is the provider the proposal targeted.
	ProviderID string

	// Kind classifies the event.
	Kind EventKind
}
