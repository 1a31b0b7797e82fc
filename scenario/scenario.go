package scenario

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/mfleda/stablematch/matching"
)

// Sentinel errors returned by Validate.
var (
	// ErrNegativeCapacity indicates a provider with capacity < 0, which is
	// undefined behavior inside the engine and must never reach it.
	ErrNegativeCapacity = errors.New("scenario: provider capacity must be non-negative")

	// ErrEmptyID indicates a provider or client with an empty id.
	ErrEmptyID = errors.New("scenario: entity id must not be empty")

	// ErrDuplicateID indicates an id that occurs twice within the same
	// population. The provider and client id spaces are independent, so a
	// shared id across the two populations is not an error.
	ErrDuplicateID = errors.New("scenario: duplicate entity id")
)

// ProviderSpec is the file-level description of one provider.
type ProviderSpec struct {
	ID       string   `toml:"id"`
	Name     string   `toml:"name"`
	Capacity int      `toml:"capacity"`
	Prefers  []string `toml:"prefers"`
}

// ClientSpec is the file-level description of one client.
type ClientSpec struct {
	ID      string   `toml:"id"`
	Name    string   `toml:"name"`
	Prefers []string `toml:"prefers"`
}

// Scenario is a complete matching instance: two ordered populations with
// ranked preference lists. Order matters — the engine iterates clients in
// the order given here, which fixes round counts and the event log.
type Scenario struct {
	Name      string         `toml:"name"`
	Providers []ProviderSpec `toml:"providers"`
	Clients   []ClientSpec   `toml:"clients"`
}

// Load reads and validates a TOML instance file.
func Load(path string) (*Scenario, error) {
	var s Scenario
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Decode reads and validates a TOML instance from r.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the boundary invariants the engine itself does not:
// non-negative capacities, non-empty ids, no duplicate ids within a
// population. Unknown ids inside preference lists are deliberately not
// checked — the engine degrades them to refusals.
func (s *Scenario) Validate() error {
	providerIDs := make(map[string]struct{}, len(s.Providers))
	for _, p := range s.Providers {
		if p.ID == "" {
			return fmt.Errorf("%w: provider %q", ErrEmptyID, p.Name)
		}
		if p.Capacity < 0 {
			return fmt.Errorf("%w: provider %s has capacity %d", ErrNegativeCapacity, p.ID, p.Capacity)
		}
		if _, seen := providerIDs[p.ID]; seen {
			return fmt.Errorf("%w: provider %s", ErrDuplicateID, p.ID)
		}
		providerIDs[p.ID] = struct{}{}
	}

	clientIDs := make(map[string]struct{}, len(s.Clients))
	for _, c := range s.Clients {
		if c.ID == "" {
			return fmt.Errorf("%w: client %q", ErrEmptyID, c.Name)
		}
		if _, seen := clientIDs[c.ID]; seen {
			return fmt.Errorf("%w: client %s", ErrDuplicateID, c.ID)
		}
		clientIDs[c.ID] = struct{}{}
	}

	return nil
}

// Build constructs the engine entities in scenario order. Call Validate
// first (Load and Decode already do).
func (s *Scenario) Build() ([]*matching.Provider, []*matching.Client) {
	providers := make([]*matching.Provider, len(s.Providers))
	for i, p := range s.Providers {
		providers[i] = matching.NewProvider(p.ID, p.Name, p.Capacity, p.Prefers)
	}
	clients := make([]*matching.Client, len(s.Clients))
	for i, c := range s.Clients {
		clients[i] = matching.NewClient(c.ID, c.Name, c.Prefers)
	}

	return providers, clients
}

// Names returns the id → display-name table for both populations, for use
// by the report package. Entities without a name fall back to their id at
// render time.
func (s *Scenario) Names() map[string]string {
	names := make(map[string]string, len(s.Providers)+len(s.Clients))
	for _, p := range s.Providers {
		names[p.ID] = p.Name
	}
	for _, c := range s.Clients {
		names[c.ID] = c.Name
	}

	return names
}
