package scenario

import (
	"fmt"
	"math/rand"
)

// RandomConfig parameterizes random instance generation.
//   - Clients:   number of clients n (ids C0..Cn-1).
//   - Providers: number of providers; 0 means max(3, n/5).
//   - Capacity:  per-provider capacity; 0 means n/providers + 1.
//   - Seed:      PRNG seed; the same seed yields the same instance.
type RandomConfig struct {
	Clients   int
	Providers int
	Capacity  int
	Seed      int64
}

// Random generates a uniformly random instance: every entity ranks the
// full opposite population in shuffled order. Generation is deterministic
// for a given config, so experiments are reproducible.
func Random(cfg RandomConfig) *Scenario {
	providers := cfg.Providers
	if providers <= 0 {
		providers = cfg.Clients / 5
		if providers < 3 {
			providers = 3
		}
	}
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = cfg.Clients/providers + 1
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	clientIDs := make([]string, cfg.Clients)
	for j := range clientIDs {
		clientIDs[j] = fmt.Sprintf("C%d", j)
	}
	providerIDs := make([]string, providers)
	for i := range providerIDs {
		providerIDs[i] = fmt.Sprintf("P%d", i)
	}

	s := &Scenario{
		Name:      fmt.Sprintf("random-n%d-m%d", cfg.Clients, providers),
		Providers: make([]ProviderSpec, providers),
		Clients:   make([]ClientSpec, cfg.Clients),
	}
	for i := range s.Providers {
		s.Providers[i] = ProviderSpec{
			ID:       providerIDs[i],
			Name:     fmt.Sprintf("Provider %d", i),
			Capacity: capacity,
			Prefers:  shuffled(rng, clientIDs),
		}
	}
	for j := range s.Clients {
		s.Clients[j] = ClientSpec{
			ID:      clientIDs[j],
			Name:    fmt.Sprintf("Client %d", j),
			Prefers: shuffled(rng, providerIDs),
		}
	}

	return s
}

// shuffled returns a shuffled copy of ids, leaving the input untouched.
func shuffled(rng *rand.Rand, ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}
