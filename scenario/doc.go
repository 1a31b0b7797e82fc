// Package scenario constructs matching instances for the engine: it loads
// and validates TOML instance files, carries classic demonstration
// fixtures, and generates seeded random instances for scale experiments.
//
// This package is the boundary layer the core relies on for input hygiene:
// the engine itself performs no validation (its behavior is undefined on
// negative capacities), so Validate rejects malformed configurations —
// negative capacities, empty ids, duplicate ids within a population —
// before any entity is built.
//
// A TOML instance file looks like:
//
//	name = "marketplace"
//
//	[[providers]]
//	id       = "E1"
//	name     = "Premium Electric"
//	capacity = 2
//	prefers  = ["C2", "C1", "C3", "C4", "C5"]
//
//	[[clients]]
//	id      = "C1"
//	name    = "Client 1"
//	prefers = ["E1", "E2", "E3"]
//
// Preference lists may reference unknown ids; the engine treats such
// entries as automatic refusals, so Validate does not reject them.
//
// Errors (sentinel):
//
//	– ErrNegativeCapacity if any provider capacity is < 0.
//	– ErrEmptyID          if any provider or client id is empty.
//	– ErrDuplicateID      if an id repeats within one population.
package scenario
