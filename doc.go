// Package stablematch computes stable many-to-one matchings between two
// finite populations — capacity-bearing providers and single-seat clients —
// using the client-proposing Deferred Acceptance procedure of Gale and
// Shapley, and verifies the result against the blocking-pair definition of
// stability.
//
// What you get:
//
//	• Deferred acceptance: round-based proposal/tentative-acceptance to a
//	  fixed point, client-optimal among all stable matchings
//	• Stability verification: a post-hoc blocking-pair scan over the
//	  produced matching
//	• Structured round logs: proposals, refusals and capacity evictions as
//	  an ordered event stream, free of presentation concerns
//	• Instance tooling: TOML scenario files, boundary validation, seeded
//	  random instance generation and classic demonstration fixtures
//
// Everything is organized under four subpackages:
//
//	matching/ — entities, the deferred acceptance engine, the stability
//	            verifier and the immutable result record
//	scenario/ — instance files (TOML), validation, random generation and
//	            built-in demonstration instances
//	report/   — human-readable rendering of configurations, rounds,
//	            results and stability findings
//	cmd/      — the stablematch command-line driver
//
// Quick sketch: three clients court two providers, each provider keeps the
// best proposals it has seen so far, rejections trigger further proposals,
// and the process stops once no free client has anyone left to ask. The
// outcome is stable: no client-provider pair would jointly abandon it.
//
//	go get github.com/mfleda/stablematch
package stablematch
