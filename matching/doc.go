// Package matching implements the client-proposing Deferred Acceptance
// algorithm for the Hospital/Residents problem (many-to-one stable matching)
// together with a blocking-pair stability verifier.
//
// The model has two populations:
//
//   - Provider — capacity-bearing party (the hospital analogue): a unique
//     id, a display name, an integer capacity ≥ 0 and a strict preference
//     order over acceptable client ids. Absence from the list means the
//     client is unacceptable.
//
//   - Client — capacity-1 party seeking a single allocation (the resident
//     analogue): a unique id, a display name and a strict preference order
//     over acceptable provider ids.
//
// The Engine owns both populations for the duration of one Execute call and
// iterates round by round:
//
//  1. Proposal phase — every free client proposes to the next provider on
//     its list (each acceptable provider is asked at most once per run).
//  2. Acceptance phase — every provider that received proposals keeps the
//     capacity-best subset of {currently held ∪ newly proposed}, evicting
//     the rest. Acceptance is tentative ("deferred") until the run ends.
//  3. The run terminates once no free client has an unasked provider left.
//
// Complexity:
//
//	– Time:  O(Σ|prefs|) ≤ O(n·m)  where n = |clients|, m = |providers|
//	   • Each client proposes to each acceptable provider at most once.
//	   • Each acceptance phase sorts at most capacity+proposals candidates.
//	– Space: O(n + m + Σ|prefs|)
//	   • Rank maps are precomputed once per provider at construction time,
//	     giving O(1) preference comparisons during the run.
//
// Guarantees (Gale–Shapley, 1962; Roth–Sotomayor, 1990):
//
//   - The produced matching is stable: no (client, provider) pair exists
//     where the client prefers the provider over its allocation and the
//     provider has a free seat or prefers the client over its worst held
//     client.
//   - Among all stable matchings it is weakly optimal for the proposing
//     (client) side.
//   - The set of under-subscribed providers and the clients they receive is
//     invariant across all stable matchings (rural hospitals theorem).
//
// Input tolerance:
//
//   - A preference entry naming an unknown id is not an error; the proposal
//     is silently refused and the client moves on.
//   - Empty preference lists are valid; such entities are inert.
//   - Negative capacities are a documented precondition violation; reject
//     them at the boundary (see the scenario package) before construction.
//
// Tracing:
//
//   - With WithRoundLog() the engine records an ordered stream of Event
//     values (proposals, refusals, capacity evictions) instead of printing
//     anything itself. The report package renders the stream.
//
// Thread safety:
//
//   - An Engine is single-threaded state; do not share one instance across
//     goroutines. Distinct engines are fully independent.
//
// See VerifyStability for the post-run blocking-pair scan and Result for
// the immutable snapshot returned by Execute.
package matching
