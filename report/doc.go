// Package report renders matching runs for humans: problem configuration,
// per-round proposal traces, the final matching with its metrics, and
// stability findings.
//
// It is a pure formatting collaborator over the core's output values —
// the result record, the event log and blocking pairs — and never touches
// engine-owned state. Display names come from a Names table and affect
// presentation only; matching correctness depends solely on ids, and any
// id without a name renders as itself.
//
// All functions write to an io.Writer and report only write errors, so
// output can go to a terminal, a buffer in tests, or a file alike.
package report
