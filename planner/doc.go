// Package planner is the outward surface of the corridor planner: it
// generates maps, solves them at every tolerance level and serves render
// data.
//
// What:
//
//	Generate(ctx, cfg) draws a fresh map from the planner's RNG and builds its
//	two distance fields (visible mines, all mines). Solve(ctx, bundle) runs the
//	width × tolerance scan. Solution.RenderData(t) classifies every cell for
//	tolerance t.
//
// Observability:
//
//	Every call opens an OpenTelemetry span and records metrics through the
//	configured tracer and meter (no-op by default). Outcomes are logged with
//	zap at Debug/Info, degraded generation at Warn. The map's uuid is attached
//	to every log line and span as "map_id".
//
// Concurrency:
//
//	A Planner is safe for concurrent use; the RNG is guarded by a mutex.
//	Bundles and Solutions are immutable once returned.
//
// Errors:
//
//   - ErrNilBundle:        Solve called with a nil bundle.
//   - ErrUnknownTolerance: RenderData asked for a tolerance that was not solved.
//   - mapgen and optimizer validation errors are wrapped and returned as is.
package planner
