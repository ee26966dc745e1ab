// Package trace is the structured event log of exprlex.
//
// Tracing is enabled from the command line:
//
//	exprlex tokenize --trace=- --trace-level=detail "1 + 2"
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only failures
//   - LevelPhase: Command and pass boundaries (lex, batch)
//   - LevelDetail: Per-item events in batch runs
//   - LevelDebug: Everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
