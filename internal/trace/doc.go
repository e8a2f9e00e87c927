// Package trace is lexiscope's event log.
//
// Commands, analysis stages, files and individual diagnostics open spans or
// record points through the Tracer stored in a context. Which of them reach
// the output is decided by the Level:
//
//	off     nothing
//	error   commands and stages, kept in memory and dumped only on failure
//	phase   commands and stages
//	detail  plus one span per file
//	debug   plus one point per diagnostic
//
// Typical use:
//
//	ctx = trace.WithTracer(ctx, tr)
//	ctx, span := trace.Start(ctx, trace.ScopePass, "syntactic")
//	defer span.End("")
//
// Recorders: Stream writes text or NDJSON as events arrive, Ring keeps the
// last N events, Open combines them according to a Config.
package trace
