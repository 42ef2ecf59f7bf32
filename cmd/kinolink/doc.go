// Package main hosts the kinolink CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves title queries against the catalog,
// inspects franchise aggregation, and scaffolds configuration. Heavy lifting
// lives in the internal packages; commands stay declarative and focus on
// terminal output.
package main
