// Package media defines the shared vocabulary for catalog entries: the
// film/series kind, the Candidate reference produced during resolution, and
// the franchise group ordering rules.
//
// Candidate identity is the catalog identifier; two candidates with the same
// ID refer to the same entry regardless of differing name or year snapshots.
package media
