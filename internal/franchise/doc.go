// Package franchise assembles the list of related titles for a resolved
// catalog entry.
//
// The primary source is the related-titles block of the detail record. When
// that block is empty the aggregator falls back to a wide text search and
// keeps results whose normalized name contains the base query. Lists are
// sorted by release year with undated entries last, then by collated name.
package franchise
