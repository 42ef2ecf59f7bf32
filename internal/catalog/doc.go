// Package catalog provides access to the kinopoisk.dev-style movie catalog
// API for searches and detail lookups.
//
// Records arrive loosely typed: every field is optional and identifiers,
// names, and series flags each fall back through a documented priority chain.
// The Searcher interface is the contract the resolution core depends on, so
// tests can substitute stubs.
package catalog
