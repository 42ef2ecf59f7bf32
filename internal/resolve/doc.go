// Package resolve picks the catalog entry that best answers a user query.
//
// Two searches run concurrently: an exact-filter lookup when a release year
// is known, and a free-text search. Every returned record is scored against
// the query and the highest score per catalog identifier wins.
package resolve
