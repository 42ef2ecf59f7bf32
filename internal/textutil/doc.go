// Package textutil canonicalizes free-text movie and series queries and
// measures textual closeness between titles.
//
// The primary use cases are:
//   - Parsing a raw user query into a normalized title, an optional release
//     year, and an optional film/series hint
//   - Normalizing display names so differently quoted or cased titles compare
//     equal
//   - Computing a Ratcliff/Obershelp similarity ratio between two titles
//
// Normalization applies Unicode NFKC composition, lowercases, strips
// surrounding quote characters, removes noise words such as «фильм» and
// «сериал», and collapses whitespace. It is idempotent.
package textutil
