package textutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"kinolink/internal/media"
)

// yearPattern matches 4-digit year tokens in the 1900-2100 range.
var yearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2}|2100)\b`)

var spacePattern = regexp.MustCompile(`\s+`)

const quoteCutset = "«»‹›\"'“”„‘’"

// noiseWords are whole words meaning movie/film/series that carry no title
// information. "tv series" is handled as a two-word phrase separately.
var noiseWords = map[string]struct{}{
	"фильм":  {},
	"кино":   {},
	"сериал": {},
	"series": {},
	"movie":  {},
}

// Normalize canonicalizes a title for comparison: NFKC composition,
// lowercasing, quote stripping, noise-word removal, whitespace collapsing.
// Returns the empty string when nothing meaningful remains.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = strings.Trim(s, quoteCutset)
	s = dropNoiseWords(s)
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ParseQuery extracts an optional kind hint and the last in-range year token
// from the raw query, then normalizes the remaining text. An empty Title in
// the result means the query could not be understood.
func ParseQuery(raw string) media.ParsedQuery {
	q := strings.TrimSpace(raw)

	hint := media.KindUnknown
	if containsWord(q, "сериал") {
		hint = media.KindSeries
	}
	if hint == media.KindUnknown && containsWord(q, "фильм") {
		hint = media.KindFilm
	}

	year := 0
	if matches := yearPattern.FindAllString(q, -1); len(matches) > 0 {
		year, _ = strconv.Atoi(matches[len(matches)-1])
		q = yearPattern.ReplaceAllString(q, " ")
	}

	return media.ParsedQuery{Title: Normalize(q), Year: year, Hint: hint}
}

// CompactName collapses internal whitespace runs so names render as a single
// tidy line. Empty input becomes "?".
func CompactName(name string) string {
	name = strings.TrimSpace(spacePattern.ReplaceAllString(name, " "))
	if name == "" {
		return "?"
	}
	return name
}

func dropNoiseWords(s string) string {
	fields := strings.Fields(s)
	kept := make([]string, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		word := trimWord(fields[i])
		if word == "tv" && i+1 < len(fields) && trimWord(fields[i+1]) == "series" {
			i++
			continue
		}
		if _, ok := noiseWords[word]; ok {
			continue
		}
		kept = append(kept, fields[i])
	}
	return strings.Join(kept, " ")
}

// containsWord reports a case-insensitive whole-word match. Word boundaries
// are any non-letter, non-digit runes, so Cyrillic words match correctly.
func containsWord(s, word string) bool {
	for _, field := range splitWords(strings.ToLower(s)) {
		if field == word {
			return true
		}
	}
	return false
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func trimWord(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
