package resolve

import (
	"kinolink/internal/catalog"
	"kinolink/internal/media"
	"kinolink/internal/textutil"
)

const (
	similarityWeight  = 2.0
	exactYearBonus    = 2.0
	adjacentYearBonus = 0.5
	kindHintBonus     = 0.6
)

// Score rates how well a record answers the query. Name similarity dominates.
// An exact year match outweighs everything except a perfect title; a year off
// by one and a matching kind hint act as mild boosts.
func Score(rec catalog.Record, query media.ParsedQuery, hint media.Kind) float64 {
	var sim float64
	for _, variant := range rec.NameVariants() {
		if variant == "" {
			continue
		}
		if s := textutil.Similarity(query.Title, variant); s > sim {
			sim = s
		}
	}

	score := sim * similarityWeight
	if query.Year > 0 && rec.Year > 0 {
		switch diff := rec.Year - query.Year; {
		case diff == 0:
			score += exactYearBonus
		case diff == 1 || diff == -1:
			score += adjacentYearBonus
		}
	}
	if hint != media.KindUnknown && InferKind(rec) == hint {
		score += kindHintBonus
	}
	return score
}
