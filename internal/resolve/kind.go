package resolve

import (
	"strings"

	"kinolink/internal/catalog"
	"kinolink/internal/media"
)

var filmTypeCodes = map[string]struct{}{
	"movie":      {},
	"video":      {},
	"cartoon":    {},
	"anime":      {},
	"short-film": {},
}

var seriesTypeHints = []string{
	"series", "tv-series", "mini-series", "animated-series", "web-series", "tv-show",
}

// InferKind classifies a record as film or series. A recognized type code is
// authoritative; after that the explicit series flags decide, then the
// presence of series structure. Unclassifiable records count as films.
func InferKind(rec catalog.Record) media.Kind {
	t := strings.TrimSpace(strings.ToLower(rec.Type))
	if _, ok := filmTypeCodes[t]; ok {
		return media.KindFilm
	}
	for _, hint := range seriesTypeHints {
		if strings.Contains(t, hint) {
			return media.KindSeries
		}
	}
	if rec.IsSeries != nil {
		if *rec.IsSeries {
			return media.KindSeries
		}
		return media.KindFilm
	}
	if rec.Serial != nil {
		if *rec.Serial {
			return media.KindSeries
		}
		return media.KindFilm
	}
	if rec.SeriesLength > 0 || len(rec.SeasonsInfo) > 0 {
		return media.KindSeries
	}
	return media.KindFilm
}

// KindFromType classifies a bare type code. Related records carry only the
// type field, so the full flag chain of InferKind does not apply.
func KindFromType(typeValue string) media.Kind {
	if strings.Contains(strings.ToLower(typeValue), "series") {
		return media.KindSeries
	}
	return media.KindFilm
}
