package resolve_test

import (
	"testing"

	"kinolink/internal/catalog"
	"kinolink/internal/media"
	"kinolink/internal/resolve"
)

func boolPtr(v bool) *bool { return &v }

func TestInferKind(t *testing.T) {
	tests := []struct {
		name   string
		record catalog.Record
		want   media.Kind
	}{
		{"movie code", catalog.Record{Type: "movie"}, media.KindFilm},
		{"cartoon code", catalog.Record{Type: "cartoon"}, media.KindFilm},
		{"anime code", catalog.Record{Type: "anime"}, media.KindFilm},
		{"short film code", catalog.Record{Type: "short-film"}, media.KindFilm},
		{"plain series", catalog.Record{Type: "tv-series"}, media.KindSeries},
		{"animated series", catalog.Record{Type: "animated-series"}, media.KindSeries},
		{"uppercase code", catalog.Record{Type: " MOVIE "}, media.KindFilm},
		{"isSeries true", catalog.Record{IsSeries: boolPtr(true)}, media.KindSeries},
		{"isSeries false", catalog.Record{IsSeries: boolPtr(false)}, media.KindFilm},
		{"isSeries false beats serial", catalog.Record{IsSeries: boolPtr(false), Serial: boolPtr(true)}, media.KindFilm},
		{"serial true", catalog.Record{Serial: boolPtr(true)}, media.KindSeries},
		{"series length", catalog.Record{SeriesLength: 45}, media.KindSeries},
		{"seasons info", catalog.Record{SeasonsInfo: []catalog.SeasonInfo{{Number: 1}}}, media.KindSeries},
		{"empty record", catalog.Record{}, media.KindFilm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolve.InferKind(tt.record); got != tt.want {
				t.Errorf("InferKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindFromType(t *testing.T) {
	tests := []struct {
		typeValue string
		want      media.Kind
	}{
		{"tv-series", media.KindSeries},
		{"SERIES", media.KindSeries},
		{"movie", media.KindFilm},
		{"", media.KindFilm},
	}
	for _, tt := range tests {
		if got := resolve.KindFromType(tt.typeValue); got != tt.want {
			t.Errorf("KindFromType(%q) = %v, want %v", tt.typeValue, got, tt.want)
		}
	}
}
