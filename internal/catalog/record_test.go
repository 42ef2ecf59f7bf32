package catalog

import "testing"

func TestCatalogIDFallbackChain(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		wantID int64
		wantOK bool
	}{
		{"primary id", Record{ID: 1, KpID: 2, KinopoiskID: 3}, 1, true},
		{"kpId fallback", Record{KpID: 2, KinopoiskID: 3}, 2, true},
		{"kinopoiskId fallback", Record{KinopoiskID: 3}, 3, true},
		{"missing", Record{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.record.CatalogID()
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("CatalogID() = (%d, %v), want (%d, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestDisplayNameFallbackChain(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{"primary", Record{Name: "Пила", AlternativeName: "Saw"}, "Пила"},
		{"alternative", Record{AlternativeName: "Saw", EnName: "Saw I"}, "Saw"},
		{"english", Record{EnName: "Saw"}, "Saw"},
		{"placeholder", Record{}, "?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptionalAccessors(t *testing.T) {
	empty := Record{}
	if empty.PosterURL() != "" {
		t.Error("expected empty poster URL")
	}
	if empty.RatingKP() != 0 {
		t.Error("expected zero rating")
	}
	if empty.GenreNames() != nil {
		t.Error("expected nil genres")
	}

	full := Record{
		Poster: &Poster{URL: "https://img.example/p.jpg"},
		Rating: &Rating{KP: 7.8},
		Genres: []Genre{{Name: "ужасы"}, {Name: ""}, {Name: "триллер"}},
	}
	if full.PosterURL() != "https://img.example/p.jpg" {
		t.Errorf("PosterURL() = %q", full.PosterURL())
	}
	if full.RatingKP() != 7.8 {
		t.Errorf("RatingKP() = %v", full.RatingKP())
	}
	genres := full.GenreNames()
	if len(genres) != 2 || genres[0] != "ужасы" || genres[1] != "триллер" {
		t.Errorf("GenreNames() = %v", genres)
	}
}
