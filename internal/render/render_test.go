package render_test

import (
	"fmt"
	"strings"
	"testing"

	"kinolink/internal/catalog"
	"kinolink/internal/media"
	"kinolink/internal/render"
)

func TestCaptionFull(t *testing.T) {
	details := &catalog.Record{
		Name:   "Пила",
		Year:   2004,
		Rating: &catalog.Rating{KP: 7.8},
		Genres: []catalog.Genre{{Name: "ужасы"}, {Name: "триллер"}},
	}

	got := render.Caption(details, media.KindFilm, "https://www.sspoisk.ru/film/42/")
	want := strings.Join([]string{
		"Фильм: Пила",
		"Год: 2004",
		"Рейтинг KP: 7.8",
		"Жанры: ужасы, триллер",
		"Смотреть: https://www.sspoisk.ru/film/42/",
	}, "\n")
	if got != want {
		t.Errorf("Caption() = %q, want %q", got, want)
	}
}

func TestCaptionSeriesLabel(t *testing.T) {
	details := &catalog.Record{Name: "Шерлок"}
	got := render.Caption(details, media.KindSeries, "https://www.sspoisk.ru/series/9/")
	if !strings.HasPrefix(got, "Сериал: Шерлок") {
		t.Errorf("Caption() = %q, want series label", got)
	}
}

func TestCaptionSkipsMissingFields(t *testing.T) {
	details := &catalog.Record{Name: "Пила"}
	got := render.Caption(details, media.KindFilm, "link")
	want := "Фильм: Пила\nСмотреть: link"
	if got != want {
		t.Errorf("Caption() = %q, want %q", got, want)
	}
}

func TestCaptionNilDetails(t *testing.T) {
	got := render.Caption(nil, media.KindFilm, "link")
	want := "Фильм: ?\nСмотреть: link"
	if got != want {
		t.Errorf("Caption() = %q, want %q", got, want)
	}
}

func TestFranchiseListEmpty(t *testing.T) {
	if got := render.FranchiseList(nil); got != "" {
		t.Errorf("FranchiseList(nil) = %q, want empty", got)
	}
}

func TestFranchiseListEntries(t *testing.T) {
	items := []media.Candidate{
		{ID: 42, Name: "Пила", Year: 2004, Kind: media.KindFilm},
		{ID: 43, Name: "Пила 2", Kind: media.KindSeries},
	}

	got := render.FranchiseList(items)
	want := strings.Join([]string{
		"Серия/франшиза:",
		"• Пила (2004): https://www.sspoisk.ru/film/42/",
		"• Пила 2: https://www.sspoisk.ru/series/43/",
	}, "\n")
	if got != want {
		t.Errorf("FranchiseList() = %q, want %q", got, want)
	}
}

func TestFranchiseListCapped(t *testing.T) {
	var items []media.Candidate
	for i := 0; i < 20; i++ {
		items = append(items, media.Candidate{
			ID:   int64(i + 1),
			Name: fmt.Sprintf("Часть %d", i+1),
			Year: 2000 + i,
			Kind: media.KindFilm,
		})
	}

	got := render.FranchiseList(items)
	lines := strings.Split(got, "\n")
	if len(lines) != 16 {
		t.Errorf("expected header plus 15 entries, got %d lines", len(lines))
	}
}
