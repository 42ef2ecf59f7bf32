// Package render formats user-facing Russian messages: the title caption and
// the franchise link list.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"kinolink/internal/catalog"
	"kinolink/internal/media"
	"kinolink/internal/sslink"
)

const maxListItems = 15

// Caption builds the summary block for a resolved title: kind label and name,
// then year, rating, and genres when known, then the watch link.
func Caption(details *catalog.Record, kind media.Kind, link string) string {
	var rec catalog.Record
	if details != nil {
		rec = *details
	}

	label := "Фильм"
	if kind == media.KindSeries {
		label = "Сериал"
	}

	lines := []string{fmt.Sprintf("%s: %s", label, rec.DisplayName())}
	if rec.Year > 0 {
		lines = append(lines, fmt.Sprintf("Год: %d", rec.Year))
	}
	if rating := rec.RatingKP(); rating > 0 {
		lines = append(lines, "Рейтинг KP: "+strconv.FormatFloat(rating, 'f', -1, 64))
	}
	if genres := rec.GenreNames(); len(genres) > 0 {
		lines = append(lines, "Жанры: "+strings.Join(genres, ", "))
	}
	lines = append(lines, "Смотреть: "+link)
	return strings.Join(lines, "\n")
}

// FranchiseList renders the bullet list of franchise members, at most
// fifteen entries. An empty slice renders as "".
func FranchiseList(items []media.Candidate) string {
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(items)+1)
	lines = append(lines, "Серия/франшиза:")
	for i, item := range items {
		if i >= maxListItems {
			break
		}
		link := sslink.WatchURL(item.ID, item.Kind)
		if item.Year > 0 {
			lines = append(lines, fmt.Sprintf("• %s (%d): %s", item.Name, item.Year, link))
		} else {
			lines = append(lines, fmt.Sprintf("• %s: %s", item.Name, link))
		}
	}
	return strings.Join(lines, "\n")
}
