package franchise

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"kinolink/internal/catalog"
	"kinolink/internal/logging"
	"kinolink/internal/media"
	"kinolink/internal/resolve"
	"kinolink/internal/textutil"
)

const (
	fallbackSearchLimit = 50
	maxFallbackItems    = 30

	// Undated entries sort after every real release year.
	missingYearKey = 99999
)

// Aggregator collects franchise members for resolved titles.
type Aggregator struct {
	searcher catalog.Searcher
	logger   *slog.Logger
}

// New creates an Aggregator. A nil logger disables logging.
func New(searcher catalog.Searcher, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Aggregator{
		searcher: searcher,
		logger:   logging.WithComponent(logger, "franchise"),
	}
}

// Collect returns the franchise members for the main candidate. Related
// entries from the detail record come first; when they yield nothing beyond
// the main title itself, a wide text search on the base title fills in. The
// result always contains at least the main candidate.
func (a *Aggregator) Collect(ctx context.Context, details *catalog.Record, main media.Candidate, baseTitle string) []media.Candidate {
	items := FromDetails(details, main)
	if len(items) > 1 {
		return items
	}

	fallback, err := a.fallbackSearch(ctx, baseTitle)
	if err != nil {
		a.logger.Warn("franchise fallback search failed", logging.Error(err))
	}
	if len(fallback) > 0 {
		return fallback
	}
	return []media.Candidate{main}
}

// FromDetails builds the franchise list from the related entries of a detail
// record, appending the main candidate when the related list misses it. A nil
// record yields just the main candidate.
func FromDetails(details *catalog.Record, main media.Candidate) []media.Candidate {
	var items []media.Candidate
	if details != nil {
		for _, rel := range details.SequelsAndPrequels {
			if rel.ID <= 0 {
				continue
			}
			items = append(items, media.Candidate{
				ID:   rel.ID,
				Name: textutil.CompactName(rel.Name),
				Kind: resolve.KindFromType(rel.Type),
				Year: rel.Year,
			})
		}
	}

	present := false
	for _, item := range items {
		if item.ID == main.ID {
			present = true
			break
		}
	}
	if !present {
		items = append(items, main)
	}

	sortItems(items)
	return items
}

// fallbackSearch collects franchise members by substring containment: results
// whose normalized name contains the normalized base title.
func (a *Aggregator) fallbackSearch(ctx context.Context, baseTitle string) ([]media.Candidate, error) {
	base := textutil.Normalize(baseTitle)
	if base == "" {
		return nil, nil
	}

	docs, err := a.searcher.TextSearch(ctx, baseTitle, fallbackSearchLimit)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(docs))
	var items []media.Candidate
	for _, rec := range docs {
		id, ok := rec.CatalogID()
		if !ok {
			continue
		}
		name := rec.DisplayName()
		if !strings.Contains(textutil.Normalize(name), base) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		items = append(items, media.Candidate{
			ID:   id,
			Name: textutil.CompactName(name),
			Kind: resolve.InferKind(rec),
			Year: rec.Year,
		})
	}

	sortItems(items)
	if len(items) > maxFallbackItems {
		items = items[:maxFallbackItems]
	}
	return items, nil
}

func sortItems(items []media.Candidate) {
	coll := collate.New(language.Russian)
	sort.SliceStable(items, func(i, j int) bool {
		yi, yj := yearKey(items[i].Year), yearKey(items[j].Year)
		if yi != yj {
			return yi < yj
		}
		return coll.CompareString(textutil.Normalize(items[i].Name), textutil.Normalize(items[j].Name)) < 0
	})
}

func yearKey(year int) int {
	if year <= 0 {
		return missingYearKey
	}
	return year
}
