package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"kinolink/internal/catalog"
	"kinolink/internal/logging"
	"kinolink/internal/media"
	"kinolink/internal/services"
)

const (
	filterSearchLimit = 15
	textSearchLimit   = 25
)

// Resolver ranks catalog search results against parsed queries.
type Resolver struct {
	searcher catalog.Searcher
	logger   *slog.Logger
}

// New creates a Resolver. A nil logger disables logging.
func New(searcher catalog.Searcher, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		searcher: searcher,
		logger:   logging.WithComponent(logger, "resolve"),
	}
}

// Best finds the strongest catalog match for the query. A nil candidate with
// a nil error means nothing matched.
func (r *Resolver) Best(ctx context.Context, query media.ParsedQuery) (*media.Candidate, error) {
	ranked, err := r.Rank(ctx, query)
	if err != nil || len(ranked) == 0 {
		return nil, err
	}
	best := ranked[0]
	r.logger.Debug("resolved query",
		logging.String("title", query.Title),
		logging.Int64("catalog_id", best.ID),
		logging.Float64("score", best.Score))
	return &best, nil
}

// Rank returns every unique candidate for the query, strongest first. The
// exact-filter search runs only when a year is known and scores without the
// kind hint; the free-text search always runs and applies the hint. A failed
// search is logged and treated as empty, so a query where every strategy
// errored ranks to no candidates rather than an error.
func (r *Resolver) Rank(ctx context.Context, query media.ParsedQuery) ([]media.Candidate, error) {
	if strings.TrimSpace(query.Title) == "" {
		return nil, services.Wrap(services.ErrBadQuery, "resolve", "rank", "empty title", nil)
	}

	var filtered, general []catalog.Record
	searches := pool.New().WithErrors().WithContext(ctx)
	if query.Year > 0 {
		searches.Go(func(ctx context.Context) error {
			docs, err := r.searcher.FilterSearch(ctx, query.Title, query.Year, filterSearchLimit)
			if err != nil {
				return fmt.Errorf("filter search: %w", err)
			}
			filtered = docs
			return nil
		})
	}
	searches.Go(func(ctx context.Context) error {
		docs, err := r.searcher.TextSearch(ctx, query.Title, textSearchLimit)
		if err != nil {
			return fmt.Errorf("text search: %w", err)
		}
		general = docs
		return nil
	})
	if err := searches.Wait(); err != nil {
		r.logger.Warn("catalog search failed", logging.Error(err))
	}

	candidates := make([]media.Candidate, 0, len(filtered)+len(general))
	for _, rec := range filtered {
		if cand, ok := candidateFor(rec, query, media.KindUnknown); ok {
			candidates = append(candidates, cand)
		}
	}
	for _, rec := range general {
		if cand, ok := candidateFor(rec, query, query.Hint); ok {
			candidates = append(candidates, cand)
		}
	}

	return rankCandidates(candidates), nil
}

func candidateFor(rec catalog.Record, query media.ParsedQuery, hint media.Kind) (media.Candidate, bool) {
	id, ok := rec.CatalogID()
	if !ok {
		return media.Candidate{}, false
	}
	return media.Candidate{
		ID:    id,
		Name:  rec.DisplayName(),
		Kind:  InferKind(rec),
		Year:  rec.Year,
		Score: Score(rec, query, hint),
	}, true
}

// rankCandidates deduplicates by catalog identifier keeping the highest score
// per entry, then sorts strongest first. Ties keep first-seen order.
func rankCandidates(candidates []media.Candidate) []media.Candidate {
	unique := make(map[int64]media.Candidate, len(candidates))
	order := make([]int64, 0, len(candidates))
	for _, cand := range candidates {
		prev, seen := unique[cand.ID]
		if !seen {
			order = append(order, cand.ID)
			unique[cand.ID] = cand
			continue
		}
		if cand.Score > prev.Score {
			unique[cand.ID] = cand
		}
	}

	ranked := make([]media.Candidate, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, unique[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
