// Package sslink builds mirror watch links and resolves their redirect
// targets. The final URL path is authoritative for the film/series split, so
// a resolved link can correct a kind guessed from catalog metadata.
package sslink

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kinolink/internal/media"
	"kinolink/internal/services"
)

const (
	filmURLTemplate   = "https://www.sspoisk.ru/film/%d/"
	seriesURLTemplate = "https://www.sspoisk.ru/series/%d/"

	// The mirror serves browser traffic; API-style agents get bounced.
	webUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	webAcceptLanguage = "ru-RU,ru;q=0.9,en;q=0.8"

	defaultTimeout = 20 * time.Second
)

// WatchURL returns the mirror link for a catalog entry. Unknown kinds map to
// the film template.
func WatchURL(id int64, kind media.Kind) string {
	if kind == media.KindSeries {
		return fmt.Sprintf(seriesURLTemplate, id)
	}
	return fmt.Sprintf(filmURLTemplate, id)
}

// KindFromFinalURL reads the kind off a resolved URL path. The guess stands
// when the path names neither section or the URL does not parse.
func KindFromFinalURL(finalURL string, guessed media.Kind) media.Kind {
	parsed, err := url.Parse(finalURL)
	if err != nil {
		return guessed
	}
	path := strings.ToLower(parsed.Path)
	if strings.Contains(path, "/series/") {
		return media.KindSeries
	}
	if strings.Contains(path, "/film/") {
		return media.KindFilm
	}
	return guessed
}

// Resolver follows mirror redirects to find the final watch URL.
type Resolver struct {
	httpClient *http.Client
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.httpClient = client
		}
	}
}

// NewResolver creates a redirect-following Resolver.
func NewResolver(opts ...Option) *Resolver {
	resolver := &Resolver{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(resolver)
	}
	return resolver
}

// FinalURL fetches the link with browser headers, following redirects, and
// returns the URL the chain lands on.
func (r *Resolver) FinalURL(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", services.Wrap(services.ErrUpstream, "sslink", "final url", "build request", err)
	}
	req.Header.Set("User-Agent", webUserAgent)
	req.Header.Set("Accept-Language", webAcceptLanguage)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", services.Wrap(services.ErrUpstream, "sslink", "final url", "redirect fetch failed", err)
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}
