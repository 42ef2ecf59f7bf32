package sslink_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"kinolink/internal/media"
	"kinolink/internal/sslink"
)

func TestWatchURL(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		kind media.Kind
		want string
	}{
		{"film", 42, media.KindFilm, "https://www.sspoisk.ru/film/42/"},
		{"series", 42, media.KindSeries, "https://www.sspoisk.ru/series/42/"},
		{"unknown maps to film", 42, media.KindUnknown, "https://www.sspoisk.ru/film/42/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sslink.WatchURL(tt.id, tt.kind); got != tt.want {
				t.Errorf("WatchURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindFromFinalURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		guessed media.Kind
		want    media.Kind
	}{
		{"series path", "https://www.sspoisk.ru/series/42/", media.KindFilm, media.KindSeries},
		{"film path", "https://www.sspoisk.ru/film/42/", media.KindSeries, media.KindFilm},
		{"uppercase path", "https://www.sspoisk.ru/SERIES/42/", media.KindFilm, media.KindSeries},
		{"unrelated path", "https://www.sspoisk.ru/about", media.KindSeries, media.KindSeries},
		{"unparsable", "http://%зз", media.KindFilm, media.KindFilm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sslink.KindFromFinalURL(tt.url, tt.guessed); got != tt.want {
				t.Errorf("KindFromFinalURL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinalURLFollowsRedirects(t *testing.T) {
	var target string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/film/42/":
			if r.Header.Get("Accept-Language") == "" {
				t.Error("expected Accept-Language header")
			}
			http.Redirect(w, r, target+"/series/42/", http.StatusFound)
		case "/series/42/":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	target = server.URL

	resolver := sslink.NewResolver(sslink.WithHTTPClient(server.Client()))
	final, err := resolver.FinalURL(context.Background(), server.URL+"/film/42/")
	if err != nil {
		t.Fatalf("FinalURL returned error: %v", err)
	}
	if final != server.URL+"/series/42/" {
		t.Errorf("FinalURL() = %q, want %q", final, server.URL+"/series/42/")
	}
	if got := sslink.KindFromFinalURL(final, media.KindFilm); got != media.KindSeries {
		t.Errorf("kind after redirect = %v, want series", got)
	}
}

func TestFinalURLTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	resolver := sslink.NewResolver()
	if _, err := resolver.FinalURL(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for unreachable host")
	}
}
