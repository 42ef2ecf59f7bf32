package main

import (
	"net/http"
	"strconv"
	"time"

	"kinolink/internal/catalog"
	"kinolink/internal/config"
	"kinolink/internal/sslink"
)

func loadConfig(path string) (*config.Config, error) {
	cfg, _, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func newCatalogClient(cfg *config.Config) (*catalog.Client, error) {
	httpClient := &http.Client{Timeout: time.Duration(cfg.Catalog.RequestTimeout) * time.Second}
	return catalog.New(cfg.Catalog.APIKey, cfg.Catalog.BaseURL, catalog.WithHTTPClient(httpClient))
}

func newLinkResolver(cfg *config.Config) *sslink.Resolver {
	httpClient := &http.Client{Timeout: time.Duration(cfg.Mirror.RequestTimeout) * time.Second}
	return sslink.NewResolver(sslink.WithHTTPClient(httpClient))
}

func formatYear(year int) string {
	if year <= 0 {
		return "-"
	}
	return strconv.Itoa(year)
}
