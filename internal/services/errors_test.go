package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	inner := errors.New("connection refused")
	err := Wrap(ErrTransient, "catalog", "text search", "request failed", inner)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected ErrTransient, got %v", err)
	}
	if !errors.Is(err, inner) {
		t.Fatalf("expected wrapped inner error, got %v", err)
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := Wrap(nil, "catalog", "text search", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected ErrTransient default, got %v", err)
	}
}

func TestWrapDetail(t *testing.T) {
	err := Wrap(ErrUpstream, "sslink", "resolve final url", "redirect fetch failed", nil)
	want := "upstream error: sslink: resolve final url: redirect fetch failed"
	if err.Error() != want {
		t.Errorf("error text = %q, want %q", err.Error(), want)
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := Wrap(ErrUpstream, "", "", "", nil)
	if err.Error() != "upstream error: service failure" {
		t.Errorf("error text = %q", err.Error())
	}
}
