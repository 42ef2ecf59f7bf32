package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadQuery marks user input that could not be parsed into a title.
	ErrBadQuery = errors.New("bad query")
	// ErrNoMatch marks a resolution that found no plausible catalog entry.
	// Frequent and expected; never logged as a fault.
	ErrNoMatch = errors.New("no match")
	// ErrUpstream marks a fatal upstream failure that aborts the request.
	ErrUpstream = errors.New("upstream error")
	// ErrTransient marks upstream trouble that callers degrade to empty
	// results instead of propagating.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
