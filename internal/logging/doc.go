// Package logging builds the slog loggers used across kinolink.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for ingestion. Component loggers carry a standardized
// "component" attribute that the console handler promotes into the message
// prefix.
package logging
