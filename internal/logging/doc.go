// Package logging assembles structured slog loggers and formatting helpers used
// across brokerdocs.
//
// It owns the console and JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers that tag log lines with the run ID and the
// document being processed. NewNop provides a silent logger for tests.
package logging
