// Package services defines shared utilities consumed by the organizer and the
// CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs and document paths for logging.
//   - Structured error markers plus the Wrap helper that separate fatal
//     configuration and filesystem failures from per-document skips.
package services
