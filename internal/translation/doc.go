// Package translation loads the per-language indicator and directory-label
// tables that drive classification and path building.
//
// Files are TOML or YAML with a target_directories table and one
// <broker>.indicators table per broker. Older files with a single top-level
// indicators table, or a payout key instead of dividends, are still accepted.
// Validation reports the first missing key as a MissingKeyError.
package translation
