// Package fileutil holds the filesystem helpers used by the organizer:
// verified copies, PDF discovery, and target clean-up.
package fileutil
