// Package document defines the closed sets brokerdocs works with: document
// types, their target directories, and the records passed between the
// extraction, classification and organizer stages.
package document
