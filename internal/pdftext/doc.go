// Package pdftext extracts plain text from the first pages of broker PDFs.
// Trade confirmations and payout notices carry every fact the classifier
// needs on page one, so a single page is read by default.
package pdftext
