// Package extract finds transaction dates and asset codes in document text
// with fixed patterns. Literal markers such as "ISIN:" and "DATUM" are matched
// case-sensitively.
package extract
