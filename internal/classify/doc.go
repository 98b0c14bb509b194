// Package classify decides the document type of extracted text. All
// indicators are matched in one pass with an Aho-Corasick automaton; when
// several match, the broker's declared type order decides.
package classify
