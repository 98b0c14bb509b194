// Package language lists the document languages brokerdocs can read and the
// locale facts tied to each: the date marker, the date layout and the x/text
// tag used for case mapping.
package language
