// Package broker holds the table of supported brokers. Adding a broker means
// adding an entry here and its indicators to the translation files.
package broker
