// Package testsupport provides fixtures shared by package tests: isolated
// configurations and small but valid PDF files.
package testsupport
