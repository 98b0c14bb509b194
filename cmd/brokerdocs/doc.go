// Package main hosts the brokerdocs CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration, broker and language
// selection, then hands off to internal/organizer for the actual
// classification and copy work. Output meant for people goes through
// go-pretty tables; logs go to stderr so stdout stays parseable for the
// json and csv formats of the plan command.
package main
