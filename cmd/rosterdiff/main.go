// Package main provides the entry point for the rosterdiff CLI tool.
package main

import "github.com/opsdesk/rosterdiff/cmd/rosterdiff/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
