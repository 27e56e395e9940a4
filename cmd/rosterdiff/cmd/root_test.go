package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"diff", "dupes", "collisions", "validate", "snapshot", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestWorkbookFlagsRegistered(t *testing.T) {
	for _, flag := range []string{"current", "baseline", "snapshot", "master", "registrations", "report-file", "output", "config"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}
