package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildApp(t *testing.T) {
	app := buildApp()

	assert.Equal(t, "parky-server", app.Name)
	require.NotNil(t, app.Action, "running without a command should serve")

	names := map[string]bool{}
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])

	migrate := app.Command("migrate")
	require.NotNil(t, migrate)
	var subcommands []string
	for _, sub := range migrate.Subcommands {
		subcommands = append(subcommands, sub.Name)
	}
	assert.ElementsMatch(t, []string{"up", "down", "status", "version", "reset", "create"}, subcommands)
}

func TestMigrateCreateRequiresName(t *testing.T) {
	app := buildApp()

	err := app.Run([]string{"parky-server", "migrate", "create"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration name is required")
}
