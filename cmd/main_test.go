package main

import (
	"testing"

	"github.com/lshigami/examdesk/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestAppGraphResolves(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Database.Driver = "sqlite"
	cfg.Database.Path = ":memory:"

	assert.NoError(t, fx.ValidateApp(appOptions(cfg)))
}

func TestRootCommand(t *testing.T) {
	root := rootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)
	assert.NotNil(t, root.RunE, "serve is the default command")

	envFile, err := root.PersistentFlags().GetString("env-file")
	require.NoError(t, err)
	assert.Equal(t, ".env", envFile)
}
