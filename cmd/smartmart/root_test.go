package main

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand()

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)
}

func TestServeCommand_MigrateFlag(t *testing.T) {
	cmd := newServeCommand()

	flag := cmd.Flags().Lookup("migrate")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestMigrateCommand_RequiresDatabase(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	t.Setenv("DATABASE_URL", "")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"migrate"})
	cmd.SilenceErrors = true

	err := cmd.Execute()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestSourcesAreGofmtClean(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		src, err := os.ReadFile(name)
		require.NoError(t, err, name)

		formatted, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-formatted", name)
	}
}
