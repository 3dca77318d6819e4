package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/changeling/pkg/config"
	"github.com/pseudomuto/changeling/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// runCommand executes a command the way the app would, capturing its output.
func runCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Before: command.Before,
		Action: command.Action,
		Writer: &buf,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))

	return buf.String(), err
}

func writeChangelog(t *testing.T, name, src string) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(t, os.WriteFile(path, []byte(src), consts.ModeFile))
}

func TestCompileCommand_RequiresChangelog(t *testing.T) {
	command := compile(compileParams{Config: nil})

	_, err := runCommand(t, command)
	require.Error(t, err)
	require.Contains(t, err.Error(), "changeling.yaml not found")
}

func TestCompileCommand_Stdout(t *testing.T) {
	writeChangelog(t, "changelog.changelog", `databaseChangeLog {
		changeSet(id: '1', author: 'amy') {
			createTable(tableName: 'users') {
				column(name: 'id', type: 'bigint')
			}
		}
	}`)

	command := compile(compileParams{Config: nil})

	output, err := runCommand(t, command, "changelog.changelog")
	require.NoError(t, err)
	require.Contains(t, output, "id: \"1\"")
	require.Contains(t, output, "author: amy")
	require.Contains(t, output, "createTable:")
	require.Contains(t, output, "tableName: users")
	require.Contains(t, output, "runInTransaction: true")
}

func TestCompileCommand_ConfigEntrypoint(t *testing.T) {
	writeChangelog(t, "db/main.changelog", `databaseChangeLog {
		changeSet(id: '1', author: 'amy') {
			dropTable(tableName: '${table.name}')
		}
	}`)

	cfg := &config.Config{
		Changelog:  "db/main.changelog",
		Parameters: map[string]any{"table.name": "users"},
	}

	output, err := runCommand(t, compile(compileParams{Config: cfg}))
	require.NoError(t, err)
	require.Contains(t, output, "tableName: users")
}

func TestCompileCommand_ParamFlagOverridesConfig(t *testing.T) {
	writeChangelog(t, "changelog.changelog", `databaseChangeLog {
		changeSet(id: '1', author: 'amy') {
			dropTable(tableName: '${table.name}')
		}
	}`)

	cfg := &config.Config{
		Changelog:  "changelog.changelog",
		Parameters: map[string]any{"table.name": "users"},
	}

	output, err := runCommand(t, compile(compileParams{Config: cfg}), "--param", "table.name=accounts")
	require.NoError(t, err)
	require.Contains(t, output, "tableName: accounts")
}

func TestCompileCommand_OutputFile(t *testing.T) {
	writeChangelog(t, "changelog.changelog", `databaseChangeLog {
		changeSet(id: '1', author: 'amy') {}
	}`)

	_, err := runCommand(t, compile(compileParams{Config: nil}), "-o", "document.yaml", "changelog.changelog")
	require.NoError(t, err)

	data, err := os.ReadFile("document.yaml")
	require.NoError(t, err)
	require.Contains(t, string(data), "author: amy")
}

func TestCompileCommand_RejectsNonChangelogPaths(t *testing.T) {
	writeChangelog(t, "schema.sql", "CREATE TABLE users (id BIGINT);")

	_, err := runCommand(t, compile(compileParams{Config: nil}), "schema.sql")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a changelog script")
}

func TestCompileCommand_CompileErrorsPropagate(t *testing.T) {
	writeChangelog(t, "changelog.changelog", `databaseChangeLog {
		changeSet(id: '1', author: 'amy', alwaysRun: true) {}
	}`)

	_, err := runCommand(t, compile(compileParams{Config: nil}), "changelog.changelog")
	require.Error(t, err)
	require.Contains(t, err.Error(), "runAlways")
}
