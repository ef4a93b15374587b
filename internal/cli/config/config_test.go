package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scpierrors "github.com/scpi-lang/scpi/compiler/errors"
)

func TestLoadNoConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Builtin)
	assert.Empty(t, cfg.Table)

	r, err := cfg.Registry()
	require.NoError(t, err)
	assert.True(t, r.Contains("*idn"))
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	content := `instrument: keithley-6485
builtin: true
table:
  - expression: "SOURce:FREQuency[:CW]"
    type: float
    access: rw
    doc: source frequency
  - expression: "OUTPut[:STATe]"
    type: bool
    access: rw
    doc: output enable
  - expression: "FETCh"
    type: float-array
    access: ro
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scpi.yml"), []byte(content), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "keithley-6485", cfg.Instrument)
	require.Len(t, cfg.Table, 3)

	r, err := cfg.Registry()
	require.NoError(t, err)

	entry, err := r.Lookup("sour:freq")
	require.NoError(t, err)
	assert.Equal(t, "SOUR:FREQ", entry.Min)
	assert.True(t, entry.Command.CanQuery())
	assert.True(t, entry.Command.CanWrite())

	entry, err = r.Lookup("outp")
	require.NoError(t, err)
	assert.Equal(t, "output enable", entry.Command.Doc)

	entry, err = r.Lookup("FETC")
	require.NoError(t, err)
	assert.True(t, entry.Command.CanQuery())
	assert.False(t, entry.Command.CanWrite())

	// Built-in set still present.
	assert.True(t, r.Contains("*rst"))
}

func TestLoadWithoutBuiltin(t *testing.T) {
	dir := t.TempDir()
	content := `builtin: false
table:
  - expression: "*IDN"
    type: idn
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scpi.yml"), []byte(content), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	r, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
	assert.False(t, r.Contains("*rst"))
}

func TestCommandConfigErrors(t *testing.T) {
	_, err := CommandConfig{Expression: "X", Type: "quaternion"}.Command()
	assert.Error(t, err)

	_, err = CommandConfig{Expression: "X", Type: "int", Access: "sideways"}.Command()
	assert.Error(t, err)

	_, err = CommandConfig{Expression: "X", Type: "int-array", Access: "rw"}.Command()
	assert.Error(t, err)
}

func TestRegistryInvalidExpression(t *testing.T) {
	cfg := &Config{Table: []CommandConfig{{Expression: "BAD[:OPEN", Type: "int"}}}
	_, err := cfg.Registry()
	require.Error(t, err)
	assert.True(t, scpierrors.IsInvalidExpression(err))
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
