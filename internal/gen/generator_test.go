package gen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/go-logr/logr/testr"

	"github.com/birdayz/kunits/internal/table"
	"github.com/birdayz/kunits/internal/unitgraph"
)

func writeTable(t *testing.T, dir, name, src string) string {
	t.Helper()
	assert.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestGeneratorRun(t *testing.T) {
	root := t.TempDir()
	lengthPath := writeTable(t, filepath.Join(root, "length"), "units.yaml", lengthTable)
	tempPath := writeTable(t, filepath.Join(root, "temperature"), "units.yaml", temperatureTable)

	g := New(WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 2})), WithConcurrency(2))
	err := g.Run(context.Background(), Job{Table: lengthPath}, Job{Table: tempPath})
	assert.NoError(t, err)

	for _, dir := range []string{"length", "temperature"} {
		out, err := os.ReadFile(filepath.Join(root, dir, DefaultOutput))
		assert.NoError(t, err)
		names := declared(t, string(out))
		assert.True(t, names["Units"])
	}
}

func TestGeneratorExplicitOutput(t *testing.T) {
	root := t.TempDir()
	path := writeTable(t, root, "length.yaml", lengthTable)
	out := filepath.Join(root, "length_units.go")

	err := New().Run(context.Background(), Job{Table: path, Output: out})
	assert.NoError(t, err)

	src, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(src), "// Code generated by kunitgen from length.yaml. DO NOT EDIT.")

	_, err = os.Stat(filepath.Join(root, DefaultOutput))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestGeneratorDryRun(t *testing.T) {
	root := t.TempDir()
	path := writeTable(t, root, "units.yaml", lengthTable)

	err := New(WithDryRun(true), WithLogger(testr.New(t))).Run(context.Background(), Job{Table: path})
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, DefaultOutput))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestGeneratorErrors(t *testing.T) {
	root := t.TempDir()

	t.Run("InvalidTable", func(t *testing.T) {
		path := writeTable(t, root, "invalid.yaml", "package: length\nmeasure: Length\nhub: Meter\nunits: []\n")
		err := New().Run(context.Background(), Job{Table: path})
		assert.True(t, errors.Is(err, table.ErrMissingField))
	})

	t.Run("Cycle", func(t *testing.T) {
		path := writeTable(t, root, "cycle.yaml", `
package: length
measure: Length
hub: Meter
units:
  - name: Meter
    symbol: m
  - name: Foot
    symbol: ft
    via: Yard
    per: 3
  - name: Yard
    symbol: yd
    via: Foot
    factor: 3
`)
		err := New().Run(context.Background(), Job{Table: path})
		assert.True(t, errors.Is(err, unitgraph.ErrCycle))
		assert.Contains(t, err.Error(), path)
	})

	t.Run("MissingTable", func(t *testing.T) {
		err := New().Run(context.Background(), Job{Table: filepath.Join(root, "missing.yaml")})
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("Canceled", func(t *testing.T) {
		path := writeTable(t, root, "units.yaml", lengthTable)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := New().Run(ctx, Job{Table: path})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestOptions(t *testing.T) {
	g := New(WithConcurrency(0))
	assert.Equal(t, 4, g.concurrency)

	g = New(WithConcurrency(8), WithDryRun(true))
	assert.Equal(t, 8, g.concurrency)
	assert.True(t, g.dryRun)
}
