// Package table holds the unit tables kunitgen turns into Go code. A table
// lists every unit of one dimension with its label and a single conversion
// edge, either to the hub or to another unit of the table.
package table

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Table is the decoded form of a units.yaml file.
type Table struct {
	// Package is the Go package the generated file belongs to.
	Package string `yaml:"package"`
	// Dimension is a human readable name used in generated comments.
	Dimension string `yaml:"dimension"`
	// Measure names the package's alias of kunits.Measure for the
	// dimension, e.g. Length. Generated methods take it as operand type.
	Measure string `yaml:"measure"`
	// Hub names the unit every conversion passes through.
	Hub   string `yaml:"hub"`
	Units []Unit `yaml:"units"`
}

// Unit is one row of a table.
//
// A unit with Factor f and Via v satisfies 1 unit = f v. A unit with Per p
// satisfies 1 v = p units. Offset turns the edge affine: v = unit*f + offset.
type Unit struct {
	Name   string   `yaml:"name"`
	Symbol string   `yaml:"symbol"`
	Plural string   `yaml:"plural,omitempty"`
	Alias  string   `yaml:"alias,omitempty"`
	Factor *float64 `yaml:"factor,omitempty"`
	Per    *float64 `yaml:"per,omitempty"`
	Offset float64  `yaml:"offset,omitempty"`
	Via    string   `yaml:"via,omitempty"`
}

// Target returns the unit the edge points to.
func (u Unit) Target(hub string) string {
	if u.Via == "" {
		return hub
	}
	return u.Via
}

// HasEdge reports whether the row declares any conversion.
func (u Unit) HasEdge() bool {
	return u.Factor != nil || u.Per != nil || u.Offset != 0 || u.Via != ""
}

// Decode reads a table. Unknown fields are rejected.
func Decode(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidTable)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	return &t, nil
}

// Parse decodes a table held in memory.
func Parse(data []byte) (*Table, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads, decodes and validates the table at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Lookup returns the row named name.
func (t *Table) Lookup(name string) (Unit, bool) {
	for _, u := range t.Units {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}

// Index returns the position of name in Units, or -1.
func (t *Table) Index(name string) int {
	for i, u := range t.Units {
		if u.Name == name {
			return i
		}
	}
	return -1
}
