package table

import (
	"fmt"
	"go/token"
	"math"

	"go.uber.org/multierr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MaxUnitsPerTable bounds the size of a single table.
const MaxUnitsPerTable = 256

// Validate checks the table row by row and returns every problem found,
// combined with multierr. It does not look at chains through intermediaries;
// cycles and reachability are the unitgraph package's job.
func (t *Table) Validate() error {
	var err error

	if t.Package == "" {
		err = multierr.Append(err, fmt.Errorf("%w: package", ErrMissingField))
	} else if !token.IsIdentifier(t.Package) {
		err = multierr.Append(err, fmt.Errorf("%w: package %q is not an identifier", ErrInvalidTable, t.Package))
	}

	if t.Measure == "" {
		err = multierr.Append(err, fmt.Errorf("%w: measure", ErrMissingField))
	} else if !token.IsIdentifier(t.Measure) || !token.IsExported(t.Measure) {
		err = multierr.Append(err, fmt.Errorf("%w: measure %q must be an exported identifier", ErrInvalidName, t.Measure))
	}

	if t.Hub == "" {
		err = multierr.Append(err, fmt.Errorf("%w: hub", ErrMissingField))
	}

	if len(t.Units) == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: units", ErrMissingField))
	}

	if len(t.Units) > MaxUnitsPerTable {
		err = multierr.Append(err, fmt.Errorf("%w: %d units exceeds maximum %d",
			ErrInvalidTable, len(t.Units), MaxUnitsPerTable))
	}

	names := make(map[string]int, len(t.Units))
	symbols := make(map[string][]string, len(t.Units))

	for i, u := range t.Units {
		err = multierr.Append(err, t.validateUnit(i, u))

		if u.Name != "" {
			names[u.Name]++
		}
		if u.Alias != "" {
			names[u.Alias]++
		}
		if u.Symbol != "" {
			symbols[u.Symbol] = append(symbols[u.Symbol], u.Name)
		}
	}

	dupNames := maps.Keys(names)
	slices.Sort(dupNames)
	for _, name := range dupNames {
		if names[name] > 1 {
			err = multierr.Append(err, fmt.Errorf("%w: %s declared %d times", ErrDuplicateUnit, name, names[name]))
		}
	}

	dupSymbols := maps.Keys(symbols)
	slices.Sort(dupSymbols)
	for _, sym := range dupSymbols {
		if owners := symbols[sym]; len(owners) > 1 {
			err = multierr.Append(err, fmt.Errorf("%w: %q used by %v", ErrDuplicateSymbol, sym, owners))
		}
	}

	if t.Hub != "" {
		if t.Index(t.Hub) < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: hub %s", ErrUnknownUnit, t.Hub))
		}
	}

	for _, u := range t.Units {
		if u.Via != "" && u.Via != u.Name && t.Index(u.Via) < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %s converts via %s", ErrUnknownUnit, u.Name, u.Via))
		}
	}

	return err
}

func (t *Table) validateUnit(i int, u Unit) error {
	var err error

	if u.Name == "" {
		return fmt.Errorf("%w: name of unit #%d", ErrMissingField, i)
	}

	if !token.IsIdentifier(u.Name) || !token.IsExported(u.Name) {
		err = multierr.Append(err, fmt.Errorf("%w: %q must be an exported identifier", ErrInvalidName, u.Name))
	}

	if u.Alias != "" && (!token.IsIdentifier(u.Alias) || !token.IsExported(u.Alias)) {
		err = multierr.Append(err, fmt.Errorf("%w: alias %q of %s must be an exported identifier", ErrInvalidName, u.Alias, u.Name))
	}

	if u.Symbol == "" {
		err = multierr.Append(err, fmt.Errorf("%w: symbol of %s", ErrMissingField, u.Name))
	}

	if u.Name == t.Hub {
		if u.HasEdge() {
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrHubEdge, u.Name))
		}
		return err
	}

	if u.Via == u.Name {
		err = multierr.Append(err, fmt.Errorf("%w: %s", ErrSelfReference, u.Name))
	}

	if u.Factor != nil && u.Per != nil {
		err = multierr.Append(err, fmt.Errorf("%w: %s sets both factor and per", ErrConflictingEdges, u.Name))
	}

	if u.Per != nil && u.Offset != 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %s sets both per and offset", ErrConflictingEdges, u.Name))
	}

	if u.Factor == nil && u.Per == nil && u.Offset == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %s declares no factor, per or offset", ErrInvalidEdge, u.Name))
	}

	err = multierr.Append(err, checkScale(u.Name, "factor", u.Factor))
	err = multierr.Append(err, checkScale(u.Name, "per", u.Per))

	if math.IsNaN(u.Offset) || math.IsInf(u.Offset, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: %s offset must be finite", ErrInvalidEdge, u.Name))
	}

	return err
}

func checkScale(name, field string, v *float64) error {
	if v == nil {
		return nil
	}
	if *v == 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fmt.Errorf("%w: %s %s must be finite and non-zero, got %v", ErrInvalidEdge, name, field, *v)
	}
	return nil
}
