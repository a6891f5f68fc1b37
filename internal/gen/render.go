package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/birdayz/kunits/internal/table"
	"github.com/birdayz/kunits/internal/unitgraph"
)

type fileData struct {
	Source    string
	Package   string
	Dimension string
	Measure   string
	Hub       string
	Edges     []edgeData
	Units     []unitData
}

type edgeData struct {
	Var  string
	Expr string
}

type unitData struct {
	Name   string
	Symbol string
	Plural string
	Alias  string
	Edge   string
	Chain  string
}

// Render turns a resolved table into formatted Go source. source is the
// table's file name as mentioned in the generated header.
func Render(source string, t *table.Table, g *unitgraph.Graph) ([]byte, error) {
	data := fileData{
		Source:    source,
		Package:   t.Package,
		Dimension: t.Dimension,
		Measure:   t.Measure,
		Hub:       t.Hub,
	}
	if data.Dimension == "" {
		data.Dimension = t.Package
	}

	for _, u := range g.Order() {
		data.Edges = append(data.Edges, edgeData{
			Var:  edgeVar(u.Name),
			Expr: edgeExpr(t, u),
		})
	}

	for _, u := range t.Units {
		data.Units = append(data.Units, unitData{
			Name:   u.Name,
			Symbol: u.Symbol,
			Plural: u.Plural,
			Alias:  u.Alias,
			Edge:   edgeVar(u.Name),
			Chain:  strings.Join(g.Chain(u.Name), ", "),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}

	return src, nil
}

func edgeVar(name string) string {
	return "linear" + name
}

// edgeExpr builds the kunits.Linear expression of u. Edges to an
// intermediary are chained onto the intermediary's own edge.
func edgeExpr(t *table.Table, u table.Unit) string {
	if u.Name == t.Hub {
		return "kunits.Identity()"
	}

	var expr string
	switch {
	case u.Per != nil:
		expr = "kunits.Factor(" + formatFloat(*u.Per) + ").Inverse()"
	case u.Offset != 0:
		factor := 1.0
		if u.Factor != nil {
			factor = *u.Factor
		}
		expr = "kunits.Affine(" + formatFloat(factor) + ", " + formatFloat(u.Offset) + ")"
	default:
		expr = "kunits.Factor(" + formatFloat(*u.Factor) + ")"
	}

	if target := u.Target(t.Hub); target != t.Hub {
		expr += ".Then(" + edgeVar(target) + ")"
	}

	return expr
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
