// Package unitgraph resolves the conversion graph of a unit table.
//
// Every unit of a table declares one edge, either to the hub or to another
// unit (its intermediary). The edges form a directed graph that must be a
// tree rooted at the hub: no cycles, and every unit reaches the hub. The
// resolved graph yields the order in which conversion edges can be composed
// and, for each unit, its chain of intermediaries.
package unitgraph

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/birdayz/kunits/internal/table"
)

// MaxChainDepth bounds the number of intermediaries between a unit and its
// hub.
const MaxChainDepth = 8

var (
	ErrCycle       = errors.New("conversion cycle")
	ErrUnreachable = errors.New("unit cannot reach hub")
	ErrTooDeep     = errors.New("conversion chain too deep")
)

// Graph is a resolved conversion graph.
type Graph struct {
	table *table.Table
	g     *simple.DirectedGraph
	hub   int64

	// order lists unit indexes hub first; every unit comes after its
	// intermediary.
	order []int
	// chains[i] lists the units between unit i and the hub, excluding both.
	chains map[int][]string
}

// Resolve builds and checks the graph of t. t must already have passed
// table validation.
func Resolve(t *table.Table) (*Graph, error) {
	hub := t.Index(t.Hub)
	if hub < 0 {
		return nil, fmt.Errorf("%w: hub %s", table.ErrUnknownUnit, t.Hub)
	}

	g := simple.NewDirectedGraph()
	for i := range t.Units {
		g.AddNode(simple.Node(i))
	}

	for i, u := range t.Units {
		if i == hub {
			continue
		}
		to := t.Index(u.Target(t.Hub))
		if to < 0 {
			return nil, fmt.Errorf("%w: %s converts via %s", table.ErrUnknownUnit, u.Name, u.Via)
		}
		if to == i {
			return nil, fmt.Errorf("%w: %s", table.ErrSelfReference, u.Name)
		}
		g.SetEdge(g.NewEdge(simple.Node(to), simple.Node(i)))
	}

	res := &Graph{
		table:  t,
		g:      g,
		hub:    int64(hub),
		chains: make(map[int][]string, len(t.Units)),
	}

	if err := res.sort(); err != nil {
		return nil, err
	}

	if err := res.resolveChains(); err != nil {
		return nil, err
	}

	return res, nil
}

// sort orders units so that each comes after the unit it converts through.
// Edges point from an intermediary to the units defined through it, and ties
// are broken by table position.
func (r *Graph) sort() error {
	sorted, err := topo.SortStabilized(r.g, nil)
	if err != nil {
		var cycles topo.Unorderable
		if errors.As(err, &cycles) {
			return fmt.Errorf("%w: %s", ErrCycle, r.describeCycles(cycles))
		}
		return err
	}

	r.order = make([]int, 0, len(sorted))
	for _, n := range sorted {
		r.order = append(r.order, int(n.ID()))
	}
	return nil
}

func (r *Graph) resolveChains() error {
	hubNode := r.g.Node(r.hub)
	shortest := path.DijkstraFrom(hubNode, r.g)

	for i, u := range r.table.Units {
		if int64(i) == r.hub {
			continue
		}

		to := r.g.Node(int64(i))
		if !topo.PathExistsIn(r.g, hubNode, to) {
			return fmt.Errorf("%w: %s", ErrUnreachable, u.Name)
		}

		nodes, _ := shortest.To(int64(i))
		if len(nodes) < 2 {
			return fmt.Errorf("%w: %s", ErrUnreachable, u.Name)
		}

		inner := nodes[1 : len(nodes)-1]
		if len(inner) > MaxChainDepth {
			return fmt.Errorf("%w: %s passes through %d units, maximum %d",
				ErrTooDeep, u.Name, len(inner), MaxChainDepth)
		}

		// nearest first
		chain := make([]string, 0, len(inner))
		for k := len(inner) - 1; k >= 0; k-- {
			chain = append(chain, r.table.Units[inner[k].ID()].Name)
		}
		r.chains[i] = chain
	}

	return nil
}

func (r *Graph) describeCycles(cycles topo.Unorderable) string {
	var desc string
	for ci, component := range cycles {
		if ci > 0 {
			desc += "; "
		}
		desc += r.describeComponent(component)
	}
	return desc
}

func (r *Graph) describeComponent(nodes []graph.Node) string {
	var desc string
	for i, n := range nodes {
		if i > 0 {
			desc += ", "
		}
		desc += r.table.Units[n.ID()].Name
	}
	return desc
}

// Order returns the units hub first, each after its intermediary.
func (r *Graph) Order() []table.Unit {
	units := make([]table.Unit, 0, len(r.order))
	for _, i := range r.order {
		units = append(units, r.table.Units[i])
	}
	return units
}

// Chain returns the intermediaries between the named unit and the hub,
// nearest first. It is empty for the hub and for units converting directly
// to it.
func (r *Graph) Chain(name string) []string {
	return r.chains[r.table.Index(name)]
}

// Depth returns the length of the longest chain.
func (r *Graph) Depth() int {
	var depth int
	for _, c := range r.chains {
		if len(c) > depth {
			depth = len(c)
		}
	}
	return depth
}
