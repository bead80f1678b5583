package grammar

import (
	"fmt"
	"sort"

	"github.com/nihei9/lltool/grammar/symbol"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// FirstSets maps every non-terminal to the terminals that can begin a derivation from it.
type FirstSets map[symbol.ID]symbol.Set

func (fst FirstSets) Of(id symbol.ID) (symbol.Set, bool) {
	s, ok := fst[id]
	return s, ok
}

// Component is a strongly connected component of a dependency graph.
type Component struct {
	// Number is the position of the component in the processing order.
	Number    int
	Members   []symbol.ID
	DependsOn []int
}

// Condensation is the DAG of the strongly connected components of a dependency graph. Components
// are listed so that every component comes after all the components it depends on.
type Condensation struct {
	Components  []*Component
	componentOf map[symbol.ID]int
}

// ComponentOf returns the number of the component containing a non-terminal.
func (c *Condensation) ComponentOf(id symbol.ID) (int, bool) {
	n, ok := c.componentOf[id]
	return n, ok
}

// Condense computes the strongly connected components of dg and orders them.
func Condense(dg *DependencyGraph) (*Condensation, error) {
	sccs := topo.TarjanSCC(dg.graph)

	// A component is named after its smallest member so that the order of the components
	// doesn't depend on the iteration order of the graph.
	names := make([]int64, len(sccs))
	members := make([][]symbol.ID, len(sccs))
	nameOf := map[symbol.ID]int64{}
	for i, scc := range sccs {
		ids := make([]symbol.ID, 0, len(scc))
		for _, n := range scc {
			ids = append(ids, symbol.ID(n.ID()))
		}
		symbol.SortIDs(ids)
		members[i] = ids
		names[i] = int64(ids[0])
		for _, id := range ids {
			nameOf[id] = names[i]
		}
	}

	cg := simple.NewDirectedGraph()
	for _, name := range names {
		cg.AddNode(simple.Node(name))
	}
	for _, from := range dg.nodes {
		for to := range dg.edges[from] {
			fromName, toName := nameOf[from], nameOf[to]
			if fromName == toName {
				continue
			}
			cg.SetEdge(cg.NewEdge(simple.Node(fromName), simple.Node(toName)))
		}
	}

	sorted, err := topo.SortStabilized(cg, sortNodesByID)
	if err != nil {
		return nil, fmt.Errorf("the condensation of a dependency graph must be acyclic: %w", err)
	}

	// sorted puts a component before the components it depends on; processing goes the other way.
	numOf := map[int64]int{}
	for i := range sorted {
		numOf[sorted[len(sorted)-1-i].ID()] = i
	}

	cond := &Condensation{
		Components:  make([]*Component, len(sccs)),
		componentOf: map[symbol.ID]int{},
	}
	for i, name := range names {
		num := numOf[name]
		var deps []int
		succ := cg.From(name)
		for succ.Next() {
			deps = append(deps, numOf[succ.Node().ID()])
		}
		sort.Ints(deps)
		cond.Components[num] = &Component{
			Number:    num,
			Members:   members[i],
			DependsOn: deps,
		}
		for _, id := range members[i] {
			cond.componentOf[id] = num
		}
	}

	return cond, nil
}

func sortNodesByID(nodes []graph.Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID() < nodes[j].ID()
	})
}

// propagate resolves the components in order. All members of a component share one FIRST set:
// the union of their direct terminals and the FIRST sets of the components they depend on, which
// are already resolved when the component is reached.
func propagate(dg *DependencyGraph, cond *Condensation) (FirstSets, error) {
	resolved := make([]symbol.Set, len(cond.Components))
	fst := FirstSets{}
	for _, comp := range cond.Components {
		set := symbol.Set{}
		for _, id := range comp.Members {
			set.Merge(dg.direct[id])
		}
		for _, dep := range comp.DependsOn {
			if resolved[dep] == nil {
				return nil, fmt.Errorf("a component was reached before its dependency; component: %v, dependency: %v", comp.Number, dep)
			}
			set.Merge(resolved[dep])
		}
		resolved[comp.Number] = set
		for _, id := range comp.Members {
			fst[id] = set.Clone()
		}
	}
	return fst, nil
}

// ComputeFirstSets returns the FIRST set of every non-terminal of g.
func ComputeFirstSets(g *Grammar[FreeProduction]) (FirstSets, error) {
	a, err := Analyze(g)
	if err != nil {
		return nil, err
	}
	return a.First, nil
}

// Analysis keeps every intermediate result of one run over a grammar.
type Analysis struct {
	Nullable     symbol.Set
	Graph        *DependencyGraph
	Condensation *Condensation
	First        FirstSets
}

// Analyze computes the nullable set and the FIRST sets of g. g is only read.
func Analyze(g *Grammar[FreeProduction]) (*Analysis, error) {
	err := checkFreeGrammar(g)
	if err != nil {
		return nil, err
	}

	nullable := genNullableSet(g)
	dg := buildDependencyGraph(g, nullable)
	cond, err := Condense(dg)
	if err != nil {
		return nil, err
	}
	fst, err := propagate(dg, cond)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Nullable:     nullable,
		Graph:        dg,
		Condensation: cond,
		First:        fst,
	}, nil
}
