package grammar

import (
	"github.com/nihei9/lltool/grammar/symbol"
	"gonum.org/v1/gonum/graph/simple"
)

// Dependency is an edge of a dependency graph: FIRST(From) includes FIRST(To).
type Dependency struct {
	From symbol.ID
	To   symbol.ID
}

// DependencyGraph is a directed graph over the non-terminals of a grammar together with the
// terminals each non-terminal contributes to its own FIRST set directly.
type DependencyGraph struct {
	// graph holds every edge except self-loops, which never contribute anything to a FIRST set.
	graph  *simple.DirectedGraph
	nodes  []symbol.ID
	edges  map[symbol.ID]symbol.Set
	direct map[symbol.ID]symbol.Set
}

// BuildDependencyGraph scans each body from the left. A terminal is recorded as a direct
// contribution and ends the scan; a non-terminal adds an edge and ends the scan unless it is
// nullable.
func BuildDependencyGraph(g *Grammar[FreeProduction], nullable symbol.Set) (*DependencyGraph, error) {
	err := checkFreeGrammar(g)
	if err != nil {
		return nil, err
	}
	return buildDependencyGraph(g, nullable), nil
}

// buildDependencyGraph expects g to have passed checkFreeGrammar.
func buildDependencyGraph(g *Grammar[FreeProduction], nullable symbol.Set) *DependencyGraph {
	dg := &DependencyGraph{
		graph:  simple.NewDirectedGraph(),
		nodes:  g.NonTerminals(),
		edges:  map[symbol.ID]symbol.Set{},
		direct: map[symbol.ID]symbol.Set{},
	}
	for _, id := range dg.nodes {
		dg.graph.AddNode(simple.Node(id))
		dg.edges[id] = symbol.Set{}
		dg.direct[id] = symbol.Set{}
	}

	for _, prod := range g.Productions() {
		for _, id := range prod.body {
			if g.symbols[id].IsTerminal() {
				dg.direct[prod.driver].Add(id)
				break
			}
			dg.addEdge(prod.driver, id)
			if !nullable.Contains(id) {
				break
			}
		}
	}

	return dg
}

func (dg *DependencyGraph) addEdge(from, to symbol.ID) {
	if !dg.edges[from].Add(to) {
		return
	}
	if from == to {
		return
	}
	dg.graph.SetEdge(dg.graph.NewEdge(simple.Node(from), simple.Node(to)))
}

// Nodes returns the non-terminals in ascending order.
func (dg *DependencyGraph) Nodes() []symbol.ID {
	return copyIDs(dg.nodes)
}

// DependsOn returns the targets of the edges leaving id in ascending order.
func (dg *DependencyGraph) DependsOn(id symbol.ID) []symbol.ID {
	return dg.edges[id].Sorted()
}

// Direct returns the terminals id contributes to its FIRST set without going through an edge.
func (dg *DependencyGraph) Direct(id symbol.ID) symbol.Set {
	return dg.direct[id].Clone()
}

// Edges returns every distinct edge, self-loops included, ordered by source and then by target.
func (dg *DependencyGraph) Edges() []Dependency {
	var deps []Dependency
	for _, from := range dg.nodes {
		for _, to := range dg.edges[from].Sorted() {
			deps = append(deps, Dependency{
				From: from,
				To:   to,
			})
		}
	}
	return deps
}
