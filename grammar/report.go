package grammar

import (
	"github.com/nihei9/lltool/grammar/symbol"
	spec "github.com/nihei9/lltool/spec/grammar"
)

// GenReport converts a grammar and its analysis into a serializable report.
func GenReport(g *Grammar[FreeProduction], a *Analysis) *spec.Report {
	report := &spec.Report{
		Symbols:      []*spec.Symbol{},
		Productions:  []*spec.Production{},
		Nullable:     toInts(a.Nullable.Sorted()),
		First:        []*spec.First{},
		Dependencies: []*spec.Dependency{},
		Components:   []*spec.Component{},
	}

	if start, ok := g.StartSymbol(); ok {
		n := start.Int()
		report.StartSymbol = &n
	}

	for _, sym := range g.Symbols() {
		report.Symbols = append(report.Symbols, &spec.Symbol{
			ID:   sym.ID().Int(),
			Text: sym.Text(),
			Kind: sym.Kind().String(),
		})
	}

	for _, prod := range g.Productions() {
		report.Productions = append(report.Productions, &spec.Production{
			ID:     prod.ID().Int(),
			Driver: toInts(prod.Driver()),
			Body:   toInts(prod.Body()),
		})
	}

	for _, id := range a.Graph.Nodes() {
		set, ok := a.First.Of(id)
		if !ok {
			continue
		}
		report.First = append(report.First, &spec.First{
			Symbol:    id.Int(),
			Terminals: toInts(set.Sorted()),
		})
	}

	for _, dep := range a.Graph.Edges() {
		report.Dependencies = append(report.Dependencies, &spec.Dependency{
			From: dep.From.Int(),
			To:   dep.To.Int(),
		})
	}

	for _, comp := range a.Condensation.Components {
		deps := make([]int, len(comp.DependsOn))
		copy(deps, comp.DependsOn)
		report.Components = append(report.Components, &spec.Component{
			Number:    comp.Number,
			Members:   toInts(comp.Members),
			DependsOn: deps,
			First:     toInts(a.First[comp.Members[0]].Sorted()),
		})
	}

	return report
}

func toInts(ids []symbol.ID) []int {
	ns := make([]int, len(ids))
	for i, id := range ids {
		ns[i] = id.Int()
	}
	return ns
}
