package spec

import (
	"sort"
	"strconv"

	verr "github.com/nihei9/lltool/error"
	"github.com/nihei9/lltool/grammar"
	"github.com/nihei9/lltool/grammar/symbol"
	spec "github.com/nihei9/lltool/spec/grammar"
)

// DescriptionBuilder assigns ids to the symbols and alternatives of a parsed text grammar. Symbols
// are numbered from 1 in order of first appearance and productions from 1 in source order.
// Names defined on a left-hand side are non-terminals; every other name and every literal is a
// terminal, and a literal with the same text as a terminal name is that terminal.
type DescriptionBuilder struct {
	AST *RootNode
}

func (b *DescriptionBuilder) Build() (*spec.Description, error) {
	nonTerms := map[string]struct{}{}
	for _, prod := range b.AST.Productions {
		nonTerms[prod.LHS] = struct{}{}
	}

	desc := &spec.Description{
		Terminals:    map[string]string{},
		NonTerminals: map[string]string{},
		Productions:  map[string]*spec.ProductionDescription{},
	}
	ids := map[string]int{}
	idOf := func(text string) int {
		if id, ok := ids[text]; ok {
			return id
		}
		id := len(ids) + 1
		ids[text] = id
		if _, ok := nonTerms[text]; ok {
			desc.NonTerminals[strconv.Itoa(id)] = text
		} else {
			desc.Terminals[strconv.Itoa(id)] = text
		}
		return id
	}

	prodID := 1
	for _, prod := range b.AST.Productions {
		lhs := idOf(prod.LHS)
		for _, alt := range prod.RHS {
			rhs := []int{}
			for _, elem := range alt.Elements {
				text := elem.ID
				if elem.Literal != "" {
					if _, ok := nonTerms[elem.Literal]; ok {
						return nil, &verr.SpecError{
							Cause:  synErrLiteralConflict,
							Detail: elem.Literal,
							Row:    elem.Pos.Row,
							Col:    elem.Pos.Col,
						}
					}
					text = elem.Literal
				}
				rhs = append(rhs, idOf(text))
			}
			desc.Productions[strconv.Itoa(prodID)] = &spec.ProductionDescription{
				LHS: []int{lhs},
				RHS: rhs,
			}
			prodID++
		}
	}

	if len(b.AST.Productions) > 0 {
		start := ids[b.AST.Productions[0].LHS]
		desc.StartSymbol = &start
	}
	for _, dir := range b.AST.Directives {
		if dir.Name != "start" {
			continue
		}
		if _, ok := nonTerms[dir.Parameter]; !ok {
			return nil, &verr.SpecError{
				Cause:  synErrStartNotNonTerminal,
				Detail: dir.Parameter,
				Row:    dir.Pos.Row,
				Col:    dir.Pos.Col,
			}
		}
		start := ids[dir.Parameter]
		desc.StartSymbol = &start
	}

	return desc, nil
}

// Build validates a description and turns it into a grammar. Every reference must be declared;
// ids are checked in ascending order so that the first offending id is reported.
func Build(desc *spec.Description) (*grammar.Grammar[grammar.GeneralProduction], error) {
	g := grammar.NewGrammar[grammar.GeneralProduction]()

	terms, err := sortedIDs(desc.Terminals)
	if err != nil {
		return nil, err
	}
	for _, id := range terms {
		err := g.AddTerminal(symbol.ID(id), desc.Terminals[strconv.Itoa(id)])
		if err != nil {
			return nil, err
		}
	}

	nonTerms, err := sortedIDs(desc.NonTerminals)
	if err != nil {
		return nil, err
	}
	for _, id := range nonTerms {
		err := g.AddNonTerminal(symbol.ID(id), desc.NonTerminals[strconv.Itoa(id)])
		if err != nil {
			return nil, err
		}
	}

	prodIDs, err := sortedIDs(desc.Productions)
	if err != nil {
		return nil, err
	}
	for _, id := range prodIDs {
		p := desc.Productions[strconv.Itoa(id)]
		if p == nil || len(p.LHS) == 0 {
			return nil, &verr.SpecError{
				Cause:  synErrNoLHS,
				Detail: "production " + strconv.Itoa(id),
			}
		}
		err := g.AddProductionStrict(grammar.NewGeneralProduction(grammar.ProductionID(id), toIDs(p.LHS), toIDs(p.RHS)))
		if err != nil {
			return nil, err
		}
	}

	if desc.StartSymbol != nil {
		err := g.SetStartSymbol(symbol.ID(*desc.StartSymbol))
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// BuildFree builds a context-free grammar from a description.
func BuildFree(desc *spec.Description) (*grammar.Grammar[grammar.FreeProduction], error) {
	g, err := Build(desc)
	if err != nil {
		return nil, err
	}
	return grammar.ToFree(g)
}

// sortedIDs parses the keys of m as integers. Keys are canonicalized through strconv so that a
// key such as "01" can still be looked up after conversion.
func sortedIDs[V any](m map[string]V) ([]int, error) {
	ids := make([]int, 0, len(m))
	for key := range m {
		id, err := strconv.Atoi(key)
		if err != nil || strconv.Itoa(id) != key {
			return nil, &verr.SpecError{
				Cause:  synErrInvalidID,
				Detail: key,
			}
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func toIDs(ns []int) []symbol.ID {
	ids := make([]symbol.ID, len(ns))
	for i, n := range ns {
		ids[i] = symbol.ID(n)
	}
	return ids
}
