package grammar

import (
	"github.com/nihei9/lltool/grammar/symbol"
)

// ComputeNullable returns the set of non-terminals that derive the empty sequence.
func ComputeNullable(g *Grammar[FreeProduction]) (symbol.Set, error) {
	err := checkFreeGrammar(g)
	if err != nil {
		return nil, err
	}
	return genNullableSet(g), nil
}

// genNullableSet counts, for every production, the body symbols not yet known to be nullable.
// Each newly nullable symbol is queued once and decrements the counters of the productions it
// occurs in; a production whose counter drops to zero makes its driver nullable.
func genNullableSet(g *Grammar[FreeProduction]) symbol.Set {
	nullable := symbol.Set{}
	var queue []symbol.ID
	markNullable := func(sym symbol.ID) {
		if nullable.Add(sym) {
			queue = append(queue, sym)
		}
	}

	prods := g.Productions()
	remaining := make([]int, len(prods))
	occurrences := map[symbol.ID][]int{}
	for i, prod := range prods {
		remaining[i] = len(prod.body)
		if prod.isEmpty() {
			markNullable(prod.driver)
			continue
		}
		for _, sym := range prod.body {
			if g.symbols[sym].IsTerminal() {
				continue
			}
			// A symbol occurring twice in a body is counted twice.
			occurrences[sym] = append(occurrences[sym], i)
		}
	}

	for len(queue) > 0 {
		sym := queue[0]
		queue = queue[1:]
		for _, i := range occurrences[sym] {
			remaining[i]--
			if remaining[i] == 0 {
				markNullable(prods[i].driver)
			}
		}
	}

	return nullable
}

// checkFreeGrammar verifies what the analyses assume about a grammar: every referenced id is in
// the vocabulary and every driver is a non-terminal.
func checkFreeGrammar(g *Grammar[FreeProduction]) error {
	for _, prod := range g.Productions() {
		prodID := prod.ID()
		sym, ok := g.symbols[prod.driver]
		if !ok {
			return &SymbolError{
				Cause:      ErrPreconditionViolated,
				Symbol:     &prod.driver,
				Production: &prodID,
				Detail:     "the driver is not in the vocabulary",
			}
		}
		if !sym.IsNonTerminal() {
			return &SymbolError{
				Cause:      ErrPreconditionViolated,
				Symbol:     &prod.driver,
				Production: &prodID,
				Detail:     "the driver is a terminal",
			}
		}
		for _, id := range prod.body {
			if _, ok := g.symbols[id]; ok {
				continue
			}
			id := id
			return &SymbolError{
				Cause:      ErrPreconditionViolated,
				Symbol:     &id,
				Production: &prodID,
				Detail:     "a body symbol is not in the vocabulary",
			}
		}
	}
	return nil
}
