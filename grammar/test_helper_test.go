package grammar

import (
	"strings"
	"testing"

	"github.com/nihei9/lltool/grammar/symbol"
)

// genTestGrammar builds a grammar from productions written as `A -> B c`. Symbols starting with an
// upper-case letter are non-terminals. Ids are assigned in order of first appearance, starting
// from 1, and the driver of the first production becomes the start symbol.
func genTestGrammar(t *testing.T, prods ...string) *Grammar[FreeProduction] {
	t.Helper()

	g := NewGrammar[FreeProduction]()
	ids := map[string]symbol.ID{}
	idOf := func(text string) symbol.ID {
		if id, ok := ids[text]; ok {
			return id
		}
		id := symbol.ID(len(ids) + 1)
		ids[text] = id
		err := g.AddSymbol(symbol.New(id, text))
		if err != nil {
			t.Fatalf("failed to add a symbol: %v", err)
		}
		return id
	}

	for i, src := range prods {
		fields := strings.Fields(src)
		if len(fields) < 2 || fields[1] != "->" {
			t.Fatalf("malformed test production: %v", src)
		}
		lhs := idOf(fields[0])
		var rhs []symbol.ID
		for _, text := range fields[2:] {
			rhs = append(rhs, idOf(text))
		}
		err := g.AddProductionStrict(NewFreeProduction(ProductionID(i+1), lhs, rhs))
		if err != nil {
			t.Fatalf("failed to add a production: %v", err)
		}
		if i == 0 {
			err := g.SetStartSymbol(lhs)
			if err != nil {
				t.Fatalf("failed to set the start symbol: %v", err)
			}
		}
	}

	return g
}

type testSymbolGenerator func(text string) symbol.ID

func newTestSymbolGenerator(t *testing.T, g *Grammar[FreeProduction]) testSymbolGenerator {
	texts := map[string]symbol.ID{}
	for _, sym := range g.Symbols() {
		texts[sym.Text()] = sym.ID()
	}
	return func(text string) symbol.ID {
		t.Helper()

		id, ok := texts[text]
		if !ok {
			t.Fatalf("symbol was not found: %v", text)
		}
		return id
	}
}

func genExpectedSet(genSym testSymbolGenerator, texts []string) symbol.Set {
	s := symbol.Set{}
	for _, text := range texts {
		s.Add(genSym(text))
	}
	return s
}

func testSet(t *testing.T, g *Grammar[FreeProduction], caption string, actual, expected symbol.Set) {
	t.Helper()

	if !actual.Equal(expected) {
		t.Fatalf("%v is mismatched\nwant: {%v}\ngot: {%v}", caption, g.joinTexts(expected.Sorted()), g.joinTexts(actual.Sorted()))
	}
}
