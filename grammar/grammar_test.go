package grammar

import (
	"errors"
	"testing"

	"github.com/nihei9/lltool/grammar/symbol"
)

func TestGrammarVocabulary(t *testing.T) {
	g := NewGrammar[FreeProduction]()
	err := g.AddNonTerminal(1, "S")
	if err != nil {
		t.Fatal(err)
	}
	err = g.AddTerminal(2, "a")
	if err != nil {
		t.Fatal(err)
	}

	for _, err := range []error{
		g.AddTerminal(1, "x"),
		g.AddNonTerminal(2, "X"),
		g.AddSymbol(symbol.New(1, "Y")),
	} {
		if !errors.Is(err, ErrDuplicateID) {
			t.Fatalf("unexpected error\nwant: %v\ngot: %v", ErrDuplicateID, err)
		}
	}
	sym, ok := g.Symbol(1)
	if !ok || sym.Text() != "S" || !sym.IsNonTerminal() {
		t.Fatalf("a duplicate id must not overwrite the existing symbol: %v", sym)
	}

	if _, ok := g.Symbol(3); ok {
		t.Fatal("an unknown id must not be found")
	}

	if _, ok := g.StartSymbol(); ok {
		t.Fatal("a new grammar has no start symbol")
	}
	err = g.SetStartSymbol(3)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("unexpected error\nwant: %v\ngot: %v", ErrUnknownSymbol, err)
	}
	if _, ok := g.StartSymbol(); ok {
		t.Fatal("a failed call must not set the start symbol")
	}
	err = g.SetStartSymbol(1)
	if err != nil {
		t.Fatal(err)
	}
	if start, ok := g.StartSymbol(); !ok || start != 1 {
		t.Fatalf("unexpected start symbol: %v", start)
	}

	if ts := g.Terminals(); len(ts) != 1 || ts[0] != 2 {
		t.Fatalf("unexpected terminals: %v", ts)
	}
	if nts := g.NonTerminals(); len(nts) != 1 || nts[0] != 1 {
		t.Fatalf("unexpected non-terminals: %v", nts)
	}
}

func TestAddProductionStrict(t *testing.T) {
	g := NewGrammar[FreeProduction]()
	_ = g.AddNonTerminal(1, "S")
	_ = g.AddTerminal(2, "a")

	tests := []struct {
		caption string
		prod    FreeProduction
		unknown symbol.ID
	}{
		{
			caption: "an unknown driver",
			prod:    NewFreeProduction(1, 9, []symbol.ID{2}),
			unknown: 9,
		},
		{
			caption: "an unknown body symbol",
			prod:    NewFreeProduction(1, 1, []symbol.ID{2, 8}),
			unknown: 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			err := g.AddProductionStrict(tt.prod)
			if !errors.Is(err, ErrUnknownSymbol) {
				t.Fatalf("unexpected error\nwant: %v\ngot: %v", ErrUnknownSymbol, err)
			}
			var symErr *SymbolError
			if !errors.As(err, &symErr) || symErr.Symbol == nil || *symErr.Symbol != tt.unknown {
				t.Fatalf("an error must name the unknown symbol %v: %v", tt.unknown, err)
			}
			if _, ok := g.Production(tt.prod.ID()); ok {
				t.Fatal("a rejected production must not be stored")
			}
			if _, ok := g.Symbol(tt.unknown); ok {
				t.Fatal("strict insertion must not register symbols")
			}
		})
	}

	err := g.AddProductionStrict(NewFreeProduction(1, 1, []symbol.ID{2}))
	if err != nil {
		t.Fatal(err)
	}
	err = g.AddProductionStrict(NewFreeProduction(1, 1, nil))
	if err != nil {
		t.Fatal(err)
	}
	prod, ok := g.Production(1)
	if !ok || len(prod.Body()) != 0 {
		t.Fatalf("a production with the same id must be replaced: %v", prod)
	}
	if n := len(g.Productions()); n != 1 {
		t.Fatalf("unexpected number of productions\nwant: 1\ngot: %v", n)
	}
}

func TestAddProduction(t *testing.T) {
	g := NewGrammar[GeneralProduction]()
	_ = g.AddTerminal(1, "a")

	g.AddProduction(NewGeneralProduction(1, []symbol.ID{10, 1}, []symbol.ID{1, 11, 10, 12}))

	tests := []struct {
		id   symbol.ID
		text string
		kind symbol.Kind
	}{
		{
			id:   1,
			text: "a",
			kind: symbol.KindTerminal,
		},
		{
			id:   10,
			text: "NT10",
			kind: symbol.KindNonTerminal,
		},
		{
			id:   11,
			text: "T11",
			kind: symbol.KindTerminal,
		},
		{
			id:   12,
			text: "T12",
			kind: symbol.KindTerminal,
		},
	}
	for _, tt := range tests {
		sym, ok := g.Symbol(tt.id)
		if !ok {
			t.Fatalf("a symbol was not found; id: %v", tt.id)
		}
		if sym.Text() != tt.text || sym.Kind() != tt.kind {
			t.Fatalf("unexpected symbol\nwant: %v %v\ngot: %v %v", tt.text, tt.kind, sym.Text(), sym.Kind())
		}
	}

	driver, ok := g.RenderDriver(1)
	if !ok || driver != "NT10a" {
		t.Fatalf("unexpected driver: %v", driver)
	}
	body, ok := g.RenderBody(1)
	if !ok || body != "aT11NT10T12" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAddProductionPrefersNonTerminal(t *testing.T) {
	g := NewGrammar[FreeProduction]()
	g.AddProduction(NewFreeProduction(1, 5, []symbol.ID{5, 6}))
	g.AddProduction(NewFreeProduction(2, 7, []symbol.ID{6, 5}))

	tests := []struct {
		id   symbol.ID
		text string
		kind symbol.Kind
	}{
		{id: 5, text: "NT5", kind: symbol.KindNonTerminal},
		{id: 6, text: "T6", kind: symbol.KindTerminal},
		{id: 7, text: "NT7", kind: symbol.KindNonTerminal},
	}
	for _, tt := range tests {
		sym, ok := g.Symbol(tt.id)
		if !ok {
			t.Fatalf("a symbol was not found; id: %v", tt.id)
		}
		if sym.Text() != tt.text || sym.Kind() != tt.kind {
			t.Fatalf("unexpected symbol\nwant: %v %v\ngot: %v %v", tt.text, tt.kind, sym.Text(), sym.Kind())
		}
	}

	nullable, err := ComputeNullable(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(nullable) != 0 {
		t.Fatalf("unexpected nullable set: %v", nullable)
	}
}

func TestProductionsAreImmutable(t *testing.T) {
	body := []symbol.ID{2, 3}
	prod := NewFreeProduction(1, 1, body)
	body[0] = 9
	if prod.Body()[0] != 2 {
		t.Fatal("a production must not alias the caller's slice")
	}
	prod.Body()[1] = 9
	if prod.Body()[1] != 3 {
		t.Fatal("Body must return a copy")
	}
	if d := prod.Driver(); len(d) != 1 || d[0] != 1 {
		t.Fatalf("the driver of a free production is a single symbol: %v", d)
	}

	driver := []symbol.ID{1, 2}
	gen := NewGeneralProduction(1, driver, nil)
	driver[0] = 9
	if gen.Driver()[0] != 1 {
		t.Fatal("a production must not alias the caller's slice")
	}
}

func TestGrammarString(t *testing.T) {
	g := genTestGrammar(t,
		"S -> a S b",
		"S ->",
		"T -> S",
	)

	expected := `Starting symbol: S
P1: S -> aSb
P2: S -> ε
P3: T -> S
`
	if s := g.String(); s != expected {
		t.Fatalf("unexpected listing\nwant:\n%v\ngot:\n%v", expected, s)
	}

	if _, ok := g.RenderBody(4); ok {
		t.Fatal("an unknown production must not be rendered")
	}
	if _, ok := g.RenderDriver(4); ok {
		t.Fatal("an unknown production must not be rendered")
	}

	g.productions[4] = NewFreeProduction(4, 1, []symbol.ID{99})
	if _, ok := g.RenderBody(4); ok {
		t.Fatal("a body with a dangling id must not be rendered")
	}
	if s := g.String(); s != expected+"P4: S -> ?99\n" {
		t.Fatalf("unexpected listing:\n%v", s)
	}
}

func TestToFree(t *testing.T) {
	newGrammar := func() *Grammar[GeneralProduction] {
		g := NewGrammar[GeneralProduction]()
		_ = g.AddNonTerminal(1, "S")
		_ = g.AddNonTerminal(2, "A")
		_ = g.AddTerminal(3, "a")
		_ = g.SetStartSymbol(1)
		return g
	}

	t.Run("context-free productions are converted", func(t *testing.T) {
		g := newGrammar()
		_ = g.AddProductionStrict(NewGeneralProduction(1, []symbol.ID{1}, []symbol.ID{2, 3}))
		_ = g.AddProductionStrict(NewGeneralProduction(2, []symbol.ID{2}, nil))

		free, err := ToFree(g)
		if err != nil {
			t.Fatal(err)
		}
		if free.String() != g.String() {
			t.Fatalf("a conversion must keep the grammar\nwant:\n%v\ngot:\n%v", g.String(), free.String())
		}
		prod, ok := free.Production(1)
		if !ok || prod.LHS() != 1 {
			t.Fatalf("unexpected production: %v", prod)
		}
	})

	tests := []struct {
		caption string
		driver  []symbol.ID
	}{
		{
			caption: "a driver made of two symbols",
			driver:  []symbol.ID{2, 3},
		},
		{
			caption: "a terminal driver",
			driver:  []symbol.ID{3},
		},
		{
			caption: "an empty driver",
			driver:  []symbol.ID{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := newGrammar()
			_ = g.AddProductionStrict(NewGeneralProduction(7, tt.driver, []symbol.ID{3}))

			_, err := ToFree(g)
			if !errors.Is(err, ErrNotContextFree) {
				t.Fatalf("unexpected error\nwant: %v\ngot: %v", ErrNotContextFree, err)
			}
			var symErr *SymbolError
			if !errors.As(err, &symErr) || symErr.Production == nil || *symErr.Production != 7 {
				t.Fatalf("an error must name the production: %v", err)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	g := genTestGrammar(t,
		"A -> B c",
		"B ->",
		"B -> b",
	)

	a, err := Analyze(g)
	if err != nil {
		t.Fatal(err)
	}

	if s := FormatNullable(g, a.Nullable); s != "Nullable = {B}\n" {
		t.Fatalf("unexpected nullable listing: %v", s)
	}
	expected := `First(A) = {c, b}
First(B) = {b}
`
	if s := FormatFirstSets(g, a.First); s != expected {
		t.Fatalf("unexpected FIRST listing\nwant:\n%v\ngot:\n%v", expected, s)
	}
}
