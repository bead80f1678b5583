package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nihei9/lltool/grammar/symbol"
)

// Epsilon is the text rendered for an empty body.
const Epsilon = "ε"

// Grammar holds a vocabulary, an optional start symbol, and a set of productions of shape P.
//
// A Grammar is not safe for concurrent mutation. Once built, any number of analyses may read it
// concurrently; none of them modifies it.
type Grammar[P Production] struct {
	symbols     map[symbol.ID]*symbol.Symbol
	startSymbol *symbol.ID
	productions map[ProductionID]P
}

func NewGrammar[P Production]() *Grammar[P] {
	return &Grammar[P]{
		symbols:     map[symbol.ID]*symbol.Symbol{},
		productions: map[ProductionID]P{},
	}
}

func (g *Grammar[P]) AddTerminal(id symbol.ID, text string) error {
	return g.AddSymbol(symbol.NewTerminal(id, text))
}

func (g *Grammar[P]) AddNonTerminal(id symbol.ID, text string) error {
	return g.AddSymbol(symbol.NewNonTerminal(id, text))
}

// AddSymbol registers sym. An id can be registered only once.
func (g *Grammar[P]) AddSymbol(sym *symbol.Symbol) error {
	if _, ok := g.symbols[sym.ID()]; ok {
		return newSymbolError(ErrDuplicateID, sym.ID(), nil)
	}
	g.symbols[sym.ID()] = sym
	return nil
}

func (g *Grammar[P]) SetStartSymbol(id symbol.ID) error {
	if _, ok := g.symbols[id]; !ok {
		return newSymbolError(ErrUnknownSymbol, id, nil)
	}
	g.startSymbol = &id
	return nil
}

// AddProductionStrict inserts prod when every symbol it references is in the vocabulary. A
// production already stored under the same id is replaced.
func (g *Grammar[P]) AddProductionStrict(prod P) error {
	for _, id := range prod.Driver() {
		if _, ok := g.symbols[id]; !ok {
			prodID := prod.ID()
			return newSymbolError(ErrUnknownSymbol, id, &prodID)
		}
	}
	for _, id := range prod.Body() {
		if _, ok := g.symbols[id]; !ok {
			prodID := prod.ID()
			return newSymbolError(ErrUnknownSymbol, id, &prodID)
		}
	}
	g.productions[prod.ID()] = prod
	return nil
}

// AddProduction inserts prod, registering a placeholder for every unknown symbol it references.
// Unknown driver symbols become non-terminals named NT<id>; unknown body symbols become terminals
// named T<id>. The driver is examined first, so an unknown id appearing on both sides becomes a
// non-terminal.
func (g *Grammar[P]) AddProduction(prod P) {
	for _, id := range prod.Driver() {
		if _, ok := g.symbols[id]; !ok {
			g.symbols[id] = symbol.NewNonTerminal(id, fmt.Sprintf("NT%v", id))
		}
	}
	for _, id := range prod.Body() {
		if _, ok := g.symbols[id]; !ok {
			g.symbols[id] = symbol.NewTerminal(id, fmt.Sprintf("T%v", id))
		}
	}
	g.productions[prod.ID()] = prod
}

func (g *Grammar[P]) Symbol(id symbol.ID) (*symbol.Symbol, bool) {
	sym, ok := g.symbols[id]
	return sym, ok
}

func (g *Grammar[P]) StartSymbol() (symbol.ID, bool) {
	if g.startSymbol == nil {
		return 0, false
	}
	return *g.startSymbol, true
}

func (g *Grammar[P]) Production(id ProductionID) (P, bool) {
	prod, ok := g.productions[id]
	return prod, ok
}

// Productions returns all productions ordered by id.
func (g *Grammar[P]) Productions() []P {
	prods := make([]P, 0, len(g.productions))
	for _, prod := range g.productions {
		prods = append(prods, prod)
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].ID() < prods[j].ID()
	})
	return prods
}

// Symbols returns the whole vocabulary ordered by id.
func (g *Grammar[P]) Symbols() []*symbol.Symbol {
	syms := make([]*symbol.Symbol, 0, len(g.symbols))
	for _, sym := range g.symbols {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i].ID() < syms[j].ID()
	})
	return syms
}

func (g *Grammar[P]) Terminals() []symbol.ID {
	return g.symbolsOfKind(symbol.KindTerminal)
}

func (g *Grammar[P]) NonTerminals() []symbol.ID {
	return g.symbolsOfKind(symbol.KindNonTerminal)
}

func (g *Grammar[P]) symbolsOfKind(kind symbol.Kind) []symbol.ID {
	var ids []symbol.ID
	for _, sym := range g.Symbols() {
		if sym.Kind() != kind {
			continue
		}
		ids = append(ids, sym.ID())
	}
	return ids
}

// RenderDriver concatenates the texts of the driver symbols of a production.
func (g *Grammar[P]) RenderDriver(id ProductionID) (string, bool) {
	prod, ok := g.productions[id]
	if !ok {
		return "", false
	}
	return g.renderSymbols(prod.Driver())
}

// RenderBody concatenates the texts of the body symbols of a production, or returns Epsilon when
// the body is empty.
func (g *Grammar[P]) RenderBody(id ProductionID) (string, bool) {
	prod, ok := g.productions[id]
	if !ok {
		return "", false
	}
	body := prod.Body()
	if len(body) == 0 {
		return Epsilon, true
	}
	return g.renderSymbols(body)
}

func (g *Grammar[P]) renderSymbols(ids []symbol.ID) (string, bool) {
	var b strings.Builder
	for _, id := range ids {
		sym, ok := g.symbols[id]
		if !ok {
			return "", false
		}
		b.WriteString(sym.Text())
	}
	return b.String(), true
}

// String lists the start symbol and the productions in the form `P<id>: <driver> -> <body>`.
// Dangling ids are shown as `?<id>`.
func (g *Grammar[P]) String() string {
	var b strings.Builder
	if g.startSymbol != nil {
		if sym, ok := g.symbols[*g.startSymbol]; ok {
			fmt.Fprintf(&b, "Starting symbol: %v\n", sym.Text())
		}
	}
	for _, prod := range g.Productions() {
		driver, ok := g.RenderDriver(prod.ID())
		if !ok {
			driver = g.renderLenient(prod.Driver())
		}
		body, ok := g.RenderBody(prod.ID())
		if !ok {
			body = g.renderLenient(prod.Body())
		}
		fmt.Fprintf(&b, "P%v: %v -> %v\n", prod.ID(), driver, body)
	}
	return b.String()
}

func (g *Grammar[P]) renderLenient(ids []symbol.ID) string {
	var b strings.Builder
	for _, id := range ids {
		if sym, ok := g.symbols[id]; ok {
			b.WriteString(sym.Text())
			continue
		}
		fmt.Fprintf(&b, "?%v", id)
	}
	return b.String()
}

// ToFree converts a grammar of general productions into a context-free one. Every driver must be
// exactly one non-terminal.
func ToFree(g *Grammar[GeneralProduction]) (*Grammar[FreeProduction], error) {
	free := NewGrammar[FreeProduction]()
	for id, sym := range g.symbols {
		free.symbols[id] = sym
	}
	if g.startSymbol != nil {
		start := *g.startSymbol
		free.startSymbol = &start
	}
	for _, prod := range g.Productions() {
		driver := prod.Driver()
		if len(driver) != 1 {
			return nil, newProductionError(ErrNotContextFree, prod.ID(), fmt.Sprintf("the driver has %v symbols", len(driver)))
		}
		sym, ok := g.symbols[driver[0]]
		if !ok {
			prodID := prod.ID()
			return nil, newSymbolError(ErrUnknownSymbol, driver[0], &prodID)
		}
		if !sym.IsNonTerminal() {
			return nil, newProductionError(ErrNotContextFree, prod.ID(), fmt.Sprintf("the driver %v is a terminal", sym.Text()))
		}
		free.productions[prod.ID()] = NewFreeProduction(prod.ID(), driver[0], prod.Body())
	}
	return free, nil
}
