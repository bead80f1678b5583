package grammar

type Symbol struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
	Kind string `json:"kind" yaml:"kind"`
}

type Production struct {
	ID     int   `json:"id" yaml:"id"`
	Driver []int `json:"driver" yaml:"driver"`
	Body   []int `json:"body" yaml:"body"`
}

type First struct {
	Symbol    int   `json:"symbol" yaml:"symbol"`
	Terminals []int `json:"terminals" yaml:"terminals"`
}

type Dependency struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

type Component struct {
	Number    int   `json:"number" yaml:"number"`
	Members   []int `json:"members" yaml:"members"`
	DependsOn []int `json:"depends_on" yaml:"depends_on"`
	First     []int `json:"first" yaml:"first"`
}

// Report is the result of analyzing a grammar. Symbols are referred to by id; Symbols lists
// their texts and kinds.
type Report struct {
	StartSymbol  *int          `json:"start_symbol,omitempty" yaml:"start_symbol,omitempty"`
	Symbols      []*Symbol     `json:"symbols" yaml:"symbols"`
	Productions  []*Production `json:"productions" yaml:"productions"`
	Nullable     []int         `json:"nullable" yaml:"nullable"`
	First        []*First      `json:"first" yaml:"first"`
	Dependencies []*Dependency `json:"dependencies" yaml:"dependencies"`
	Components   []*Component  `json:"components" yaml:"components"`
}

// SymbolByID returns the symbol having id.
func (r *Report) SymbolByID(id int) (*Symbol, bool) {
	for _, sym := range r.Symbols {
		if sym.ID == id {
			return sym, true
		}
	}
	return nil, false
}
