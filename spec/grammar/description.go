package grammar

// Description is the shape of a grammar file. Symbol and production ids are written as strings
// because TOML table keys are strings.
type Description struct {
	StartSymbol  *int                              `toml:"start_symbol" yaml:"start_symbol"`
	Terminals    map[string]string                 `toml:"terminals" yaml:"terminals"`
	NonTerminals map[string]string                 `toml:"non_terminals" yaml:"non_terminals"`
	Productions  map[string]*ProductionDescription `toml:"productions" yaml:"productions"`
}

type ProductionDescription struct {
	LHS []int `toml:"lhs" yaml:"lhs"`
	RHS []int `toml:"rhs" yaml:"rhs"`
}
