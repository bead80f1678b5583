package grammar

import (
	"fmt"
	"strings"

	"github.com/nihei9/lltool/grammar/symbol"
)

type GrammarError struct {
	message string
}

func newGrammarError(message string) *GrammarError {
	return &GrammarError{
		message: message,
	}
}

func (e *GrammarError) Error() string {
	return e.message
}

var (
	ErrDuplicateID          = newGrammarError("duplicate id")
	ErrUnknownSymbol        = newGrammarError("unknown symbol")
	ErrPreconditionViolated = newGrammarError("precondition violated")
	ErrNotContextFree       = newGrammarError("a production is not context-free")
)

// SymbolError reports the ids involved in a failed operation. Symbol and Production are nil when
// they don't apply.
type SymbolError struct {
	Cause      *GrammarError
	Symbol     *symbol.ID
	Production *ProductionID
	Detail     string
}

func newSymbolError(cause *GrammarError, sym symbol.ID, prod *ProductionID) *SymbolError {
	return &SymbolError{
		Cause:      cause,
		Symbol:     &sym,
		Production: prod,
	}
}

func newProductionError(cause *GrammarError, prod ProductionID, detail string) *SymbolError {
	return &SymbolError{
		Cause:      cause,
		Production: &prod,
		Detail:     detail,
	}
}

func (e *SymbolError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}
	if e.Symbol != nil {
		fmt.Fprintf(&b, "; symbol: %v", *e.Symbol)
	}
	if e.Production != nil {
		fmt.Fprintf(&b, "; production: %v", *e.Production)
	}
	return b.String()
}

func (e *SymbolError) Unwrap() error {
	return e.Cause
}
