package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	// lexical errors
	synErrUnclosedString = newSyntaxError("unclosed string")
	synErrEmptyString    = newSyntaxError("a string must contain at least one character")

	// syntax errors
	synErrInvalidToken     = newSyntaxError("invalid token")
	synErrNoProduction     = newSyntaxError("a grammar must have at least one production")
	synErrNoProductionName = newSyntaxError("a production name is missing")
	synErrNoColon          = newSyntaxError("the colon must precede alternatives")
	synErrNoSemicolon      = newSyntaxError("the semicolon is missing at the last of an alternative")
	synErrNoDirectiveName  = newSyntaxError("a directive needs a name")
	synErrUnknownDirective = newSyntaxError("unknown directive")
	synErrNoDirectiveParam = newSyntaxError("a directive needs a parameter")
	synErrDupDirective     = newSyntaxError("a directive can appear only once")

	// semantic errors
	synErrStartNotNonTerminal = newSyntaxError("the start symbol must be defined as a non-terminal")
	synErrLiteralConflict     = newSyntaxError("a literal cannot have the same text as a non-terminal")

	// description errors
	synErrInvalidID  = newSyntaxError("an id must be an integer")
	synErrNoLHS      = newSyntaxError("a production needs at least one driver symbol")
	synErrUnknownKey = newSyntaxError("unknown key")
)
