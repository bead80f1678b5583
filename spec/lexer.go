package spec

import (
	"fmt"
	"io"
	"strings"
	"sync"

	verr "github.com/nihei9/lltool/error"
	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type tokenKind string

const (
	tokenKindID              = tokenKind("id")
	tokenKindStringLiteral   = tokenKind("string")
	tokenKindColon           = tokenKind(":")
	tokenKindOr              = tokenKind("|")
	tokenKindSemicolon       = tokenKind(";")
	tokenKindDirectiveMarker = tokenKind("%")
	tokenKindEOF             = tokenKind("eof")
	tokenKindInvalid         = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newIDToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindID,
		text: text,
		pos:  pos,
	}
}

func newStringLiteralToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindStringLiteral,
		text: text,
		pos:  pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind: tokenKindEOF,
		pos:  pos,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

// lexSpec describes the tokens of the text notation. Punctuation is written as code points so
// that none of it is read as a regular-expression operator.
var lexSpec = &mlspec.LexSpec{
	Name: "lltool",
	Entries: []*mlspec.LexEntry{
		{
			Kind:    "white_space",
			Pattern: `[\u{0009}\u{000A}\u{000D}\u{0020}]+`,
		},
		{
			Kind:    "line_comment",
			Pattern: `\u{0023}[^\u{000A}\u{000D}]*`,
		},
		{
			Kind:    "identifier",
			Pattern: `[A-Za-z_][0-9A-Za-z_]*`,
		},
		{
			Kind:    "string_literal",
			Pattern: `\u{0022}[^\u{0022}\u{000A}\u{000D}]*\u{0022}`,
		},
		{
			Kind:    "colon",
			Pattern: `\u{003A}`,
		},
		{
			Kind:    "arrow",
			Pattern: `\u{002D}\u{003E}`,
		},
		{
			Kind:    "or",
			Pattern: `\u{007C}`,
		},
		{
			Kind:    "semicolon",
			Pattern: `\u{003B}`,
		},
		{
			Kind:    "directive_marker",
			Pattern: `\u{0025}`,
		},
	},
}

var (
	compiledLexSpec     *mlspec.CompiledLexSpec
	compiledLexSpecErr  error
	compiledLexSpecOnce sync.Once
)

func compileLexSpec() (*mlspec.CompiledLexSpec, error) {
	compiledLexSpecOnce.Do(func() {
		clspec, err, cErrs := mlcompiler.Compile(lexSpec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if err != nil {
			compiledLexSpecErr = fmt.Errorf("failed to compile the lexical specification: %w; error count: %v", err, len(cErrs))
			return
		}
		compiledLexSpec = clspec
	})
	return compiledLexSpec, compiledLexSpecErr
}

type lexer struct {
	s   *mlspec.CompiledLexSpec
	d   *mldriver.Lexer
	buf *token
}

func newLexer(src io.Reader) (*lexer, error) {
	s, err := compileLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		s: s,
		d: d,
	}, nil
}

func (l *lexer) next() (*token, error) {
	if l.buf != nil {
		tok := l.buf
		l.buf = nil
		return tok, nil
	}
	return l.lexAndSkipWSs()
}

func (l *lexer) lexAndSkipWSs() (*token, error) {
	var tok *mldriver.Token
	var kind string
	for {
		var err error
		tok, err = l.d.Next()
		if err != nil {
			return nil, err
		}
		pos := newPosition(tok.Row+1, tok.Col+1)
		if tok.Invalid {
			text := string(tok.Lexeme)
			if strings.HasPrefix(text, `"`) {
				return nil, &verr.SpecError{
					Cause: synErrUnclosedString,
					Row:   pos.Row,
					Col:   pos.Col,
				}
			}
			return newInvalidToken(text, pos), nil
		}
		if tok.EOF {
			return newEOFToken(pos), nil
		}
		kind = l.s.KindNames[tok.KindID].String()
		switch kind {
		case "white_space":
			continue
		case "line_comment":
			continue
		}

		break
	}

	pos := newPosition(tok.Row+1, tok.Col+1)
	switch kind {
	case "identifier":
		return newIDToken(string(tok.Lexeme), pos), nil
	case "string_literal":
		// Remove the quotes.
		text := string(tok.Lexeme)
		text = text[1 : len(text)-1]
		if text == "" {
			return nil, &verr.SpecError{
				Cause: synErrEmptyString,
				Row:   pos.Row,
				Col:   pos.Col,
			}
		}
		return newStringLiteralToken(text, pos), nil
	case "colon", "arrow":
		return newSymbolToken(tokenKindColon, pos), nil
	case "or":
		return newSymbolToken(tokenKindOr, pos), nil
	case "semicolon":
		return newSymbolToken(tokenKindSemicolon, pos), nil
	case "directive_marker":
		return newSymbolToken(tokenKindDirectiveMarker, pos), nil
	default:
		return newInvalidToken(string(tok.Lexeme), pos), nil
	}
}
