package spec

import (
	"io"

	verr "github.com/nihei9/lltool/error"
)

type RootNode struct {
	Directives  []*DirectiveNode
	Productions []*ProductionNode
}

type DirectiveNode struct {
	Name      string
	Parameter string
	Pos       Position
}

type ProductionNode struct {
	LHS string
	RHS []*AlternativeNode
	Pos Position
}

// AlternativeNode is one right-hand side. No elements means ε.
type AlternativeNode struct {
	Elements []*ElementNode
}

// ElementNode is either a symbol name or a quoted literal.
type ElementNode struct {
	ID      string
	Literal string
	Pos     Position
}

func raiseSyntaxError(pos Position, synErr *SyntaxError) {
	panic(&verr.SpecError{
		Cause: synErr,
		Row:   pos.Row,
		Col:   pos.Col,
	})
}

func raiseSyntaxErrorWithDetail(pos Position, synErr *SyntaxError, detail string) {
	panic(&verr.SpecError{
		Cause:  synErr,
		Detail: detail,
		Row:    pos.Row,
		Col:    pos.Col,
	})
}

// Parse reads a grammar written in the text notation:
//
//	%start expr
//	expr : expr "+" term | term ;
//	term : id | ;
func Parse(src io.Reader) (*RootNode, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
}

func newParser(src io.Reader) (*parser, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex: lex,
	}, nil
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			retErr = err.(error)
			return
		}
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	root := &RootNode{}
	for {
		if dir := p.parseDirective(); dir != nil {
			for _, d := range root.Directives {
				if d.Name == dir.Name {
					raiseSyntaxErrorWithDetail(dir.Pos, synErrDupDirective, dir.Name)
				}
			}
			root.Directives = append(root.Directives, dir)
			continue
		}
		prod := p.parseProduction()
		if prod == nil {
			break
		}
		root.Productions = append(root.Productions, prod)
	}
	if len(root.Productions) == 0 {
		raiseSyntaxError(p.lastTok.pos, synErrNoProduction)
	}
	return root
}

func (p *parser) parseDirective() *DirectiveNode {
	if !p.consume(tokenKindDirectiveMarker) {
		return nil
	}
	pos := p.lastTok.pos
	if !p.consume(tokenKindID) {
		raiseSyntaxError(p.peek().pos, synErrNoDirectiveName)
	}
	name := p.lastTok.text
	if name != "start" {
		raiseSyntaxErrorWithDetail(p.lastTok.pos, synErrUnknownDirective, name)
	}
	if !p.consume(tokenKindID) {
		raiseSyntaxErrorWithDetail(p.peek().pos, synErrNoDirectiveParam, name)
	}
	return &DirectiveNode{
		Name:      name,
		Parameter: p.lastTok.text,
		Pos:       pos,
	}
}

func (p *parser) parseProduction() *ProductionNode {
	if p.consume(tokenKindEOF) {
		return nil
	}
	if !p.consume(tokenKindID) {
		raiseSyntaxError(p.peek().pos, synErrNoProductionName)
	}
	lhs := p.lastTok.text
	pos := p.lastTok.pos
	if !p.consume(tokenKindColon) {
		raiseSyntaxError(p.peek().pos, synErrNoColon)
	}
	alt := p.parseAlternative()
	rhs := []*AlternativeNode{alt}
	for {
		if !p.consume(tokenKindOr) {
			break
		}
		alt := p.parseAlternative()
		rhs = append(rhs, alt)
	}
	if !p.consume(tokenKindSemicolon) {
		raiseSyntaxError(p.peek().pos, synErrNoSemicolon)
	}
	return &ProductionNode{
		LHS: lhs,
		RHS: rhs,
		Pos: pos,
	}
}

func (p *parser) parseAlternative() *AlternativeNode {
	elems := []*ElementNode{}
	for {
		elem := p.parseElement()
		if elem == nil {
			break
		}
		elems = append(elems, elem)
	}
	return &AlternativeNode{
		Elements: elems,
	}
}

func (p *parser) parseElement() *ElementNode {
	switch {
	case p.consume(tokenKindID):
		return &ElementNode{
			ID:  p.lastTok.text,
			Pos: p.lastTok.pos,
		}
	case p.consume(tokenKindStringLiteral):
		return &ElementNode{
			Literal: p.lastTok.text,
			Pos:     p.lastTok.pos,
		}
	}
	return nil
}

func (p *parser) peek() *token {
	if p.peekedTok == nil {
		tok, err := p.lex.next()
		if err != nil {
			panic(err)
		}
		p.peekedTok = tok
	}
	return p.peekedTok
}

func (p *parser) consume(expected tokenKind) bool {
	tok := p.peek()
	p.peekedTok = nil
	p.lastTok = tok
	if tok.kind == tokenKindInvalid {
		raiseSyntaxErrorWithDetail(tok.pos, synErrInvalidToken, tok.text)
	}
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	p.lastTok = nil

	return false
}
