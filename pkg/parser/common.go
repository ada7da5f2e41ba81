package parser

import (
	"github.com/samuelselleck/pax-parser/pkg/ast"
	"github.com/samuelselleck/pax-parser/pkg/diag"
	"github.com/samuelselleck/pax-parser/pkg/lexer"
)

// isMapNext looks ahead, without consuming anything, far enough to tell
// whether the upcoming `{...}` is a map/object literal as opposed to an
// expression wrapper or a for/if block body: an optional leading
// identifier (the object's type name), an open curly brace, any number of
// comment lines, then an identifier and a colon. This is the parser's
// single largest lookahead - unbounded in principle on the run of leading
// comments, though in practice never more than a handful.
func (p *Parser) isMapNext() bool {
	lookahead := 0

	if p.peekNth(lookahead).Kind == lexer.Identifier {
		lookahead++
	}

	if p.peekNth(lookahead).Kind != lexer.OpenCurlBrack {
		return false
	}

	lookahead++

	for p.peekNth(lookahead).Kind == lexer.Comment {
		lookahead++
	}

	if p.peekNth(lookahead).Kind != lexer.Identifier {
		return false
	}

	lookahead++

	return p.peekNth(lookahead).Kind == lexer.Colon
}

// object parses an optionally-named map: `{foo: 5}` or `LinearGradient
// {foo: 5}`.
func (p *Parser) object() (ast.Value, *diag.Diagnostic) {
	p.pushContext("Object (<optional ident> {foo: .. bar: ..})")
	defer p.popContext()

	var name *ast.Ident

	if tok, ok := p.nextIf(lexer.Identifier); ok {
		name = &ast.Ident{Span: tok.Span}
	}

	fields, err := p.mapFields()
	if err != nil {
		return nil, err
	}

	return ast.Object{Name: name, Fields: fields}, nil
}

// mapFields parses a brace-delimited, comma-optional list of `key: value`
// fields interleaved with standalone comments.
func (p *Parser) mapFields() ([]ast.FieldOrComment, *diag.Diagnostic) {
	p.pushContext("Map ({foo: .. bar: ..})")
	defer p.popContext()

	if _, err := p.expect(lexer.OpenCurlBrack); err != nil {
		return nil, err
	}

	var entries []ast.FieldOrComment

	for {
		switch p.peek().Kind {
		case lexer.Identifier:
			key := p.next()

			if _, err := p.expect(lexer.Colon); err != nil {
				return nil, err
			}

			value, err := p.literalOrWrappedExpression()
			if err != nil {
				return nil, err
			}

			p.nextIf(lexer.Comma)

			entries = append(entries, ast.Field{Key: ast.Ident{Span: key.Span}, Value: value})
		case lexer.Comment:
			entries = append(entries, ast.Comment{Span: p.next().Span})
		case lexer.CloseCurlBrack:
			p.next()

			return entries, nil
		default:
			return nil, p.error(lexer.Identifier)
		}
	}
}
