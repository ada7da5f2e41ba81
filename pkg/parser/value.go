package parser

import (
	"github.com/samuelselleck/pax-parser/pkg/ast"
	"github.com/samuelselleck/pax-parser/pkg/diag"
	"github.com/samuelselleck/pax-parser/pkg/lexer"
)

// value parses one of the closed set of primary values: numeric and
// string literals, variables, function calls, enum variants, objects,
// lists and tuples. Identifier is the only token that needs further
// lookahead to disambiguate which of four productions it starts.
func (p *Parser) value() (ast.Value, *diag.Diagnostic) {
	p.pushContext("Value (5px, {..})")
	defer p.popContext()

	switch p.peek().Kind {
	case lexer.Integer:
		return ast.IntValue{Span: p.next().Span}, nil
	case lexer.Float:
		return ast.FloatValue{Span: p.next().Span}, nil
	case lexer.Identifier:
		switch p.peekNth(1).Kind {
		case lexer.OpenParenth:
			return p.functionCall()
		case lexer.PathSep:
			return p.enumVariant()
		case lexer.OpenCurlBrack:
			if p.isMapNext() {
				return p.object()
			}

			return p.variable()
		default:
			return p.variable()
		}
	case lexer.String:
		return ast.StringValue{Span: p.next().Span}, nil
	case lexer.OpenCurlBrack:
		return p.object()
	case lexer.OpenSquareBrack:
		elems, err := p.sequenceEnclosedIn(lexer.OpenSquareBrack, lexer.CloseSquareBrack)
		if err != nil {
			return nil, err
		}

		return ast.List{Elements: elems}, nil
	case lexer.OpenParenth:
		elems, err := p.sequenceEnclosedIn(lexer.OpenParenth, lexer.CloseParenth)
		if err != nil {
			return nil, err
		}

		return ast.Tuple{Elements: elems}, nil
	default:
		return nil, p.error(
			lexer.Integer, lexer.Float, lexer.Identifier, lexer.String,
			lexer.OpenCurlBrack, lexer.OpenSquareBrack, lexer.OpenParenth,
		)
	}
}

// variable parses a '.'-separated path of one or more identifiers. The
// self./this. prefixes never reach here - they're already stripped at the
// lexer, so a path like "self.foo.bar" arrives as "foo.bar".
func (p *Parser) variable() (ast.Value, *diag.Diagnostic) {
	p.pushContext("Variable")
	defer p.popContext()

	var path []ast.Ident

	for {
		ident, err := p.expect(lexer.Identifier)
		if err != nil {
			return nil, err
		}

		path = append(path, ast.Ident{Span: ident.Span})

		if _, ok := p.nextIf(lexer.Period); !ok {
			break
		}
	}

	return ast.Variable{Path: path}, nil
}

func (p *Parser) enumVariant() (ast.Value, *diag.Diagnostic) {
	toks, err := p.expectSequence(lexer.Identifier, lexer.PathSep, lexer.Identifier)
	if err != nil {
		return nil, err
	}

	var args []ast.Expression

	if p.peek().Kind == lexer.OpenParenth {
		args, err = p.sequenceEnclosedIn(lexer.OpenParenth, lexer.CloseParenth)
		if err != nil {
			return nil, err
		}
	}

	return ast.EnumVariant{
		Name:      ast.Ident{Span: toks[0].Span},
		Variant:   ast.Ident{Span: toks[2].Span},
		Arguments: args,
	}, nil
}

func (p *Parser) functionCall() (ast.Value, *diag.Diagnostic) {
	p.pushContext("Function call")
	defer p.popContext()

	ident, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}

	args, err := p.sequenceEnclosedIn(lexer.OpenParenth, lexer.CloseParenth)
	if err != nil {
		return nil, err
	}

	return ast.FunctionCall{Name: ast.Ident{Span: ident.Span}, Arguments: args}, nil
}

// sequenceEnclosedIn parses a comma-delimited (trailing comma optional, and
// a comma may be omitted altogether between entries) list of expressions
// between open and close.
func (p *Parser) sequenceEnclosedIn(open, close lexer.Kind) ([]ast.Expression, *diag.Diagnostic) {
	p.pushContext("Sequence ([foo, 5px], or (foo, 5px))")
	defer p.popContext()

	if _, err := p.expect(open); err != nil {
		return nil, err
	}

	var entries []ast.Expression

	for {
		if _, ok := p.nextIf(close); ok {
			break
		}

		expr, err := p.expression()
		if err != nil {
			return nil, err
		}

		entries = append(entries, expr)
		p.nextIf(lexer.Comma)
	}

	return entries, nil
}
