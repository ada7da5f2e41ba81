package parser

import (
	"github.com/samuelselleck/pax-parser/pkg/ast"
	"github.com/samuelselleck/pax-parser/pkg/diag"
	"github.com/samuelselleck/pax-parser/pkg/lexer"
)

// settings parses `@settings { entries... }`: the sole '@'-introduced
// keyword accepted at the top level, rejecting anything else spelled the
// same way (`@foo {}`) with a dedicated diagnostic.
func (p *Parser) settings() ([]ast.SettingsEntry, *diag.Diagnostic) {
	p.pushContext("Settings")
	defer p.popContext()

	toks, err := p.expectSequence(lexer.AtSymbol, lexer.Identifier, lexer.OpenCurlBrack)
	if err != nil {
		return nil, err
	}

	ident := toks[1]
	if p.sourceOf(ident.Span) != "settings" {
		return nil, diag.New("expected settings block").
			Annotate(ident.Span, "only settings allowed in top level context")
	}

	var entries []ast.SettingsEntry

	for {
		switch p.peek().Kind {
		case lexer.AtSymbol:
			h, err := p.handler()
			if err != nil {
				return nil, err
			}

			entries = append(entries, h)
		case lexer.Period:
			c, err := p.class()
			if err != nil {
				return nil, err
			}

			entries = append(entries, c)
		case lexer.Hashtag:
			id, err := p.id()
			if err != nil {
				return nil, err
			}

			entries = append(entries, id)
		case lexer.Comment:
			tok, err := p.expect(lexer.Comment)
			if err != nil {
				return nil, err
			}

			entries = append(entries, ast.Comment{Span: tok.Span})
		case lexer.CloseCurlBrack:
			p.next()

			return entries, nil
		default:
			return nil, p.error(lexer.AtSymbol, lexer.Period, lexer.Hashtag, lexer.Comment, lexer.CloseCurlBrack)
		}

		p.nextIf(lexer.Comma)
	}
}

// handler parses `@event: callback` inside a settings block - the same
// Handler shape a template tag's `@event=callback` attribute produces,
// but with ':' in place of '='.
func (p *Parser) handler() (ast.Handler, *diag.Diagnostic) {
	p.pushContext("Handler (@handler=foo)")
	defer p.popContext()

	toks, err := p.expectSequence(lexer.AtSymbol, lexer.Identifier, lexer.Colon, lexer.Identifier)
	if err != nil {
		return ast.Handler{}, err
	}

	return ast.Handler{Key: ast.Ident{Span: toks[1].Span}, Value: ast.Ident{Span: toks[3].Span}}, nil
}

// class parses `.name {map}`.
func (p *Parser) class() (ast.Class, *diag.Diagnostic) {
	p.pushContext("Class (.a_class {..})")
	defer p.popContext()

	if _, err := p.expect(lexer.Period); err != nil {
		return ast.Class{}, err
	}

	name, err := p.expect(lexer.Identifier)
	if err != nil {
		return ast.Class{}, err
	}

	binding, err := p.mapFields()
	if err != nil {
		return ast.Class{}, err
	}

	return ast.Class{Name: ast.Ident{Span: name.Span}, Binding: binding}, nil
}

// id parses `#name {map}`.
func (p *Parser) id() (ast.Id, *diag.Diagnostic) {
	p.pushContext("Id (#a_class {..})")
	defer p.popContext()

	if _, err := p.expect(lexer.Hashtag); err != nil {
		return ast.Id{}, err
	}

	name, err := p.expect(lexer.Identifier)
	if err != nil {
		return ast.Id{}, err
	}

	binding, err := p.mapFields()
	if err != nil {
		return ast.Id{}, err
	}

	return ast.Id{Name: ast.Ident{Span: name.Span}, Binding: binding}, nil
}
