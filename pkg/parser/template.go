package parser

import (
	"fmt"

	"github.com/samuelselleck/pax-parser/pkg/ast"
	"github.com/samuelselleck/pax-parser/pkg/diag"
	"github.com/samuelselleck/pax-parser/pkg/lexer"
)

// template parses the body of a tag, a for/if block, or the document's
// top level: a run of tags, loops, conditionals, slots and comments,
// stopping at a closing curly brace, an '@' (a settings block), a closing
// tag's opening `</`, or EOF - whichever of those the caller is prepared
// to consume next.
func (p *Parser) template() ([]ast.TemplateEntry, *diag.Diagnostic) {
	p.pushContext("Template")
	defer p.popContext()

	var entries []ast.TemplateEntry

	for {
		switch p.peek().Kind {
		case lexer.CloseCurlBrack, lexer.AtSymbol, lexer.EOF:
			return entries, nil
		case lexer.OpenAngBrack:
			if p.peekNth(1).Kind == lexer.Slash {
				return entries, nil
			}

			tag, err := p.tag()
			if err != nil {
				return nil, err
			}

			entries = append(entries, tag)
		case lexer.For:
			loop, err := p.forLoop()
			if err != nil {
				return nil, err
			}

			entries = append(entries, loop)
		case lexer.If:
			cond, err := p.condition()
			if err != nil {
				return nil, err
			}

			entries = append(entries, cond)
		case lexer.Slot:
			expr, err := p.slot()
			if err != nil {
				return nil, err
			}

			entries = append(entries, ast.Slot{Expr: expr})
		case lexer.Comment:
			tok, err := p.expect(lexer.Comment)
			if err != nil {
				return nil, err
			}

			entries = append(entries, ast.Comment{Span: tok.Span})
		default:
			return nil, p.error(
				lexer.CloseCurlBrack, lexer.OpenAngBrack, lexer.For, lexer.If, lexer.Slot, lexer.Comment,
			)
		}
	}
}

// tag parses `<name attr...>body</name>` or the self-closing
// `<name attr.../>`, rejecting a mismatched closing tag name with a
// two-annotation Diagnostic pointing at both the offending close tag and
// the opening tag it should have matched.
func (p *Parser) tag() (ast.TemplateEntry, *diag.Diagnostic) {
	p.pushContext("Tag pair (<tag>..</tag>)")
	defer p.popContext()

	if _, err := p.expect(lexer.OpenAngBrack); err != nil {
		return nil, err
	}

	name, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}

	var attributes []ast.Attribute

	for {
		switch p.peek().Kind {
		case lexer.CloseAngBrack, lexer.Slash:
		default:
			attr, err := p.attribute()
			if err != nil {
				return nil, err
			}

			attributes = append(attributes, attr)

			continue
		}

		break
	}

	var body []ast.TemplateEntry

	switch p.peek().Kind {
	case lexer.CloseAngBrack:
		p.next()

		body, err = p.template()
		if err != nil {
			return nil, err
		}

		toks, err := p.expectSequence(lexer.OpenAngBrack, lexer.Slash, lexer.Identifier, lexer.CloseAngBrack)
		if err != nil {
			return nil, err
		}

		closeIdent := toks[2]
		if p.sourceOf(closeIdent.Span) != p.sourceOf(name.Span) {
			return nil, diag.New("unexpected closing tag").
				Annotate(closeIdent.Span, fmt.Sprintf("found closing tag with name %q", p.sourceOf(closeIdent.Span))).
				Annotate(name.Span, "expected to close this next")
		}
	case lexer.Slash:
		p.next()

		if _, err := p.expect(lexer.CloseAngBrack); err != nil {
			return nil, err
		}
	}

	return ast.Tag{Name: ast.Ident{Span: name.Span}, Attributes: attributes, Body: body}, nil
}

// attribute parses one of the three attribute forms an open tag accepts:
// an event handler (`@event=callback`), a two-way binding
// (`bind:key=value`), or a plain field (`key=value`).
func (p *Parser) attribute() (ast.Attribute, *diag.Diagnostic) {
	p.pushContext("Attribute (@handler=foo or key=value)")
	defer p.popContext()

	switch p.peek().Kind {
	case lexer.AtSymbol:
		toks, err := p.expectSequence(lexer.AtSymbol, lexer.Identifier, lexer.Assign, lexer.Identifier)
		if err != nil {
			return nil, err
		}

		return ast.Handler{Key: ast.Ident{Span: toks[1].Span}, Value: ast.Ident{Span: toks[3].Span}}, nil
	case lexer.Bind:
		toks, err := p.expectSequence(lexer.Bind, lexer.Colon, lexer.Identifier, lexer.Assign, lexer.Identifier)
		if err != nil {
			return nil, err
		}

		return ast.Binding{Key: ast.Ident{Span: toks[2].Span}, Value: ast.Ident{Span: toks[4].Span}}, nil
	case lexer.Identifier:
		toks, err := p.expectSequence(lexer.Identifier, lexer.Assign)
		if err != nil {
			return nil, err
		}

		value, err := p.literalOrWrappedExpression()
		if err != nil {
			return nil, err
		}

		return ast.Field{Key: ast.Ident{Span: toks[0].Span}, Value: value}, nil
	default:
		return nil, p.error(lexer.AtSymbol, lexer.Bind, lexer.Identifier)
	}
}

// forLoop parses `for pattern in source {body}`, where pattern is either a
// bare identifier or a parenthesized (ident, ident) pair.
func (p *Parser) forLoop() (ast.Loop, *diag.Diagnostic) {
	p.pushContext("For loop (for i in items {..})")
	defer p.popContext()

	if _, err := p.expect(lexer.For); err != nil {
		return ast.Loop{}, err
	}

	var pattern ast.MatchPattern

	if p.peek().Kind == lexer.OpenParenth {
		toks, err := p.expectSequence(
			lexer.OpenParenth, lexer.Identifier, lexer.Comma, lexer.Identifier, lexer.CloseParenth,
		)
		if err != nil {
			return ast.Loop{}, err
		}

		pattern = ast.TuplePattern{First: ast.Ident{Span: toks[1].Span}, Second: ast.Ident{Span: toks[3].Span}}
	} else {
		ident, err := p.expect(lexer.Identifier)
		if err != nil {
			return ast.Loop{}, err
		}

		pattern = ast.IdentPattern{Name: ast.Ident{Span: ident.Span}}
	}

	if _, err := p.expect(lexer.In); err != nil {
		return ast.Loop{}, err
	}

	source, err := p.expression()
	if err != nil {
		return ast.Loop{}, err
	}

	if _, err := p.expect(lexer.OpenCurlBrack); err != nil {
		return ast.Loop{}, err
	}

	body, err := p.template()
	if err != nil {
		return ast.Loop{}, err
	}

	if _, err := p.expect(lexer.CloseCurlBrack); err != nil {
		return ast.Loop{}, err
	}

	return ast.Loop{Pattern: pattern, Source: source, Body: body}, nil
}

// condition parses `if condition {body}`.
func (p *Parser) condition() (ast.Conditional, *diag.Diagnostic) {
	p.pushContext("Condition (if cond {..})")
	defer p.popContext()

	if _, err := p.expect(lexer.If); err != nil {
		return ast.Conditional{}, err
	}

	cond, err := p.expression()
	if err != nil {
		return ast.Conditional{}, err
	}

	if _, err := p.expect(lexer.OpenCurlBrack); err != nil {
		return ast.Conditional{}, err
	}

	body, err := p.template()
	if err != nil {
		return ast.Conditional{}, err
	}

	if _, err := p.expect(lexer.CloseCurlBrack); err != nil {
		return ast.Conditional{}, err
	}

	return ast.Conditional{Condition: cond, Body: body}, nil
}

// slot parses `slot(expression)`.
func (p *Parser) slot() (ast.Expression, *diag.Diagnostic) {
	p.pushContext("Slot (slot(..))")
	defer p.popContext()

	if _, err := p.expectSequence(lexer.Slot, lexer.OpenParenth); err != nil {
		return nil, err
	}

	source, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.CloseParenth); err != nil {
		return nil, err
	}

	return source, nil
}
