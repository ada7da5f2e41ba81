package parser

import (
	"github.com/samuelselleck/pax-parser/pkg/ast"
	"github.com/samuelselleck/pax-parser/pkg/diag"
	"github.com/samuelselleck/pax-parser/pkg/lexer"
)

// literal parses a value optionally followed by a unit postfix, valid only
// on Int and Float values - the only place a unit may appear without
// being reached through the full Pratt expression loop, e.g. a map
// field's value or a tag attribute's value written without braces.
func (p *Parser) literal() (ast.Literal, *diag.Diagnostic) {
	p.pushContext("Literal (var, 5px, [...], {..})")
	defer p.popContext()

	value, err := p.value()
	if err != nil {
		return ast.Literal{}, err
	}

	isNumeric := false
	switch value.(type) {
	case ast.IntValue, ast.FloatValue:
		isNumeric = true
	}

	var unit *ast.Unit

	if isNumeric {
		switch p.peek().Kind {
		case lexer.Pixels:
			u := ast.Pixels
			unit = &u
			p.next()
		case lexer.Percent:
			u := ast.Percent
			unit = &u
			p.next()
		case lexer.Radians:
			u := ast.Radians
			unit = &u
			p.next()
		case lexer.Degrees:
			u := ast.Degrees
			unit = &u
			p.next()
		}
	}

	return ast.Literal{Value: value, Unit: unit}, nil
}
