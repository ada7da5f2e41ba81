package parser

import (
	"github.com/samuelselleck/pax-parser/pkg/ast"
	"github.com/samuelselleck/pax-parser/pkg/diag"
	"github.com/samuelselleck/pax-parser/pkg/lexer"
)

// op is the operator the Pratt loop found at the current position: either
// a binary infix operator or a postfix unit. Keeping these as one type
// with two tags avoids trying to binding-power-compare a BinaryOp against
// a Unit directly.
type op struct {
	binary ast.BinaryOp
	unit   ast.Unit
	isUnit bool
}

// literalOrWrappedExpression disambiguates `{...}` used as a map/object
// literal from `{...}` used to wrap a full sub-expression: an identifier
// immediately followed by `{` that turns out to be a map (per isMapNext)
// is parsed as a literal value; a bare `{` that isn't a map start is
// parsed as a parenthesizing wrapper around a full expression.
func (p *Parser) literalOrWrappedExpression() (ast.Expression, *diag.Diagnostic) {
	p.pushContext("Expression (var + 5.0/(i + 3%))")
	defer p.popContext()

	isExpression := p.peek().Kind == lexer.OpenCurlBrack && !p.isMapNext()

	if isExpression {
		if _, err := p.expect(lexer.OpenCurlBrack); err != nil {
			return nil, err
		}

		expr, err := p.expressionWithMinBP(0)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lexer.CloseCurlBrack); err != nil {
			return nil, err
		}

		return expr, nil
	}

	lit, err := p.literal()
	if err != nil {
		return nil, err
	}

	if lit.Unit != nil {
		return ast.WithUnitExpr{Val: ast.ValueExpr{Value: lit.Value}, Unit: *lit.Unit}, nil
	}

	return ast.ValueExpr{Value: lit.Value}, nil
}

// expression parses a complete Pratt expression with no minimum binding
// power, i.e. it accepts the loosest-binding operator it finds.
func (p *Parser) expression() (ast.Expression, *diag.Diagnostic) {
	p.pushContext("Expression (var + 5.0/(i + 3%))")
	defer p.popContext()

	return p.expressionWithMinBP(0)
}

func (p *Parser) expressionWithMinBP(minBP int) (ast.Expression, *diag.Diagnostic) {
	var value ast.Expression

	switch p.peek().Kind {
	case lexer.Identifier, lexer.Integer, lexer.Float, lexer.OpenCurlBrack,
		lexer.String, lexer.OpenSquareBrack, lexer.OpenParenth:
		val, err := p.value()
		if err != nil {
			return nil, err
		}

		value = ast.ValueExpr{Value: val}
	case lexer.Not:
		rbp := prefixBindingPower(ast.Not)
		p.next()

		rhs, err := p.expressionWithMinBP(rbp)
		if err != nil {
			return nil, err
		}

		value = ast.UnaryExpr{Op: ast.Not, Val: rhs}
	case lexer.Minus:
		rbp := prefixBindingPower(ast.Neg)
		p.next()

		rhs, err := p.expressionWithMinBP(rbp)
		if err != nil {
			return nil, err
		}

		value = ast.UnaryExpr{Op: ast.Neg, Val: rhs}
	default:
		return nil, p.error(
			lexer.Identifier, lexer.Integer, lexer.Float, lexer.OpenCurlBrack,
			lexer.String, lexer.OpenSquareBrack, lexer.OpenParenth, lexer.Not, lexer.Minus,
		)
	}

	for {
		o, ok := p.peekOp()
		if !ok {
			break
		}

		if o.isUnit {
			lbp := postfixBindingPower(o.unit)
			if lbp < minBP {
				break
			}

			p.next()

			value = ast.WithUnitExpr{Val: value, Unit: o.unit}

			continue
		}

		lbp, rbp := binaryBindingPower(o.binary)
		if lbp < minBP {
			break
		}

		p.next()

		rhs, err := p.expressionWithMinBP(rbp)
		if err != nil {
			return nil, err
		}

		value = ast.BinaryExpr{Left: value, Op: o.binary, Right: rhs}
	}

	return value, nil
}

// peekOp classifies the current token as a binary or postfix operator
// without consuming it. A bare '/' immediately followed by '>' is a
// closing tag's slash, not a division operator, and is reported as "no
// operator here" so the Pratt loop exits and lets the tag parser consume
// it.
func (p *Parser) peekOp() (op, bool) {
	switch p.peek().Kind {
	case lexer.Pixels:
		return op{unit: ast.Pixels, isUnit: true}, true
	case lexer.Percent:
		return op{unit: ast.Percent, isUnit: true}, true
	case lexer.Degrees:
		return op{unit: ast.Degrees, isUnit: true}, true
	case lexer.Radians:
		return op{unit: ast.Radians, isUnit: true}, true
	case lexer.Plus:
		return op{binary: ast.Add}, true
	case lexer.Minus:
		return op{binary: ast.Sub}, true
	case lexer.Asterisk:
		return op{binary: ast.Mult}, true
	case lexer.Remainder:
		return op{binary: ast.Mod}, true
	case lexer.Range:
		return op{binary: ast.RangeOp}, true
	case lexer.Eq:
		return op{binary: ast.Eq}, true
	case lexer.LessOrEq:
		return op{binary: ast.LessOrEq}, true
	case lexer.MoreOrEq:
		return op{binary: ast.MoreOrEq}, true
	case lexer.NotEq:
		return op{binary: ast.NotEq}, true
	case lexer.Or:
		return op{binary: ast.Or}, true
	case lexer.And:
		return op{binary: ast.And}, true
	case lexer.CloseAngBrack:
		return op{binary: ast.LargerThan}, true
	case lexer.OpenAngBrack:
		return op{binary: ast.SmallerThan}, true
	case lexer.Exp:
		return op{binary: ast.ExpOp}, true
	case lexer.Slash:
		if p.peekNth(1).Kind == lexer.CloseAngBrack {
			return op{}, false
		}

		return op{binary: ast.Div}, true
	default:
		return op{}, false
	}
}
