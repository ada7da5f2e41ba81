package parser

import "github.com/samuelselleck/pax-parser/pkg/ast"

// Binding powers are kept as explicit (left, right) pairs rather than a
// single precedence integer: every binary operator here has rbp = lbp + 1,
// which makes it left-associative (a recursive call at rbp stops as soon as
// it sees another operator of the same kind, since that operator's lbp is
// one less than the rbp just passed in). The postfix unit operators only
// ever have a left binding power. Collapsing these into one precedence
// level per operator would lose that structure.

func binaryBindingPower(op ast.BinaryOp) (lbp, rbp int) {
	switch op {
	case ast.Or, ast.And:
		return 1, 2
	case ast.NotEq, ast.LessOrEq, ast.MoreOrEq, ast.LargerThan, ast.SmallerThan, ast.Eq:
		return 3, 4
	case ast.Add, ast.Sub:
		return 5, 6
	case ast.Mult, ast.Div:
		return 7, 8
	case ast.Mod:
		return 9, 10
	case ast.ExpOp:
		return 13, 14
	case ast.RangeOp:
		return 15, 16
	default:
		panic("parser: binaryBindingPower: unhandled BinaryOp")
	}
}

func prefixBindingPower(ast.UnaryOp) (rbp int) {
	return 17
}

func postfixBindingPower(ast.Unit) (lbp int) {
	return 19
}
