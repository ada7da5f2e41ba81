// Package parser turns a Pax source file into a pkg/ast.PaxAst, or a
// single pkg/diag.Diagnostic describing the first thing that didn't
// parse.
//
// The grammar is a straightforward recursive descent over
// templates/settings/maps, with a Pratt operator-precedence core for
// expressions (binding_power.go). Disambiguating `{...}` as a map literal
// versus an expression wrapper, and a plain `/` from a closing tag's `/`,
// are the two places the grammar needs lookahead beyond one token.
//
// Parsing is fail-fast: the first unexpected token aborts with one
// Diagnostic rather than accumulating a list.
package parser
