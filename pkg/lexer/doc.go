// Package lexer turns Pax source text into a stream of tokens: the first
// stage of the front-end pipeline, ahead of the token scanner in pkg/token
// and the parser in pkg/parser.
//
// Token Recognition:
//   - Identifiers, Integer/Float literals, String literals, line Comments
//   - Keywords: for, if, in, slot, bind, px, deg, rad
//   - Operators and delimiters: the closed set documented on Kind
//
// The lexer never fails. An unrecognized character becomes a dedicated Unknown
// token (with a warning printed to stderr) and scanning continues; a parser
// built on top of this lexer is the one that eventually rejects an Unknown
// token reached in a meaningful grammar position.
//
// self./this. stripping happens inside identifier scanning, not in the
// parser: an identifier-like lexeme of exactly "self" or "this" followed by
// '.' is discarded and scanning restarts on the identifier after the dot.
// This is deliberate even though it's a layering violation - see DESIGN.md.
//
// Usage:
//
//	l := lexer.New(src)
//	for {
//	    tok := l.NextToken()
//	    if tok.Kind == lexer.EOF {
//	        break
//	    }
//	}
package lexer
