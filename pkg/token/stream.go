// Package token provides the token-level lookahead scanner that sits
// between pkg/lexer and pkg/parser: a MultiPeek adaptor over the lexer's
// token stream, with unbounded lookahead and no grammatical knowledge of
// its own.
package token

import "github.com/samuelselleck/pax-parser/pkg/lexer"

// lexerSource adapts a *lexer.Lexer to a next() (item, ok) source, the
// same shape pkg/lexer.MultiPeek pulls from. Since the lexer itself already emits EOF
// tokens forever once exhausted (see pkg/lexer.Lexer.NextToken), this
// adapter never needs to report ok=false - the caller recognizes exhaustion
// by the token's Kind, exactly mirroring how the lexer's own char scanner
// recognizes end of input.
type lexerSource struct {
	lex *lexer.Lexer
}

func (s *lexerSource) next() (lexer.Token, bool) {
	return s.lex.NextToken(), true
}

// Stream is a lookahead buffer over a lexer-backed source, written for
// lexer.Token rather than built on pkg/lexer.MultiPeek, with the same
// contract. It is the "token scanner" of the front-end pipeline: PeekNth,
// Peek and NextIf all operate at token granularity with arbitrary
// lookahead, which the parser's is_map_next predicate and expect_sequence
// helpers depend on.
type Stream struct {
	peek []lexer.Token
	src  *lexerSource
}

// New wraps l in a token-level lookahead Stream.
func New(l *lexer.Lexer) *Stream {
	return &Stream{src: &lexerSource{lex: l}}
}

// PeekNth ensures the lookahead buffer holds at least i+1 tokens and
// returns the i-th without consuming it.
func (s *Stream) PeekNth(i int) lexer.Token {
	for i >= len(s.peek) {
		tok, _ := s.src.next()
		s.peek = append(s.peek, tok)
	}

	return s.peek[i]
}

// Peek is PeekNth(0).
func (s *Stream) Peek() lexer.Token {
	return s.PeekNth(0)
}

// Next returns the front of the lookahead buffer if non-empty, else pulls
// directly from the lexer.
func (s *Stream) Next() lexer.Token {
	if len(s.peek) > 0 {
		tok := s.peek[0]
		s.peek = s.peek[1:]

		return tok
	}

	tok, _ := s.src.next()

	return tok
}

// NextIf consumes and returns the next token iff pred holds for it.
func (s *Stream) NextIf(pred func(lexer.Token) bool) (lexer.Token, bool) {
	tok := s.Peek()
	if !pred(tok) {
		return lexer.Token{}, false
	}

	return s.Next(), true
}

// UnexpectedToken carries the offending token and the kind that was
// expected in its place.
type UnexpectedToken struct {
	Found    lexer.Token
	Expected lexer.Kind
}

// ExpectKind consumes the next token and returns it, or an error carrying
// the offending token and the expected kind if it doesn't match.
func (s *Stream) ExpectKind(kind lexer.Kind) (lexer.Token, *UnexpectedToken) {
	tok := s.Next()
	if tok.Kind != kind {
		return tok, &UnexpectedToken{Found: tok, Expected: kind}
	}

	return tok, nil
}

// ExpectSequence consumes len(kinds) tokens, checking each in turn. It
// stops at the first mismatch. Bounded to at most 5 kinds per call, since
// no grammar production in this parser needs more.
func (s *Stream) ExpectSequence(kinds []lexer.Kind) ([]lexer.Token, *UnexpectedToken) {
	if len(kinds) > 5 {
		panic("token: ExpectSequence supports at most 5 kinds")
	}

	toks := make([]lexer.Token, 0, len(kinds))

	for _, k := range kinds {
		tok, err := s.ExpectKind(k)
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)
	}

	return toks, nil
}
