// Package parser implements the Pax front-end's recursive-descent and
// Pratt parser, driven by the token-level lookahead in pkg/token over the
// lexer in pkg/lexer, producing the AST in pkg/ast or a single fail-fast
// pkg/diag.Diagnostic.
package parser

import (
	"fmt"
	"strings"

	"github.com/samuelselleck/pax-parser/pkg/ast"
	"github.com/samuelselleck/pax-parser/pkg/diag"
	"github.com/samuelselleck/pax-parser/pkg/lexer"
	"github.com/samuelselleck/pax-parser/pkg/token"
)

// Parser turns Pax source text into a PaxAst, or a single Diagnostic
// describing the first thing that didn't parse.
type Parser struct {
	src          string
	tokens       *token.Stream
	contextStack []string
}

// New returns a Parser over src.
func New(src string) *Parser {
	return &Parser{src: src, tokens: token.New(lexer.New(src))}
}

// Parse consumes the entire source, interleaving top-level template
// entries (bare tags, for/if/slot directives, comments) and @settings
// blocks in whatever order they appear, grouping each into its own slice.
func (p *Parser) Parse() (*ast.PaxAst, *diag.Diagnostic) {
	var templates []ast.TemplateEntry
	var settings []ast.SettingsEntry

	for {
		switch p.peek().Kind {
		case lexer.OpenAngBrack, lexer.For, lexer.If, lexer.Slot, lexer.Comment:
			entries, err := p.template()
			if err != nil {
				return nil, err
			}

			templates = append(templates, entries...)
		case lexer.AtSymbol:
			entries, err := p.settings()
			if err != nil {
				return nil, err
			}

			settings = append(settings, entries...)
		case lexer.EOF:
			return &ast.PaxAst{Templates: templates, Settings: settings}, nil
		default:
			return nil, p.error(lexer.OpenAngBrack, lexer.AtSymbol, lexer.EOF)
		}
	}
}

func (p *Parser) peek() lexer.Token {
	return p.tokens.Peek()
}

func (p *Parser) peekNth(i int) lexer.Token {
	return p.tokens.PeekNth(i)
}

func (p *Parser) next() lexer.Token {
	return p.tokens.Next()
}

func (p *Parser) nextIf(kind lexer.Kind) (lexer.Token, bool) {
	return p.tokens.NextIf(func(t lexer.Token) bool { return t.Kind == kind })
}

func (p *Parser) sourceOf(span lexer.Span) string {
	return span.Slice(p.src)
}

// pushContext/popContext maintain a stack of human-readable production
// names, each named after the grammar rule it labels along with a short
// example, e.g. "Expression (var + 5.0/(i + 3%))". The top of the stack,
// if any, becomes a diagnostic's help line.
func (p *Parser) pushContext(tag string) {
	p.contextStack = append(p.contextStack, tag)
}

func (p *Parser) popContext() {
	p.contextStack = p.contextStack[:len(p.contextStack)-1]
}

func (p *Parser) currentContext() (string, bool) {
	if len(p.contextStack) == 0 {
		return "", false
	}

	return p.contextStack[len(p.contextStack)-1], true
}

// expect consumes the next token and requires it to have kind; on mismatch
// it returns a Diagnostic built from the offending token.
func (p *Parser) expect(kind lexer.Kind) (lexer.Token, *diag.Diagnostic) {
	tok := p.next()
	if tok.Kind != kind {
		return tok, p.diagnosticAt(tok, kind)
	}

	return tok, nil
}

// expectSequence consumes len(kinds) tokens, stopping at the first
// mismatch. Bounded at 5 kinds by pkg/token.Stream.ExpectSequence - no Pax
// grammar production needs more in a single call.
func (p *Parser) expectSequence(kinds ...lexer.Kind) ([]lexer.Token, *diag.Diagnostic) {
	toks, err := p.tokens.ExpectSequence(kinds)
	if err != nil {
		return nil, p.diagnosticAt(err.Found, err.Expected)
	}

	return toks, nil
}

// error consumes the next token and reports it as unexpected against the
// given set of acceptable kinds.
func (p *Parser) error(expected ...lexer.Kind) *diag.Diagnostic {
	tok := p.next()

	return p.diagnosticAt(tok, expected...)
}

func (p *Parser) diagnosticAt(tok lexer.Token, expected ...lexer.Kind) *diag.Diagnostic {
	d := diag.New("unexpected character(s)").Annotate(tok.Span, expectedText(expected))

	if ctx, ok := p.currentContext(); ok {
		d = d.WithHelp(fmt.Sprintf("while parsing %s", ctx))
	}

	return d
}

func expectedText(kinds []lexer.Kind) string {
	switch len(kinds) {
	case 0:
		return "expected <unspecified>"
	case 1:
		return fmt.Sprintf("expected %s", kinds[0])
	default:
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}

		last := names[len(names)-1]

		return fmt.Sprintf("expected %s or %s", strings.Join(names[:len(names)-1], ", "), last)
	}
}
