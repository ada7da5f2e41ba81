// Package diag builds and renders the single fail-fast diagnostic a parse
// failure produces: an ordered list of span annotations (the first Primary,
// every later one Secondary), a short description, and an optional help
// string.
//
// This deliberately does not accumulate multiple diagnostics: parsing
// aborts on the first failure with one richly annotated diagnostic rather
// than collecting many.
package diag

import "github.com/samuelselleck/pax-parser/pkg/lexer"

// AnnotationKind distinguishes the primary annotation (the exact point of
// failure) from supporting secondary ones (related spans, like where a
// still-open tag or bracket started).
type AnnotationKind int

const (
	Primary AnnotationKind = iota
	Secondary
)

// Annotation attaches a short message to a span.
type Annotation struct {
	Span lexer.Span
	Text string
	Kind AnnotationKind
}

// Diagnostic is the single error value a parse failure produces.
type Diagnostic struct {
	ShortDescription string
	Annotations      []Annotation
	Help             string
}

// New starts a Diagnostic with the given short description and no
// annotations or help text yet.
func New(shortDescription string) *Diagnostic {
	return &Diagnostic{ShortDescription: shortDescription}
}

// Annotate appends an annotation: the first call on a Diagnostic produces a
// Primary annotation, every subsequent call a Secondary one.
func (d *Diagnostic) Annotate(span lexer.Span, text string) *Diagnostic {
	kind := Secondary
	if len(d.Annotations) == 0 {
		kind = Primary
	}

	d.Annotations = append(d.Annotations, Annotation{Span: span, Text: text, Kind: kind})

	return d
}

// WithHelp sets the trailing help note.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help

	return d
}

// Error implements the error interface so a Diagnostic can be returned and
// checked anywhere a plain error is expected, with a plain-text rendering
// as a fallback for contexts that can't use Render.
func (d *Diagnostic) Error() string {
	if d.ShortDescription == "" {
		return "parse error"
	}

	return d.ShortDescription
}
