package parser

import (
	"testing"

	"github.com/samuelselleck/pax-parser/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ast.PaxAst {
	t.Helper()

	tree, err := New(src).Parse()
	require.Nil(t, err, "unexpected parse error: %v", err)
	require.NotNil(t, tree)

	return tree
}

func TestParseEmptySource(t *testing.T) {
	tree := mustParse(t, "")
	assert.Empty(t, tree.Templates)
	assert.Empty(t, tree.Settings)
}

func TestParseSelfClosingTag(t *testing.T) {
	tree := mustParse(t, `<Rectangle width=50px height=50px/>`)
	require.Len(t, tree.Templates, 1)

	tag, ok := tree.Templates[0].(ast.Tag)
	require.True(t, ok)
	require.Len(t, tag.Attributes, 2)

	field, ok := tag.Attributes[0].(ast.Field)
	require.True(t, ok)

	withUnit, ok := field.Value.(ast.WithUnitExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Pixels, withUnit.Unit)
}

func TestParseNestedTagBody(t *testing.T) {
	tree := mustParse(t, `<Group><Rectangle/></Group>`)
	require.Len(t, tree.Templates, 1)

	outer := tree.Templates[0].(ast.Tag)
	require.Len(t, outer.Body, 1)

	inner := outer.Body[0].(ast.Tag)
	assert.Equal(t, "Rectangle", inner.Name.Span.Slice(`<Group><Rectangle/></Group>`))
}

func TestParseMismatchedClosingTagIsTwoAnnotationDiagnostic(t *testing.T) {
	src := `<Group></Other>`

	_, err := New(src).Parse()
	require.NotNil(t, err)
	assert.Equal(t, "unexpected closing tag", err.ShortDescription)
	require.Len(t, err.Annotations, 2)
}

func TestParseForLoopWithTuplePattern(t *testing.T) {
	tree := mustParse(t, `for (i, item) in items {<Rectangle/>}`)
	require.Len(t, tree.Templates, 1)

	loop := tree.Templates[0].(ast.Loop)
	_, ok := loop.Pattern.(ast.TuplePattern)
	assert.True(t, ok)
}

func TestParseForLoopWithIdentPattern(t *testing.T) {
	tree := mustParse(t, `for item in items {<Rectangle/>}`)
	loop := tree.Templates[0].(ast.Loop)

	pattern, ok := loop.Pattern.(ast.IdentPattern)
	require.True(t, ok)
	assert.Equal(t, "item", pattern.Name.Span.Slice(`for item in items {<Rectangle/>}`))
}

func TestParseConditional(t *testing.T) {
	tree := mustParse(t, `if visible {<Rectangle/>}`)
	cond := tree.Templates[0].(ast.Conditional)

	_, ok := cond.Condition.(ast.ValueExpr)
	assert.True(t, ok)
}

func TestParseSlot(t *testing.T) {
	tree := mustParse(t, `slot(content)`)
	_, ok := tree.Templates[0].(ast.Slot)
	assert.True(t, ok)
}

func TestParseSettingsBlockRejectsWrongName(t *testing.T) {
	_, err := New(`@other { }`).Parse()
	require.NotNil(t, err)
	assert.Equal(t, "expected settings block", err.ShortDescription)
}

func TestParseSettingsClassAndId(t *testing.T) {
	tree := mustParse(t, `@settings { .a_class { x: 5 } #an_id { y: 10 } }`)
	require.Len(t, tree.Settings, 2)

	_, isClass := tree.Settings[0].(ast.Class)
	assert.True(t, isClass)

	_, isID := tree.Settings[1].(ast.Id)
	assert.True(t, isID)
}

func TestParseHandlerAttribute(t *testing.T) {
	tree := mustParse(t, `<Button @click=on_click/>`)
	tag := tree.Templates[0].(ast.Tag)
	handler := tag.Attributes[0].(ast.Handler)
	assert.Equal(t, "click", handler.Key.Span.Slice(`<Button @click=on_click/>`))
}

func TestParseBindingAttribute(t *testing.T) {
	tree := mustParse(t, `<Checkbox bind:checked=is_checked/>`)
	tag := tree.Templates[0].(ast.Tag)
	binding := tag.Attributes[0].(ast.Binding)
	assert.Equal(t, "checked", binding.Key.Span.Slice(`<Checkbox bind:checked=is_checked/>`))
}

func TestParseObjectAndMapDisambiguation(t *testing.T) {
	tree := mustParse(t, `<Rectangle fill={Color::rgb(1, 0, 0)}/>`)
	tag := tree.Templates[0].(ast.Tag)
	field := tag.Attributes[0].(ast.Field)

	withUnit, isWithUnit := field.Value.(ast.WithUnitExpr)
	assert.False(t, isWithUnit, "rgb(...) call is not unit-tagged: %#v", withUnit)

	val := field.Value.(ast.ValueExpr)
	_, isEnum := val.Value.(ast.EnumVariant)
	assert.True(t, isEnum)
}

func TestParseMapFieldWithComment(t *testing.T) {
	tree := mustParse(t, `@settings { .c {
		// a comment
		x: 5
	} }`)

	class := tree.Settings[0].(ast.Class)
	require.Len(t, class.Binding, 2)

	_, isComment := class.Binding[0].(ast.Comment)
	assert.True(t, isComment)
}

func TestExpressionPrecedenceAddBeforeOr(t *testing.T) {
	// a + b || c should parse as (a + b) || c: Add(5,6) binds tighter than Or(1,2).
	tree := mustParse(t, `if a + b || c {<Rectangle/>}`)
	cond := tree.Templates[0].(ast.Conditional)

	top := cond.Condition.(ast.BinaryExpr)
	assert.Equal(t, ast.Or, top.Op)

	_, leftIsAdd := top.Left.(ast.BinaryExpr)
	assert.True(t, leftIsAdd)
}

func TestExpressionExpIsLeftAssociative(t *testing.T) {
	// a ^ b ^ c should parse as (a ^ b) ^ c: rbp(14) > lbp(13).
	tree := mustParse(t, `if a ^ b ^ c {<Rectangle/>}`)
	cond := tree.Templates[0].(ast.Conditional)

	top := cond.Condition.(ast.BinaryExpr)
	require.Equal(t, ast.ExpOp, top.Op)

	_, leftIsExp := top.Left.(ast.BinaryExpr)
	assert.True(t, leftIsExp, "exponent should nest on the left")

	_, rightIsValue := top.Right.(ast.ValueExpr)
	assert.True(t, rightIsValue, "exponent should not nest on the right")
}

func TestExpressionRangeBindsTighterThanAdd(t *testing.T) {
	// Testable property: 1..n+1 parses as (1..n)+1, per SPEC_FULL.md §12 —
	// Range's rbp (16) is higher than Add's lbp (5), so recursing into
	// Range's rhs at min_bp=16 stops before consuming "+1"; back at the
	// outer min_bp=0, Add's lbp then binds the already-built Range node as
	// its left operand.
	tree := mustParse(t, `if 1..n+1 {<Rectangle/>}`)
	cond := tree.Templates[0].(ast.Conditional)

	top := cond.Condition.(ast.BinaryExpr)
	require.Equal(t, ast.Add, top.Op)

	left, leftIsRange := top.Left.(ast.BinaryExpr)
	require.True(t, leftIsRange)
	assert.Equal(t, ast.RangeOp, left.Op)

	_, rightIsValue := top.Right.(ast.ValueExpr)
	assert.True(t, rightIsValue)
}

func TestExpressionDoublePercentIsBinaryMod(t *testing.T) {
	// `%` alone is only ever the postfix unit; `%%` is the binary Mod.
	tree := mustParse(t, `if a %% b {<Rectangle/>}`)
	cond := tree.Templates[0].(ast.Conditional)

	top := cond.Condition.(ast.BinaryExpr)
	assert.Equal(t, ast.Mod, top.Op)
}

func TestExpressionUnitBindsTighterThanUnary(t *testing.T) {
	// -5px parses as Unary(Neg, WithUnit(5, px)): the operand of the prefix
	// minus is parsed at rbp(17), and the postfix unit's lbp(19) clears it.
	tree := mustParse(t, `<Rectangle width={-5px}/>`)
	tag := tree.Templates[0].(ast.Tag)
	field := tag.Attributes[0].(ast.Field)

	unary := field.Value.(ast.UnaryExpr)
	assert.Equal(t, ast.Neg, unary.Op)

	withUnit, isWithUnit := unary.Val.(ast.WithUnitExpr)
	assert.True(t, isWithUnit)
	assert.Equal(t, ast.Pixels, withUnit.Unit)
}

func TestExpressionDivisionNotConfusedWithClosingSlash(t *testing.T) {
	tree := mustParse(t, `<Rectangle width={a/b}/>`)
	tag := tree.Templates[0].(ast.Tag)
	field := tag.Attributes[0].(ast.Field)

	div, ok := field.Value.(ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Div, div.Op)

	// The tag's own closing "/>" after the braced value must still be
	// consumed by the tag parser.
	assert.Empty(t, tag.Body)
}

func TestExpressionVariablePath(t *testing.T) {
	tree := mustParse(t, `if self.foo.bar {<Rectangle/>}`)
	cond := tree.Templates[0].(ast.Conditional)

	val := cond.Condition.(ast.ValueExpr)
	variable := val.Value.(ast.Variable)
	require.Len(t, variable.Path, 2)
}

func TestParseListAndTupleLiterals(t *testing.T) {
	tree := mustParse(t, `@settings { .c { a: [1, 2, 3] b: (1, 2) } }`)
	class := tree.Settings[0].(ast.Class)

	fieldA := class.Binding[0].(ast.Field)
	listVal := fieldA.Value.(ast.ValueExpr)
	list, ok := listVal.Value.(ast.List)
	require.True(t, ok)
	assert.Len(t, list.Elements, 3)

	fieldB := class.Binding[1].(ast.Field)
	tupleVal := fieldB.Value.(ast.ValueExpr)
	tuple, ok := tupleVal.Value.(ast.Tuple)
	require.True(t, ok)
	assert.Len(t, tuple.Elements, 2)
}

func TestParseTrailingAndOmittedCommasBothAccepted(t *testing.T) {
	withComma := mustParse(t, `@settings { .c { a: [1, 2,] } }`)
	withoutComma := mustParse(t, `@settings { .c { a: [1 2] } }`)

	listA := withComma.Settings[0].(ast.Class).Binding[0].(ast.Field).Value.(ast.ValueExpr).Value.(ast.List)
	listB := withoutComma.Settings[0].(ast.Class).Binding[0].(ast.Field).Value.(ast.ValueExpr).Value.(ast.List)

	assert.Len(t, listA.Elements, 2)
	assert.Len(t, listB.Elements, 2)
}

func TestParseFunctionCallArguments(t *testing.T) {
	tree := mustParse(t, `if compute(a, b) {<Rectangle/>}`)
	cond := tree.Templates[0].(ast.Conditional)

	val := cond.Condition.(ast.ValueExpr)
	call, ok := val.Value.(ast.FunctionCall)
	require.True(t, ok)
	assert.Len(t, call.Arguments, 2)
}

func TestParseEnumVariantWithoutArguments(t *testing.T) {
	tree := mustParse(t, `if Color::Red {<Rectangle/>}`)
	cond := tree.Templates[0].(ast.Conditional)

	val := cond.Condition.(ast.ValueExpr)
	variant, ok := val.Value.(ast.EnumVariant)
	require.True(t, ok)
	assert.Empty(t, variant.Arguments)
}

func TestParseUnexpectedTokenDiagnosticIncludesContextHelp(t *testing.T) {
	_, err := New(`<Rectangle width=@/>`).Parse()
	require.NotNil(t, err)
	assert.NotEmpty(t, err.Help)
}

func TestParseInterleavedTemplateAndSettings(t *testing.T) {
	tree := mustParse(t, `<Rectangle/>@settings { .c { x: 1 } }<Group/>`)
	assert.Len(t, tree.Templates, 2)
	assert.Len(t, tree.Settings, 1)
}

func TestIsMapNextDoesNotConsumeOnFailure(t *testing.T) {
	p := New(`{5 + 4}`)
	before := p.peek()
	result := p.isMapNext()
	after := p.peek()

	assert.False(t, result)
	assert.Equal(t, before, after, "is_map_next must not consume tokens")
}
