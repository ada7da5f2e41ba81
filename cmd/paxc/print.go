package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samuelselleck/pax-parser/pkg/ast"
)

// printTree renders a parsed PaxAst as indented text, resolving every leaf
// span back into src since AST nodes carry byte ranges, not copied text.
func printTree(w io.Writer, src string, tree *ast.PaxAst) {
	fmt.Fprintln(w, "templates:")

	for _, entry := range tree.Templates {
		printTemplateEntry(w, src, entry, 1)
	}

	fmt.Fprintln(w, "settings:")

	for _, entry := range tree.Settings {
		printSettingsEntry(w, src, entry, 1)
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func printTemplateEntry(w io.Writer, src string, e ast.TemplateEntry, depth int) {
	pad := indent(depth)

	switch v := e.(type) {
	case ast.Comment:
		fmt.Fprintf(w, "%scomment %q\n", pad, v.Span.Slice(src))
	case ast.Tag:
		fmt.Fprintf(w, "%stag %s\n", pad, v.Name.Span.Slice(src))

		for _, attr := range v.Attributes {
			printAttribute(w, src, attr, depth+1)
		}

		for _, child := range v.Body {
			printTemplateEntry(w, src, child, depth+1)
		}
	case ast.Loop:
		fmt.Fprintf(w, "%sfor %s in\n", pad, matchPatternString(src, v.Pattern))
		printExpression(w, src, v.Source, depth+1)

		for _, child := range v.Body {
			printTemplateEntry(w, src, child, depth+1)
		}
	case ast.Conditional:
		fmt.Fprintf(w, "%sif\n", pad)
		printExpression(w, src, v.Condition, depth+1)

		for _, child := range v.Body {
			printTemplateEntry(w, src, child, depth+1)
		}
	case ast.Slot:
		fmt.Fprintf(w, "%sslot\n", pad)
		printExpression(w, src, v.Expr, depth+1)
	default:
		fmt.Fprintf(w, "%s<unknown template entry %T>\n", pad, v)
	}
}

func matchPatternString(src string, p ast.MatchPattern) string {
	switch v := p.(type) {
	case ast.IdentPattern:
		return v.Name.Span.Slice(src)
	case ast.TuplePattern:
		return fmt.Sprintf("(%s, %s)", v.First.Span.Slice(src), v.Second.Span.Slice(src))
	default:
		return fmt.Sprintf("<unknown pattern %T>", v)
	}
}

func printAttribute(w io.Writer, src string, a ast.Attribute, depth int) {
	pad := indent(depth)

	switch v := a.(type) {
	case ast.Handler:
		fmt.Fprintf(w, "%s@%s=%s\n", pad, v.Key.Span.Slice(src), v.Value.Span.Slice(src))
	case ast.Binding:
		fmt.Fprintf(w, "%sbind:%s=%s\n", pad, v.Key.Span.Slice(src), v.Value.Span.Slice(src))
	case ast.Field:
		fmt.Fprintf(w, "%s%s=\n", pad, v.Key.Span.Slice(src))
		printExpression(w, src, v.Value, depth+1)
	default:
		fmt.Fprintf(w, "%s<unknown attribute %T>\n", pad, v)
	}
}

func printSettingsEntry(w io.Writer, src string, e ast.SettingsEntry, depth int) {
	pad := indent(depth)

	switch v := e.(type) {
	case ast.Comment:
		fmt.Fprintf(w, "%scomment %q\n", pad, v.Span.Slice(src))
	case ast.Handler:
		fmt.Fprintf(w, "%s@%s: %s\n", pad, v.Key.Span.Slice(src), v.Value.Span.Slice(src))
	case ast.Class:
		fmt.Fprintf(w, "%s.%s\n", pad, v.Name.Span.Slice(src))

		for _, f := range v.Binding {
			printFieldOrComment(w, src, f, depth+1)
		}
	case ast.Id:
		fmt.Fprintf(w, "%s#%s\n", pad, v.Name.Span.Slice(src))

		for _, f := range v.Binding {
			printFieldOrComment(w, src, f, depth+1)
		}
	default:
		fmt.Fprintf(w, "%s<unknown settings entry %T>\n", pad, v)
	}
}

func printFieldOrComment(w io.Writer, src string, f ast.FieldOrComment, depth int) {
	pad := indent(depth)

	switch v := f.(type) {
	case ast.Comment:
		fmt.Fprintf(w, "%scomment %q\n", pad, v.Span.Slice(src))
	case ast.Field:
		fmt.Fprintf(w, "%s%s:\n", pad, v.Key.Span.Slice(src))
		printExpression(w, src, v.Value, depth+1)
	default:
		fmt.Fprintf(w, "%s<unknown field %T>\n", pad, v)
	}
}

func printExpression(w io.Writer, src string, e ast.Expression, depth int) {
	pad := indent(depth)

	switch v := e.(type) {
	case ast.ValueExpr:
		printValue(w, src, v.Value, depth)
	case ast.UnaryExpr:
		fmt.Fprintf(w, "%sunary %s\n", pad, v.Op)
		printExpression(w, src, v.Val, depth+1)
	case ast.WithUnitExpr:
		fmt.Fprintf(w, "%sunit %s\n", pad, v.Unit)
		printExpression(w, src, v.Val, depth+1)
	case ast.BinaryExpr:
		fmt.Fprintf(w, "%sbinary %s\n", pad, v.Op)
		printExpression(w, src, v.Left, depth+1)
		printExpression(w, src, v.Right, depth+1)
	default:
		fmt.Fprintf(w, "%s<unknown expression %T>\n", pad, v)
	}
}

func printValue(w io.Writer, src string, v ast.Value, depth int) {
	pad := indent(depth)

	switch val := v.(type) {
	case ast.IntValue:
		fmt.Fprintf(w, "%sint %s\n", pad, val.Span.Slice(src))
	case ast.FloatValue:
		fmt.Fprintf(w, "%sfloat %s\n", pad, val.Span.Slice(src))
	case ast.StringValue:
		fmt.Fprintf(w, "%sstring %s\n", pad, val.Span.Slice(src))
	case ast.Variable:
		parts := make([]string, len(val.Path))
		for i, id := range val.Path {
			parts[i] = id.Span.Slice(src)
		}

		fmt.Fprintf(w, "%svariable %s\n", pad, strings.Join(parts, "."))
	case ast.FunctionCall:
		fmt.Fprintf(w, "%scall %s\n", pad, val.Name.Span.Slice(src))

		for _, arg := range val.Arguments {
			printExpression(w, src, arg, depth+1)
		}
	case ast.EnumVariant:
		fmt.Fprintf(w, "%senum %s::%s\n", pad, val.Name.Span.Slice(src), val.Variant.Span.Slice(src))

		for _, arg := range val.Arguments {
			printExpression(w, src, arg, depth+1)
		}
	case ast.List:
		fmt.Fprintf(w, "%slist\n", pad)

		for _, elem := range val.Elements {
			printExpression(w, src, elem, depth+1)
		}
	case ast.Tuple:
		fmt.Fprintf(w, "%stuple\n", pad)

		for _, elem := range val.Elements {
			printExpression(w, src, elem, depth+1)
		}
	case ast.Object:
		name := "<anonymous>"
		if val.Name != nil {
			name = val.Name.Span.Slice(src)
		}

		fmt.Fprintf(w, "%sobject %s\n", pad, name)

		for _, f := range val.Fields {
			printFieldOrComment(w, src, f, depth+1)
		}
	default:
		fmt.Fprintf(w, "%s<unknown value %T>\n", pad, val)
	}
}
