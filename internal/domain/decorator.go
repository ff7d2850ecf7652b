package domain

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// ClassifyDecorator maps a decorator expression node onto its shape.
func ClassifyDecorator(expr *sitter.Node, text textFunc) m.DecoratorExpr {
	switch expr.Type() {
	case "identifier":
		return m.BareReference{Name: text(expr)}
	case "call":
		return m.DecoratorCall{
			Callee: text(expr.ChildByFieldName("function")),
			Args:   positionalArgs(expr.ChildByFieldName("arguments"), text),
		}
	default:
		return m.OtherExpr{Text: text(expr)}
	}
}

// positionalArgs keeps plain and `*x` arguments; keyword arguments and `**x`
// are not part of the rendered decorator.
func positionalArgs(args *sitter.Node, text textFunc) []string {
	if args == nil {
		return nil
	}

	if args.Type() == "generator_expression" {
		return []string{text(args)}
	}

	var out []string

	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)

		switch arg.Type() {
		case "keyword_argument", "dictionary_splat", "comment":
			continue
		}

		out = append(out, text(arg))
	}

	return out
}

// RenderDecorator produces the display text of one decorator. A call without
// arguments renders like a bare reference.
func RenderDecorator(expr m.DecoratorExpr) string {
	switch d := expr.(type) {
	case m.BareReference:
		return d.Name
	case m.DecoratorCall:
		if len(d.Args) == 0 {
			return d.Callee
		}

		return d.Callee + "(" + strings.Join(d.Args, ", ") + ")"
	case m.OtherExpr:
		return d.Text
	default:
		return ""
	}
}

// decoratorsOf renders the decorators of a decorated_definition node in
// source order.
func decoratorsOf(node *sitter.Node, text textFunc) []string {
	var out []string

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "decorator" {
			continue
		}

		if expr := decoratorExpression(child); expr != nil {
			out = append(out, RenderDecorator(ClassifyDecorator(expr, text)))
		}
	}

	return out
}

func decoratorExpression(decorator *sitter.Node) *sitter.Node {
	for i := 0; i < int(decorator.NamedChildCount()); i++ {
		if child := decorator.NamedChild(i); child.Type() != "comment" {
			return child
		}
	}

	return nil
}
