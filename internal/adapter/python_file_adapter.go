package adapter

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// PythonFileAdapter encapsulates the tree-sitter specifics so the domain layer
// only deals with node kinds and canonical expression text.
type PythonFileAdapter interface {
	// Parse builds a syntax tree for src. A tree containing syntax errors is
	// rejected with *model.ParseFailure. Callers must Close the returned tree.
	Parse(ctx context.Context, path m.Path, src []byte) (*sitter.Tree, error)

	// Unparse returns the canonical single-line text of an expression node.
	Unparse(node *sitter.Node, src []byte) string
}

// LocalPythonFileAdapter provides a PythonFileAdapter backed by the
// tree-sitter Python grammar.
type LocalPythonFileAdapter struct{}

// NewLocalPythonFileAdapter constructs a LocalPythonFileAdapter.
func NewLocalPythonFileAdapter() *LocalPythonFileAdapter {
	return &LocalPythonFileAdapter{}
}

// Parse parses src with a fresh parser; nothing is shared between calls.
func (a *LocalPythonFileAdapter) Parse(ctx context.Context, path m.Path, src []byte) (*sitter.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}

	root := tree.RootNode()
	if root == nil {
		tree.Close()
		return nil, &m.ParseFailure{Path: path}
	}

	if root.HasError() {
		line, column := firstErrorPosition(root)
		tree.Close()

		return nil, &m.ParseFailure{Path: path, Line: line, Column: column}
	}

	if node := findLegacyStatement(root); node != nil {
		point := node.StartPoint()
		tree.Close()

		return nil, &m.ParseFailure{Path: path, Line: int(point.Row) + 1, Column: int(point.Column) + 1}
	}

	return tree, nil
}

// legacyStatements are Python 2 statements the grammar still accepts but
// Python 3 rejects.
var legacyStatements = map[string]bool{
	"print_statement": true,
	"exec_statement":  true,
}

// findLegacyStatement returns the first Python 2 only statement in document
// order, or nil.
func findLegacyStatement(node *sitter.Node) *sitter.Node {
	if legacyStatements[node.Type()] {
		return node
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		if found := findLegacyStatement(node.NamedChild(i)); found != nil {
			return found
		}
	}

	return nil
}

// firstErrorPosition finds the first ERROR or missing node in document order.
func firstErrorPosition(node *sitter.Node) (int, int) {
	if node.Type() == "ERROR" || node.IsMissing() {
		point := node.StartPoint()
		return int(point.Row) + 1, int(point.Column) + 1
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}

		if line, column := firstErrorPosition(child); line > 0 {
			return line, column
		}
	}

	point := node.StartPoint()

	return int(point.Row) + 1, int(point.Column) + 1
}

// Unparse re-assembles the leaf tokens of node the way Python's ast.unparse
// prints them. Comments and line continuations are dropped. A comma is
// followed by one space, brackets hug their contents and a trailing comma
// before `]` or `}` is dropped. Binary, comparison and boolean operators get
// one space on each side; unary operators, keyword `=` and slice `:` hug their
// operands. Plain string literals are re-quoted the way repr quotes them. Any
// other run of whitespace between two tokens collapses to a single space.
func (a *LocalPythonFileAdapter) Unparse(node *sitter.Node, src []byte) string {
	if node == nil {
		return ""
	}

	var (
		b            strings.Builder
		prev         string
		prevEnd      uint32
		started      bool
		pendingComma bool
		pendingAfter spacing
	)

	emit := func(token string, spaced bool, before, after spacing) {
		if pendingComma {
			pendingComma = false

			if token != "]" && token != "}" {
				b.WriteString(",")
			}
		}

		if token == "," {
			pendingComma = true
			prev = token
			pendingAfter = spacingSource

			return
		}

		if started {
			sep := tokenSeparator(prev, token, spaced)

			switch pendingAfter {
			case spacingSpace:
				sep = " "
			case spacingNone:
				sep = ""
			}

			switch before {
			case spacingSpace:
				sep = " "
			case spacingNone:
				sep = ""
			}

			b.WriteString(sep)
		}

		b.WriteString(token)

		prev, started, pendingAfter = token, true, after
	}

	var visit func(n *sitter.Node, parent string)

	visit = func(n *sitter.Node, parent string) {
		switch n.Type() {
		case "comment", "line_continuation":
			return
		case "not in", "is not":
			emit(n.Type(), true, spacingSpace, spacingSpace)
			prevEnd = n.EndByte()

			return
		}

		if n.ChildCount() == 0 || n.Type() == "string" {
			token := n.Content(src)
			if n.Type() == "string" {
				token = requote(token)
			}

			if token == "" {
				return
			}

			before, after := operatorSpacing(n, parent)
			emit(token, started && n.StartByte() > prevEnd, before, after)
			prevEnd = n.EndByte()

			return
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			if child := n.Child(i); child != nil {
				visit(child, n.Type())
			}
		}
	}

	visit(node, "")

	if pendingComma {
		b.WriteString(",")
	}

	return b.String()
}

// spacing overrides the separator on one side of a token.
type spacing int

const (
	spacingSource spacing = iota
	spacingSpace
	spacingNone
)

// operatorSpacing classifies an anonymous leaf by the expression it belongs
// to and returns the separators it wants before and after itself.
func operatorSpacing(n *sitter.Node, parent string) (spacing, spacing) {
	if n.IsNamed() {
		return spacingSource, spacingSource
	}

	switch parent {
	case "binary_operator", "comparison_operator", "boolean_operator":
		return spacingSpace, spacingSpace
	case "unary_operator":
		return spacingSource, spacingNone
	case "keyword_argument", "default_parameter":
		if n.Type() == "=" {
			return spacingNone, spacingNone
		}
	case "slice":
		if n.Type() == ":" {
			return spacingNone, spacingNone
		}
	case "pair":
		if n.Type() == ":" {
			return spacingNone, spacingSpace
		}
	}

	return spacingSource, spacingSource
}

// requote rewrites a plain string literal with the quotes repr would choose.
// Literals with a prefix, triple quotes, escapes or non-printable characters
// are returned unchanged.
func requote(literal string) string {
	if len(literal) < 2 {
		return literal
	}

	quote := literal[0]
	if quote != '\'' && quote != '"' {
		return literal
	}

	if strings.HasPrefix(literal, `"""`) || strings.HasPrefix(literal, "'''") || literal[len(literal)-1] != quote {
		return literal
	}

	body := literal[1 : len(literal)-1]
	if strings.ContainsRune(body, '\\') {
		return literal
	}

	for _, r := range body {
		if !unicode.IsPrint(r) {
			return literal
		}
	}

	if strings.ContainsRune(body, '\'') {
		return `"` + body + `"`
	}

	return "'" + body + "'"
}

func tokenSeparator(prev, token string, spaced bool) string {
	switch token {
	case ")", "]", "}":
		return ""
	}

	switch prev {
	case ",":
		return " "
	case "(", "[", "{":
		return ""
	}

	if spaced {
		return " "
	}

	return ""
}
