package domain

import (
	"bytes"
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"pycodemap.dev/pkg/pycodemap/internal/adapter"
	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Extractor turns the source of one Python file into its FileModel.
type Extractor interface {
	// Extract parses src and collects the top-level classes and functions
	// allowed by opts. Invalid syntax fails with *model.ParseFailure.
	Extract(ctx context.Context, path m.Path, src []byte, opts m.Options) (m.FileModel, error)
}

type extractor struct {
	adapter.PythonFileAdapter
}

// NewExtractor creates an Extractor that parses with py.
func NewExtractor(py adapter.PythonFileAdapter) Extractor {
	return &extractor{PythonFileAdapter: py}
}

func (e *extractor) Extract(ctx context.Context, path m.Path, src []byte, opts m.Options) (m.FileModel, error) {
	src = bytes.TrimPrefix(src, utf8BOM)

	tree, err := e.Parse(ctx, path, src)
	if err != nil {
		return m.FileModel{}, err
	}
	defer tree.Close()

	text := func(node *sitter.Node) string {
		return e.Unparse(node, src)
	}

	return extractModule(tree.RootNode(), path, text, opts), nil
}

// extractModule walks the direct children of the module in source order.
// Imports and module-level code are ignored.
func extractModule(root *sitter.Node, path m.Path, text textFunc, opts m.Options) m.FileModel {
	file := m.FileModel{Path: path}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		def, decorators := unwrapDecorated(root.NamedChild(i), text)
		if def == nil {
			continue
		}

		switch def.Type() {
		case "class_definition":
			if opts.IncludeClasses {
				file.Classes = append(file.Classes, extractClass(def, decorators, text, opts))
			}
		case "function_definition":
			if opts.IncludeFunctions && (opts.IncludeAsync || !isAsync(def)) {
				file.Functions = append(file.Functions, extractCallable(def, decorators, text))
			}
		}
	}

	return file
}

// extractClass looks only at direct children of the class body: methods and
// simple attribute assignments. Nested classes and blocks are not entered.
func extractClass(def *sitter.Node, decorators []string, text textFunc, opts m.Options) m.Class {
	class := m.Class{
		Name:       text(def.ChildByFieldName("name")),
		Decorators: decorators,
	}

	body := def.ChildByFieldName("body")
	if body == nil {
		return class
	}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)

		if stmt.Type() == "expression_statement" {
			if attr, ok := attributeOf(stmt, text); ok {
				class.Attributes = append(class.Attributes, attr)
			}

			continue
		}

		member, memberDecorators := unwrapDecorated(stmt, text)
		if member == nil || member.Type() != "function_definition" {
			continue
		}

		if opts.IncludeAsync || !isAsync(member) {
			class.Methods = append(class.Methods, extractCallable(member, memberDecorators, text))
		}
	}

	return class
}

func extractCallable(def *sitter.Node, decorators []string, text textFunc) m.Callable {
	params, returns := NormalizeSignature(def, text)

	return m.Callable{
		Name:       text(def.ChildByFieldName("name")),
		Parameters: params,
		Returns:    returns,
		Decorators: decorators,
	}
}

// attributeOf is partial: only an assignment whose target is a single bare
// name yields an attribute. Tuple, attribute and subscript targets, augmented
// assignments and bare expressions are skipped without diagnostic.
func attributeOf(stmt *sitter.Node, text textFunc) (m.Attribute, bool) {
	var assign *sitter.Node

	for i := 0; i < int(stmt.NamedChildCount()); i++ {
		child := stmt.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}

		if assign != nil {
			return m.Attribute{}, false
		}

		assign = child
	}

	if assign == nil || assign.Type() != "assignment" {
		return m.Attribute{}, false
	}

	left := assign.ChildByFieldName("left")
	if left == nil || left.Type() != "identifier" {
		return m.Attribute{}, false
	}

	attr := m.Attribute{Name: text(left)}
	if annotation := assign.ChildByFieldName("type"); annotation != nil {
		attr.Type = m.Annotated(text(annotation))
	}

	return attr, true
}

// unwrapDecorated returns the definition behind a decorated_definition along
// with its rendered decorators; other nodes come back unchanged.
func unwrapDecorated(node *sitter.Node, text textFunc) (*sitter.Node, []string) {
	if node.Type() != "decorated_definition" {
		return node, nil
	}

	return node.ChildByFieldName("definition"), decoratorsOf(node, text)
}

func isAsync(def *sitter.Node) bool {
	first := def.Child(0)

	return first != nil && first.Type() == "async"
}
