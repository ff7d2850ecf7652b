package domain

import (
	sitter "github.com/smacker/go-tree-sitter"

	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// textFunc returns the canonical text of a node of the file being extracted.
type textFunc func(node *sitter.Node) string

// NormalizeSignature turns the parameter list and return annotation of a
// function_definition node into ordered records. Positional parameters come
// first, then `*args`, then `**kwargs`. Positional-only parameters (before `/`)
// and keyword-only parameters are left out, and variadic parameters never keep
// their annotation.
func NormalizeSignature(fn *sitter.Node, text textFunc) ([]m.Parameter, m.Annotation) {
	var (
		params      []m.Parameter
		vararg      *m.Parameter
		kwarg       *m.Parameter
		keywordOnly bool
	)

	positional := func(name *sitter.Node, annotation *sitter.Node) {
		if keywordOnly || name == nil || name.Type() != "identifier" {
			return
		}

		param := m.Parameter{Name: text(name)}
		if annotation != nil {
			param.Type = m.Annotated(text(annotation))
		}

		params = append(params, param)
	}

	splat := func(node *sitter.Node) {
		switch node.Type() {
		case "list_splat_pattern":
			vararg = &m.Parameter{Name: "*" + splatName(node, text)}
			keywordOnly = true
		case "dictionary_splat_pattern":
			kwarg = &m.Parameter{Name: "**" + splatName(node, text)}
		}
	}

	if list := fn.ChildByFieldName("parameters"); list != nil {
		for i := 0; i < int(list.NamedChildCount()); i++ {
			param := list.NamedChild(i)

			switch param.Type() {
			case "identifier":
				positional(param, nil)
			case "default_parameter":
				positional(param.ChildByFieldName("name"), nil)
			case "typed_parameter":
				name := param.NamedChild(0)
				if name != nil && (name.Type() == "list_splat_pattern" || name.Type() == "dictionary_splat_pattern") {
					splat(name)
					continue
				}

				positional(name, param.ChildByFieldName("type"))
			case "typed_default_parameter":
				positional(param.ChildByFieldName("name"), param.ChildByFieldName("type"))
			case "list_splat_pattern", "dictionary_splat_pattern":
				splat(param)
			case "positional_separator":
				params = nil
			case "keyword_separator":
				keywordOnly = true
			}
		}
	}

	if vararg != nil {
		params = append(params, *vararg)
	}

	if kwarg != nil {
		params = append(params, *kwarg)
	}

	var returns m.Annotation
	if node := fn.ChildByFieldName("return_type"); node != nil {
		returns = m.Annotated(text(node))
	}

	return params, returns
}

func splatName(node *sitter.Node, text textFunc) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() != "comment" {
			return text(child)
		}
	}

	return ""
}
