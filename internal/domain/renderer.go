package domain

import (
	"strings"

	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// Render produces the report block of one file. It returns "" when neither an
// included class nor an included function exists, so callers can drop the
// file entirely. The output is byte-for-byte stable for a given input.
func Render(file m.FileModel, opts m.Options) string {
	showClasses := opts.IncludeClasses && len(file.Classes) > 0
	showFunctions := opts.IncludeFunctions && len(file.Functions) > 0

	if !showClasses && !showFunctions {
		return ""
	}

	lines := []string{"=== " + string(file.Path) + ": ===", ""}

	if showClasses {
		for _, class := range file.Classes {
			lines = renderClass(lines, class, opts)
		}
	}

	if showFunctions {
		if opts.Minimalistic {
			lines = append(lines, "  Functions:", "")
		}

		for _, fn := range file.Functions {
			lines = appendDecorators(lines, fn.Decorators, "   @", "  |@")

			if opts.Minimalistic {
				lines = append(lines, "    "+signature(fn))
			} else {
				lines = append(lines, "  Function: "+signature(fn))
			}

			lines = append(lines, "")
		}

		lines = append(lines, "")
	}

	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func renderClass(lines []string, class m.Class, opts m.Options) []string {
	for _, decorator := range class.Decorators {
		lines = append(lines, "  @"+decorator)
	}

	lines = append(lines, "  Class: "+class.Name, "")

	if !opts.NoAttributes && len(class.Attributes) > 0 {
		for _, attr := range class.Attributes {
			lines = append(lines, "    "+attr.Name+typeSuffix(attr.Type))
		}

		lines = append(lines, "")
	}

	for _, method := range class.Methods {
		lines = appendDecorators(lines, method.Decorators, "    @", "    |@")

		if opts.Minimalistic {
			lines = append(lines, "    "+signature(method))
		} else {
			lines = append(lines, "    Method: "+signature(method))
		}

		lines = append(lines, "")
	}

	return lines
}

// appendDecorators writes the first decorator with first and the rest with
// rest. Methods and functions use different prefixes.
func appendDecorators(lines []string, decorators []string, first, rest string) []string {
	for i, decorator := range decorators {
		prefix := rest
		if i == 0 {
			prefix = first
		}

		lines = append(lines, prefix+decorator)
	}

	return lines
}

// signature renders `name(a, b: int) -> str`.
func signature(fn m.Callable) string {
	args := make([]string, 0, len(fn.Parameters))
	for _, param := range fn.Parameters {
		args = append(args, param.Name+typeSuffix(param.Type))
	}

	out := fn.Name + "(" + strings.Join(args, ", ") + ")"
	if text, ok := fn.Returns.Text(); ok {
		out += " -> " + text
	}

	return out
}

func typeSuffix(annotation m.Annotation) string {
	if text, ok := annotation.Text(); ok {
		return ": " + text
	}

	return ""
}
