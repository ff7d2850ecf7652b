package model

import "fmt"

// ParseFailure reports a file whose content is not valid Python syntax.
// Line and Column are 1-based and point at the first syntax error.
type ParseFailure struct {
	Path   Path
	Line   int
	Column int
}

func (e *ParseFailure) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: invalid syntax", e.Path)
	}

	return fmt.Sprintf("%s:%d:%d: invalid syntax", e.Path, e.Line, e.Column)
}

// IOFailure reports a file that could not be read or decoded.
type IOFailure struct {
	Path Path
	Err  error
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOFailure) Unwrap() error {
	return e.Err
}
