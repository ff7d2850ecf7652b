package model

import "errors"

// ErrConflictingScope is returned when a configuration excludes both classes
// and functions, leaving nothing to summarize.
var ErrConflictingScope = errors.New("you can't use both --functions-only and --classes-only")

// Options controls what gets extracted and how it is rendered.
type Options struct {
	IncludeClasses   bool
	IncludeFunctions bool
	Minimalistic     bool
	NoAttributes     bool
	// IncludeAsync extracts `async def` declarations like plain ones.
	IncludeAsync bool
}

// DefaultOptions includes classes and functions in full mode.
func DefaultOptions() Options {
	return Options{
		IncludeClasses:   true,
		IncludeFunctions: true,
	}
}

// ScopeOptions derives the inclusion toggles from the --functions-only and
// --classes-only switches.
func ScopeOptions(functionsOnly, classesOnly bool) (Options, error) {
	if functionsOnly && classesOnly {
		return Options{}, ErrConflictingScope
	}

	opts := DefaultOptions()
	opts.IncludeClasses = !functionsOnly
	opts.IncludeFunctions = !classesOnly

	return opts, nil
}

// Validate refuses options that would silently exclude everything.
func (o Options) Validate() error {
	if !o.IncludeClasses && !o.IncludeFunctions {
		return ErrConflictingScope
	}

	return nil
}
