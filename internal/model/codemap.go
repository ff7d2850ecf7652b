package model

// Annotation is the unparsed text of a type annotation. The zero value means
// the source carried no annotation at all.
type Annotation struct {
	text    string
	present bool
}

// Annotated returns an Annotation holding text.
func Annotated(text string) Annotation {
	return Annotation{text: text, present: true}
}

// Text returns the annotation text and whether an annotation was written.
func (a Annotation) Text() (string, bool) {
	return a.text, a.present
}

// IsZero reports whether no annotation was written. yaml.v3 uses it for omitempty.
func (a Annotation) IsZero() bool {
	return !a.present
}

// String returns the annotation text, or "" when absent.
func (a Annotation) String() string {
	return a.text
}

// MarshalYAML encodes a missing annotation as null.
func (a Annotation) MarshalYAML() (interface{}, error) {
	if !a.present {
		return nil, nil
	}

	return a.text, nil
}

// Parameter is one entry of a normalized parameter list. Variadic parameters
// carry their `*` or `**` marker in Name and never have a Type.
type Parameter struct {
	Name string     `yaml:"name"`
	Type Annotation `yaml:"type,omitempty"`
}

// Callable describes a function or a method. Functions live on FileModel,
// methods on Class.
type Callable struct {
	Name       string      `yaml:"name"`
	Parameters []Parameter `yaml:"parameters,omitempty"`
	Returns    Annotation  `yaml:"returns,omitempty"`
	Decorators []string    `yaml:"decorators,omitempty"`
}

// Attribute is a class-level assignment to a simple name.
type Attribute struct {
	Name string     `yaml:"name"`
	Type Annotation `yaml:"type,omitempty"`
}

// Class describes a top-level class declaration.
type Class struct {
	Name       string      `yaml:"name"`
	Decorators []string    `yaml:"decorators,omitempty"`
	Attributes []Attribute `yaml:"attributes,omitempty"`
	Methods    []Callable  `yaml:"methods,omitempty"`
}

// FileModel is the structural summary of one source file. Every slice keeps
// source order.
type FileModel struct {
	Path      Path       `yaml:"path"`
	Classes   []Class    `yaml:"classes,omitempty"`
	Functions []Callable `yaml:"functions,omitempty"`
}

// IsEmpty reports whether the file declares no class and no function.
func (f FileModel) IsEmpty() bool {
	return len(f.Classes) == 0 && len(f.Functions) == 0
}

// DecoratorExpr is the shape of a decorator expression: BareReference,
// DecoratorCall or OtherExpr.
type DecoratorExpr interface {
	isDecoratorExpr()
}

// BareReference is a decorator written as a plain name, e.g. `@staticmethod`.
type BareReference struct {
	Name string
}

// DecoratorCall is a decorator invoked with arguments, e.g. `@lru_cache(128)`.
// Args holds the unparsed positional arguments.
type DecoratorCall struct {
	Callee string
	Args   []string
}

// OtherExpr is any other decorator expression, e.g. `@app.route` or `@x[0]`.
type OtherExpr struct {
	Text string
}

func (BareReference) isDecoratorExpr() {}
func (DecoratorCall) isDecoratorExpr() {}
func (OtherExpr) isDecoratorExpr()     {}
