package schema

import "fmt"

// ElementDecl represents an element declaration
type ElementDecl struct {
	Name     QName
	Type     Type
	Nillable bool
	Abstract bool
	Default  string
	Fixed    string
	// True if fixed attribute was explicitly set (even if empty)
	HasFixed bool
	// targetNamespace of the schema where this element was originally declared
	SourceNamespace NamespaceURI
}

// NewElementDeclFromParsed validates a parsed element declaration and returns it if valid.
func NewElementDeclFromParsed(decl *ElementDecl) (*ElementDecl, error) {
	if decl == nil {
		return nil, fmt.Errorf("element declaration is nil")
	}
	if decl.Name.IsZero() {
		return nil, fmt.Errorf("element declaration missing name")
	}
	if decl.Type == nil {
		return nil, fmt.Errorf("element %s must declare a type", decl.Name)
	}
	if decl.HasFixed && decl.Default != "" {
		return nil, fmt.Errorf("element %s cannot have both default and fixed", decl.Name)
	}
	return decl, nil
}

// ComponentName returns the QName of this component.
// Implements SchemaComponent interface.
func (e *ElementDecl) ComponentName() QName {
	return e.Name
}

// DeclaredNamespace returns the targetNamespace where this component was declared.
// Implements SchemaComponent interface.
func (e *ElementDecl) DeclaredNamespace() NamespaceURI {
	return e.SourceNamespace
}

// ConstraintValue returns the canonical lexical form of the declaration's
// value constraint: the fixed value if one was set, otherwise the default,
// otherwise the empty string.
func (e *ElementDecl) ConstraintValue() string {
	if e.HasFixed {
		return e.Fixed
	}
	return e.Default
}
