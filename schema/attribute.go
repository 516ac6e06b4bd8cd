package schema

import "fmt"

// AttributeDecl represents an attribute declaration
type AttributeDecl struct {
	Name    QName
	Type    *SimpleType
	Default string
	Fixed   string
	// True if fixed attribute was explicitly set (even if empty)
	HasFixed bool
	// targetNamespace of the schema where this attribute was originally declared
	SourceNamespace NamespaceURI
}

// NewAttributeDeclFromParsed validates a parsed attribute declaration and returns it if valid.
func NewAttributeDeclFromParsed(decl *AttributeDecl) (*AttributeDecl, error) {
	if decl == nil {
		return nil, fmt.Errorf("attribute declaration is nil")
	}
	if decl.Name.IsZero() {
		return nil, fmt.Errorf("attribute declaration missing name")
	}
	if decl.Type == nil {
		return nil, fmt.Errorf("attribute %s must declare a type", decl.Name)
	}
	if decl.HasFixed && decl.Default != "" {
		return nil, fmt.Errorf("attribute %s cannot have both default and fixed", decl.Name)
	}
	return decl, nil
}

// ComponentName returns the QName of this component.
// Implements SchemaComponent interface.
func (a *AttributeDecl) ComponentName() QName {
	return a.Name
}

// DeclaredNamespace returns the targetNamespace where this component was declared.
// Implements SchemaComponent interface.
func (a *AttributeDecl) DeclaredNamespace() NamespaceURI {
	return a.SourceNamespace
}

// ConstraintValue returns the canonical lexical form of the declaration's
// value constraint: the fixed value if one was set, otherwise the default,
// otherwise the empty string.
func (a *AttributeDecl) ConstraintValue() string {
	if a.HasFixed {
		return a.Fixed
	}
	return a.Default
}
