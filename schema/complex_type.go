package schema

import "fmt"

// ComplexType represents a complex type definition
type ComplexType struct {
	QName           QName
	SourceNamespace NamespaceURI
	Base            Type
	content         ContentKind
	// simpleContent is the simple type governing character content;
	// set if and only if the content kind is ContentSimple.
	simpleContent *SimpleType
	Abstract      bool
}

// NewComplexType creates a complex type with element-only, mixed, or empty content.
func NewComplexType(name QName, sourceNamespace NamespaceURI, content ContentKind) (*ComplexType, error) {
	if content == ContentSimple {
		return nil, fmt.Errorf("complexType %s with simple content must declare its simple type", name)
	}
	return &ComplexType{
		QName:           name,
		SourceNamespace: sourceNamespace,
		content:         content,
	}, nil
}

// NewSimpleContentComplexType creates a complex type whose content is governed
// by the given simple type.
func NewSimpleContentComplexType(name QName, sourceNamespace NamespaceURI, simpleContent *SimpleType) (*ComplexType, error) {
	if simpleContent == nil {
		return nil, fmt.Errorf("complexType %s must declare a simple content type", name)
	}
	return &ComplexType{
		QName:           name,
		SourceNamespace: sourceNamespace,
		content:         ContentSimple,
		simpleContent:   simpleContent,
	}, nil
}

// Name returns the QName of the complex type.
func (c *ComplexType) Name() QName {
	return c.QName
}

// ContentType returns the content kind of the complex type.
func (c *ComplexType) ContentType() ContentKind {
	return c.content
}

// SimpleContentType returns the simple type governing character content,
// or nil when the content kind is not ContentSimple.
func (c *ComplexType) SimpleContentType() *SimpleType {
	return c.simpleContent
}

// BaseType returns the base type, or nil at the hierarchy root.
func (c *ComplexType) BaseType() Type {
	return c.Base
}
