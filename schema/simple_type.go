package schema

import "fmt"

// SimpleType represents a simple type definition
type SimpleType struct {
	QName           QName
	SourceNamespace NamespaceURI
	Base            Type
	variety         Variety
	// ItemType is the item type for list varieties.
	ItemType *SimpleType
	// MemberTypes are the alternatives for union varieties, in declaration order.
	MemberTypes []*SimpleType
	builtin     bool
}

// NewAtomicSimpleType creates an atomic simple type derived from base.
func NewAtomicSimpleType(name QName, sourceNamespace NamespaceURI, base Type) *SimpleType {
	return &SimpleType{
		QName:           name,
		SourceNamespace: sourceNamespace,
		Base:            base,
		variety:         AtomicVariety,
	}
}

// NewListSimpleType creates a simple type derived by list.
func NewListSimpleType(name QName, sourceNamespace NamespaceURI, itemType *SimpleType) (*SimpleType, error) {
	if itemType == nil {
		return nil, fmt.Errorf("list simpleType %s must have an item type", name)
	}
	return &SimpleType{
		QName:           name,
		SourceNamespace: sourceNamespace,
		variety:         ListVariety,
		ItemType:        itemType,
	}, nil
}

// NewUnionSimpleType creates a simple type derived by union.
func NewUnionSimpleType(name QName, sourceNamespace NamespaceURI, memberTypes []*SimpleType) (*SimpleType, error) {
	if len(memberTypes) == 0 {
		return nil, fmt.Errorf("union simpleType %s must have member types", name)
	}
	return &SimpleType{
		QName:           name,
		SourceNamespace: sourceNamespace,
		variety:         UnionVariety,
		MemberTypes:     memberTypes,
	}, nil
}

// NewBuiltinSimpleType creates a built-in atomic type in the XSD namespace.
func NewBuiltinSimpleType(local string) *SimpleType {
	return &SimpleType{
		QName:           QName{Namespace: XSDNamespace, Local: local},
		SourceNamespace: XSDNamespace,
		variety:         AtomicVariety,
		builtin:         true,
	}
}

// Name returns the QName of the simple type.
func (s *SimpleType) Name() QName {
	return s.QName
}

// Variety returns the variety of the simple type.
func (s *SimpleType) Variety() Variety {
	return s.variety
}

// IsBuiltin reports whether the simple type is built-in.
func (s *SimpleType) IsBuiltin() bool {
	return s.builtin
}

// BaseType returns the base type, or nil at the hierarchy root.
func (s *SimpleType) BaseType() Type {
	return s.Base
}
