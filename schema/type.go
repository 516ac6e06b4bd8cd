// Package schema holds the schema-model components that post-validation
// records reference: type definitions, element and attribute declarations,
// notations, and the schema root itself. Components are built once by a
// schema compiler and shared read-only by every node validated against them.
package schema

// XSDNamespace is the XML Schema namespace URI.
const XSDNamespace NamespaceURI = "http://www.w3.org/2001/XMLSchema"

// Type represents an XSD type definition (simple or complex).
type Type interface {
	Name() QName
}

// Variety classifies a simple type definition.
type Variety int

const (
	// AtomicVariety indicates an atomic simple type.
	AtomicVariety Variety = iota
	// ListVariety indicates a list simple type.
	ListVariety
	// UnionVariety indicates a union simple type.
	UnionVariety
)

// String returns the string form of the variety.
func (v Variety) String() string {
	switch v {
	case AtomicVariety:
		return "atomic"
	case ListVariety:
		return "list"
	case UnionVariety:
		return "union"
	default:
		return "unknown"
	}
}

// ContentKind classifies the content type of a complex type definition.
type ContentKind int

const (
	// ContentEmpty indicates the type allows no content.
	ContentEmpty ContentKind = iota
	// ContentSimple indicates text-only content governed by a simple type.
	ContentSimple
	// ContentElementOnly indicates element-only content.
	ContentElementOnly
	// ContentMixed indicates mixed text and element content.
	ContentMixed
)

// String returns the string form of the content kind.
func (c ContentKind) String() string {
	switch c {
	case ContentEmpty:
		return "empty"
	case ContentSimple:
		return "simple"
	case ContentElementOnly:
		return "elementOnly"
	case ContentMixed:
		return "mixed"
	default:
		return "unknown"
	}
}
