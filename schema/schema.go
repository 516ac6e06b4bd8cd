package schema

// Schema is the root of a compiled schema model: the global components a
// validation episode resolved against. It is populated once by the compiler
// and read-only afterwards; nodes reference it as their schema information.
type Schema struct {
	elements  map[QName]*ElementDecl
	types     map[QName]Type
	notations map[QName]*NotationDecl
}

// NewSchema creates an empty schema model.
func NewSchema() *Schema {
	return &Schema{
		elements:  make(map[QName]*ElementDecl),
		types:     make(map[QName]Type),
		notations: make(map[QName]*NotationDecl),
	}
}

// AddElementDecl registers a global element declaration.
func (s *Schema) AddElementDecl(decl *ElementDecl) {
	s.elements[decl.Name] = decl
}

// AddType registers a global type definition.
func (s *Schema) AddType(typ Type) {
	s.types[typ.Name()] = typ
}

// AddNotationDecl registers a global notation declaration.
func (s *Schema) AddNotationDecl(decl *NotationDecl) {
	s.notations[decl.Name] = decl
}

// ElementDecl returns the global element declaration with the given name, or nil.
func (s *Schema) ElementDecl(name QName) *ElementDecl {
	return s.elements[name]
}

// Type returns the global type definition with the given name, or nil.
func (s *Schema) Type(name QName) Type {
	return s.types[name]
}

// NotationDecl returns the global notation declaration with the given name, or nil.
func (s *Schema) NotationDecl(name QName) *NotationDecl {
	return s.notations[name]
}

// Namespaces returns the distinct target namespaces of all registered
// components, in unspecified order.
func (s *Schema) Namespaces() []NamespaceURI {
	seen := make(map[NamespaceURI]struct{})
	for name := range s.elements {
		seen[name.Namespace] = struct{}{}
	}
	for name := range s.types {
		seen[name.Namespace] = struct{}{}
	}
	for name := range s.notations {
		seen[name.Namespace] = struct{}{}
	}
	namespaces := make([]NamespaceURI, 0, len(seen))
	for ns := range seen {
		namespaces = append(namespaces, ns)
	}
	return namespaces
}
