package schema

// SchemaComponent is implemented by named schema components that know the
// namespace they were declared in.
type SchemaComponent interface {
	ComponentName() QName
	DeclaredNamespace() NamespaceURI
}
