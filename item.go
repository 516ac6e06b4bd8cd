package psvi

import "github.com/jacoelho/xmlpsvi/schema"

// ItemPSVI is the read-only query surface shared by element and attribute
// post-validation records. Accessors are pure and may be called at any time;
// absent optional references are nil and absent error lists are the shared
// EmptyStringList, never nil.
type ItemPSVI interface {
	// ValidationAttempted reports how much of the item was validated.
	ValidationAttempted() ValidationAttempted
	// Validity reports the outcome classification of the attempt.
	Validity() Validity
	// ErrorCodes returns the recorded error codes, index-aligned with
	// ErrorMessages.
	ErrorCodes() StringList
	// ErrorMessages returns the recorded error messages.
	ErrorMessages() StringList
	// ValidationContext names the location validation was anchored to,
	// a qualified name or path expression.
	ValidationContext() string
	// IsSchemaSpecified reports whether the value originates from the
	// infoset; false means the schema supplied a default.
	IsSchemaSpecified() bool
	// SchemaDefault returns the declaration's value-constraint default,
	// or the empty string without a declaration.
	SchemaDefault() string
	// SchemaNormalizedValue returns the normalized value after validation.
	SchemaNormalizedValue() string
	// SchemaValue returns the typed schema value.
	SchemaValue() Value
	// ActualValue returns the type-converted value.
	ActualValue() any
	// ActualValueKind returns the kind tag of the actual value.
	ActualValueKind() Kind
	// ListValueKinds returns the per-item kinds for list values.
	ListValueKinds() []Kind
	// MemberTypeDefinition returns the union member that matched, or nil.
	MemberTypeDefinition() *schema.SimpleType
	// TypeDefinition returns the type that validated the item, or nil.
	TypeDefinition() schema.Type
}

// ElementPSVI extends ItemPSVI with the element-only infoset properties.
type ElementPSVI interface {
	ItemPSVI

	// ElementDeclaration returns the declaration used, or nil.
	ElementDeclaration() *schema.ElementDecl
	// Nil reports whether the element satisfied the schema's nil clause.
	Nil() bool
	// Notation returns the notation declaration for NOTATION-typed
	// content, or nil.
	Notation() *schema.NotationDecl
	// SchemaInformation returns the schema model on the validation root,
	// nil elsewhere.
	SchemaInformation() *schema.Schema
}

// AttributePSVI extends ItemPSVI with the attribute declaration.
type AttributePSVI interface {
	ItemPSVI

	// AttributeDeclaration returns the declaration used, or nil.
	AttributeDeclaration() *schema.AttributeDecl
}
