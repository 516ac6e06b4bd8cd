package dom

import (
	psvi "github.com/jacoelho/xmlpsvi"
	"github.com/jacoelho/xmlpsvi/schema"
)

// Attr is an attribute node. It owns exactly one psvi.AttrResult for its
// lifetime and exposes the attribute PSVI accessor surface pass-through.
type Attr struct {
	owner  *Element
	ns     string
	prefix string
	local  string
	value  string
	result *psvi.AttrResult
}

var _ psvi.AttributePSVI = (*Attr)(nil)

// NodeType returns AttrNode.
func (a *Attr) NodeType() NodeType {
	return AttrNode
}

// NodeName returns the qualified name (prefix:local, or local without prefix).
func (a *Attr) NodeName() string {
	if a.prefix == "" {
		return a.local
	}
	return a.prefix + ":" + a.local
}

// NodeValue returns the attribute value.
func (a *Attr) NodeValue() string {
	return a.value
}

// Name returns the qualified name.
func (a *Attr) Name() string {
	return a.NodeName()
}

// NamespaceURI returns the attribute's namespace, or the empty string.
func (a *Attr) NamespaceURI() string {
	return a.ns
}

// LocalName returns the attribute's local name.
func (a *Attr) LocalName() string {
	return a.local
}

// Prefix returns the attribute's namespace prefix, or the empty string.
func (a *Attr) Prefix() string {
	return a.prefix
}

// Value returns the attribute value.
func (a *Attr) Value() string {
	return a.value
}

// OwnerElement returns the element the attribute is attached to, or nil.
func (a *Attr) OwnerElement() *Element {
	return a.owner
}

// PSVI returns the attribute's owned post-validation record.
func (a *Attr) PSVI() *psvi.AttrResult {
	return a.result
}

// SetPSVI merges a computed outcome onto the attribute's owned record. Same
// synchronization contract as Element.SetPSVI.
func (a *Attr) SetPSVI(source psvi.AttributePSVI) {
	a.result.MergeFrom(source)
}

// AttributeDeclaration returns the declaration used to validate the attribute, or nil.
func (a *Attr) AttributeDeclaration() *schema.AttributeDecl {
	return a.result.AttributeDeclaration()
}

// TypeDefinition returns the simple type that validated the attribute, or nil.
func (a *Attr) TypeDefinition() schema.Type {
	return a.result.TypeDefinition()
}

// IsSchemaSpecified reports whether the value originates from the infoset.
func (a *Attr) IsSchemaSpecified() bool {
	return a.result.IsSchemaSpecified()
}

// ValidationAttempted reports how much of the attribute was validated.
func (a *Attr) ValidationAttempted() psvi.ValidationAttempted {
	return a.result.ValidationAttempted()
}

// Validity reports the outcome classification of the attempt.
func (a *Attr) Validity() psvi.Validity {
	return a.result.Validity()
}

// ErrorCodes returns the recorded error codes, or the shared empty list.
func (a *Attr) ErrorCodes() psvi.StringList {
	return a.result.ErrorCodes()
}

// ErrorMessages returns the recorded error messages, or the shared empty list.
func (a *Attr) ErrorMessages() psvi.StringList {
	return a.result.ErrorMessages()
}

// ValidationContext names the location validation was anchored to.
func (a *Attr) ValidationContext() string {
	return a.result.ValidationContext()
}

// SchemaDefault returns the declaration's value-constraint default.
func (a *Attr) SchemaDefault() string {
	return a.result.SchemaDefault()
}

// SchemaNormalizedValue returns the normalized value after validation.
func (a *Attr) SchemaNormalizedValue() string {
	return a.result.SchemaNormalizedValue()
}

// SchemaValue returns the typed schema value.
func (a *Attr) SchemaValue() psvi.Value {
	return a.result.SchemaValue()
}

// ActualValue returns the type-converted value, or nil if unavailable.
func (a *Attr) ActualValue() any {
	return a.result.ActualValue()
}

// ActualValueKind returns the kind tag of the actual value.
func (a *Attr) ActualValueKind() psvi.Kind {
	return a.result.ActualValueKind()
}

// ListValueKinds returns the per-item kinds for list values, or nil.
func (a *Attr) ListValueKinds() []psvi.Kind {
	return a.result.ListValueKinds()
}

// MemberTypeDefinition returns the union member that matched, or nil.
func (a *Attr) MemberTypeDefinition() *schema.SimpleType {
	return a.result.MemberTypeDefinition()
}
