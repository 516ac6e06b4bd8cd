package psvi

import "github.com/jacoelho/xmlpsvi/schema"

// AttrResult is the post-schema-validation record for one attribute.
// Attribute types are always simple, so its merge copies the value
// unconditionally; there is no nil clause, notation, or schema-information
// property on attributes.
type AttrResult struct {
	declaration       *schema.AttributeDecl
	typeDefinition    *schema.SimpleType
	specified         bool
	attempted         ValidationAttempted
	validity          Validity
	errorCodes        StringList
	errorMessages     StringList
	validationContext string
	value             ValidatedInfo
}

var _ AttributePSVI = (*AttrResult)(nil)

// NewAttrResult creates a record in the default state.
func NewAttrResult() *AttrResult {
	return &AttrResult{specified: true}
}

// SetAttributeDeclaration records the declaration used to validate the attribute.
func (r *AttrResult) SetAttributeDeclaration(decl *schema.AttributeDecl) {
	r.declaration = decl
}

// SetTypeDefinition records the simple type that validated the attribute.
func (r *AttrResult) SetTypeDefinition(typ *schema.SimpleType) {
	r.typeDefinition = typ
}

// SetSchemaSpecified records whether the value originates from the infoset.
func (r *AttrResult) SetSchemaSpecified(specified bool) {
	r.specified = specified
}

// SetState records the validation-attempted and validity states together.
func (r *AttrResult) SetState(attempted ValidationAttempted, validity Validity) {
	r.attempted = attempted
	r.validity = validity
}

// SetErrors records the index-aligned error code and message lists.
func (r *AttrResult) SetErrors(codes, messages StringList) {
	r.errorCodes = codes
	r.errorMessages = messages
}

// SetValidationContext records the location validation was anchored to.
func (r *AttrResult) SetValidationContext(context string) {
	r.validationContext = context
}

// MutableValue returns the owned value record for the validator to populate.
func (r *AttrResult) MutableValue() *ValidatedInfo {
	return &r.value
}

// MergeFrom overwrites the record with the source outcome. Total copy, same
// contract as ElementResult.MergeFrom; the value is always copied because an
// attribute type always carries character content.
func (r *AttrResult) MergeFrom(source AttributePSVI) {
	r.declaration = source.AttributeDeclaration()
	r.validationContext = source.ValidationContext()
	r.typeDefinition, _ = source.TypeDefinition().(*schema.SimpleType)
	r.validity = source.Validity()
	r.attempted = source.ValidationAttempted()
	r.errorCodes = source.ErrorCodes()
	r.errorMessages = source.ErrorMessages()
	r.value.CopyFrom(source.SchemaValue())
	r.specified = source.IsSchemaSpecified()
}

// AttributeDeclaration returns the declaration used, or nil.
func (r *AttrResult) AttributeDeclaration() *schema.AttributeDecl {
	return r.declaration
}

// TypeDefinition returns the simple type that validated the attribute, or nil.
func (r *AttrResult) TypeDefinition() schema.Type {
	if r.typeDefinition == nil {
		return nil
	}
	return r.typeDefinition
}

// IsSchemaSpecified reports whether the value originates from the infoset.
func (r *AttrResult) IsSchemaSpecified() bool {
	return r.specified
}

// ValidationAttempted reports how much of the attribute was validated.
func (r *AttrResult) ValidationAttempted() ValidationAttempted {
	return r.attempted
}

// Validity reports the outcome classification of the attempt.
func (r *AttrResult) Validity() Validity {
	return r.validity
}

// ErrorCodes returns the recorded error codes, or the shared empty list.
func (r *AttrResult) ErrorCodes() StringList {
	if r.errorCodes != nil {
		return r.errorCodes
	}
	return EmptyStringList
}

// ErrorMessages returns the recorded error messages, or the shared empty list.
func (r *AttrResult) ErrorMessages() StringList {
	if r.errorMessages != nil {
		return r.errorMessages
	}
	return EmptyStringList
}

// ValidationContext names the location validation was anchored to.
func (r *AttrResult) ValidationContext() string {
	return r.validationContext
}

// SchemaDefault returns the declaration's value-constraint default, or the
// empty string without a declaration.
func (r *AttrResult) SchemaDefault() string {
	if r.declaration == nil {
		return ""
	}
	return r.declaration.ConstraintValue()
}

// SchemaNormalizedValue returns the normalized value after validation.
func (r *AttrResult) SchemaNormalizedValue() string {
	return r.value.NormalizedValue()
}

// SchemaValue returns the owned typed schema value.
func (r *AttrResult) SchemaValue() Value {
	return &r.value
}

// ActualValue returns the type-converted value, or nil if unavailable.
func (r *AttrResult) ActualValue() any {
	return r.value.ActualValue()
}

// ActualValueKind returns the kind tag of the actual value.
func (r *AttrResult) ActualValueKind() Kind {
	return r.value.ActualValueKind()
}

// ListValueKinds returns the per-item kinds for list values, or nil.
func (r *AttrResult) ListValueKinds() []Kind {
	return r.value.ListValueKinds()
}

// MemberTypeDefinition returns the union member that matched, or nil.
func (r *AttrResult) MemberTypeDefinition() *schema.SimpleType {
	return r.value.MemberTypeDefinition()
}
