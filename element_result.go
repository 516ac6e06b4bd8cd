package psvi

import "github.com/jacoelho/xmlpsvi/schema"

// ElementResult is the post-schema-validation record for one element. A
// fresh record reports (AttemptedNone, ValidityUnknown) with a reset value;
// the validation engine fills it in during a pass, and MergeFrom transfers a
// computed outcome onto the record owned by a persistent node.
//
// The record is not internally synchronized: at most one MergeFrom may be
// in flight per record, and readers must not race a merge.
type ElementResult struct {
	declaration       *schema.ElementDecl
	typeDefinition    schema.Type
	nilled            bool
	specified         bool
	notation          *schema.NotationDecl
	attempted         ValidationAttempted
	validity          Validity
	errorCodes        StringList
	errorMessages     StringList
	validationContext string
	schemaInformation *schema.Schema
	value             ValidatedInfo
}

var _ ElementPSVI = (*ElementResult)(nil)

// NewElementResult creates a record in the default state: nothing attempted,
// validity unknown, value reset, and the value regarded as infoset-specified.
func NewElementResult() *ElementResult {
	return &ElementResult{specified: true}
}

// SetElementDeclaration records the declaration used to validate the element.
func (r *ElementResult) SetElementDeclaration(decl *schema.ElementDecl) {
	r.declaration = decl
}

// SetTypeDefinition records the type that validated the element.
func (r *ElementResult) SetTypeDefinition(typ schema.Type) {
	r.typeDefinition = typ
}

// SetNil records whether the element satisfied the schema's nil clause.
func (r *ElementResult) SetNil(nilled bool) {
	r.nilled = nilled
}

// SetSchemaSpecified records whether the value originates from the infoset.
func (r *ElementResult) SetSchemaSpecified(specified bool) {
	r.specified = specified
}

// SetNotation records the notation declaration for NOTATION-typed content.
func (r *ElementResult) SetNotation(notation *schema.NotationDecl) {
	r.notation = notation
}

// SetState records the validation-attempted and validity states together;
// the two are only meaningful as a pair from the same validation pass.
func (r *ElementResult) SetState(attempted ValidationAttempted, validity Validity) {
	r.attempted = attempted
	r.validity = validity
}

// SetErrors records the index-aligned error code and message lists.
func (r *ElementResult) SetErrors(codes, messages StringList) {
	r.errorCodes = codes
	r.errorMessages = messages
}

// SetValidationContext records the location validation was anchored to.
func (r *ElementResult) SetValidationContext(context string) {
	r.validationContext = context
}

// SetSchemaInformation records the schema model; set only on the node that
// is the root of a validation episode.
func (r *ElementResult) SetSchemaInformation(s *schema.Schema) {
	r.schemaInformation = s
}

// MutableValue returns the owned value record for the validator to populate.
func (r *ElementResult) MutableValue() *ValidatedInfo {
	return &r.value
}

// MergeFrom overwrites the record with the source outcome. The copy is total:
// every field is assigned from the source, except that the value is reset
// rather than copied when the source type cannot carry character content
// (anything but a simple type or a complex type with simple content).
//
// The assignment order is fixed: references and states first, then the value
// decision, then specified and nil.
func (r *ElementResult) MergeFrom(source ElementPSVI) {
	r.declaration = source.ElementDeclaration()
	r.notation = source.Notation()
	r.validationContext = source.ValidationContext()
	r.typeDefinition = source.TypeDefinition()
	r.schemaInformation = source.SchemaInformation()
	r.validity = source.Validity()
	r.attempted = source.ValidationAttempted()
	r.errorCodes = source.ErrorCodes()
	r.errorMessages = source.ErrorMessages()
	if typeCarriesValue(r.typeDefinition) {
		r.value.CopyFrom(source.SchemaValue())
	} else {
		r.value.Reset()
	}
	r.specified = source.IsSchemaSpecified()
	r.nilled = source.Nil()
}

// typeCarriesValue reports whether a type definition can carry a typed
// character-content value: a simple type, or a complex type whose content
// is classified simple.
func typeCarriesValue(typ schema.Type) bool {
	switch t := typ.(type) {
	case *schema.SimpleType:
		return true
	case *schema.ComplexType:
		return t.ContentType() == schema.ContentSimple
	default:
		return false
	}
}

// ElementDeclaration returns the declaration used, or nil.
func (r *ElementResult) ElementDeclaration() *schema.ElementDecl {
	return r.declaration
}

// TypeDefinition returns the type that validated the element, or nil.
func (r *ElementResult) TypeDefinition() schema.Type {
	return r.typeDefinition
}

// Nil reports whether the element satisfied the schema's nil clause.
func (r *ElementResult) Nil() bool {
	return r.nilled
}

// IsSchemaSpecified reports whether the value originates from the infoset;
// false means the schema supplied a default.
func (r *ElementResult) IsSchemaSpecified() bool {
	return r.specified
}

// Notation returns the notation declaration, or nil.
func (r *ElementResult) Notation() *schema.NotationDecl {
	return r.notation
}

// ValidationAttempted reports how much of the element was validated.
func (r *ElementResult) ValidationAttempted() ValidationAttempted {
	return r.attempted
}

// Validity reports the outcome classification of the attempt.
func (r *ElementResult) Validity() Validity {
	return r.validity
}

// ErrorCodes returns the recorded error codes, or the shared empty list.
func (r *ElementResult) ErrorCodes() StringList {
	if r.errorCodes != nil {
		return r.errorCodes
	}
	return EmptyStringList
}

// ErrorMessages returns the recorded error messages, or the shared empty
// list. Indices align with ErrorCodes.
func (r *ElementResult) ErrorMessages() StringList {
	if r.errorMessages != nil {
		return r.errorMessages
	}
	return EmptyStringList
}

// ValidationContext names the location validation was anchored to.
func (r *ElementResult) ValidationContext() string {
	return r.validationContext
}

// SchemaInformation returns the schema model on the validation root, nil
// elsewhere.
func (r *ElementResult) SchemaInformation() *schema.Schema {
	return r.schemaInformation
}

// SchemaDefault returns the declaration's value-constraint default, or the
// empty string without a declaration.
func (r *ElementResult) SchemaDefault() string {
	if r.declaration == nil {
		return ""
	}
	return r.declaration.ConstraintValue()
}

// SchemaNormalizedValue returns the normalized value after validation.
func (r *ElementResult) SchemaNormalizedValue() string {
	return r.value.NormalizedValue()
}

// SchemaValue returns the owned typed schema value.
func (r *ElementResult) SchemaValue() Value {
	return &r.value
}

// ActualValue returns the type-converted value, or nil if unavailable.
func (r *ElementResult) ActualValue() any {
	return r.value.ActualValue()
}

// ActualValueKind returns the kind tag of the actual value.
func (r *ElementResult) ActualValueKind() Kind {
	return r.value.ActualValueKind()
}

// ListValueKinds returns the per-item kinds for list values, or nil.
func (r *ElementResult) ListValueKinds() []Kind {
	return r.value.ListValueKinds()
}

// MemberTypeDefinition returns the union member that matched, or nil.
func (r *ElementResult) MemberTypeDefinition() *schema.SimpleType {
	return r.value.MemberTypeDefinition()
}
