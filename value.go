package psvi

import "github.com/jacoelho/xmlpsvi/schema"

// Value is the read surface of a typed schema value: the type-converted
// value, its kind tag, the normalized lexical form, and, when the declared
// type is a union, the member type that matched.
type Value interface {
	ActualValue() any
	ActualValueKind() Kind
	ListValueKinds() []Kind
	NormalizedValue() string
	MemberTypeDefinition() *schema.SimpleType
}

// ValidatedInfo holds the outcome of validating one node's character content
// against a simple type. It is created empty per validation attempt, owned
// exclusively by one outcome record, and either populated by the validator
// or reset to the empty state.
type ValidatedInfo struct {
	actualValue     any
	actualValueKind Kind
	listValueKinds  []Kind
	normalizedValue string
	memberType      *schema.SimpleType
}

// SetValue records a typed value with its kind and normalized lexical form.
func (v *ValidatedInfo) SetValue(actual any, kind Kind, normalized string) {
	v.actualValue = actual
	v.actualValueKind = kind
	v.normalizedValue = normalized
}

// SetListValueKinds records the per-item kinds of a list value.
func (v *ValidatedInfo) SetListValueKinds(kinds []Kind) {
	v.listValueKinds = kinds
}

// SetMemberType records the union member type that validated the value.
func (v *ValidatedInfo) SetMemberType(member *schema.SimpleType) {
	v.memberType = member
}

// CopyFrom deep-copies all fields from source into v.
func (v *ValidatedInfo) CopyFrom(source Value) {
	v.actualValue = source.ActualValue()
	v.actualValueKind = source.ActualValueKind()
	v.listValueKinds = nil
	if kinds := source.ListValueKinds(); len(kinds) > 0 {
		v.listValueKinds = make([]Kind, len(kinds))
		copy(v.listValueKinds, kinds)
	}
	v.normalizedValue = source.NormalizedValue()
	v.memberType = source.MemberTypeDefinition()
}

// Reset clears all fields to the empty state. Idempotent.
func (v *ValidatedInfo) Reset() {
	v.actualValue = nil
	v.actualValueKind = KindUnavailable
	v.listValueKinds = nil
	v.normalizedValue = ""
	v.memberType = nil
}

// ActualValue returns the type-converted value, or nil if unavailable.
func (v *ValidatedInfo) ActualValue() any {
	return v.actualValue
}

// ActualValueKind returns the kind tag of the actual value.
func (v *ValidatedInfo) ActualValueKind() Kind {
	return v.actualValueKind
}

// ListValueKinds returns the per-item kinds for list values, or nil.
func (v *ValidatedInfo) ListValueKinds() []Kind {
	return v.listValueKinds
}

// NormalizedValue returns the canonical lexical form of the value.
func (v *ValidatedInfo) NormalizedValue() string {
	return v.normalizedValue
}

// MemberTypeDefinition returns the union member type that validated the
// value, or nil when the declared type is not a union.
func (v *ValidatedInfo) MemberTypeDefinition() *schema.SimpleType {
	return v.memberType
}
