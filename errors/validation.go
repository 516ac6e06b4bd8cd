// Package errors defines the error records this module produces or carries:
// the NotSerializable guard raised on any attempt to persist a node with
// post-validation data, the Validation record a validation engine flattens
// into per-node error code and message lists, and the W3C error codes those
// lists use.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a W3C XSD error code.
// See: https://www.w3.org/TR/xmlschema-1/#cvc-elt
type ErrorCode string

const (
	// ErrElementNotDeclared indicates an element has no declaration.
	ErrElementNotDeclared ErrorCode = "cvc-elt.1"
	// ErrElementAbstract indicates an abstract element was used.
	ErrElementAbstract ErrorCode = "cvc-elt.2"
	// ErrElementNotNillable indicates xsi:nil was used on a non-nillable element.
	ErrElementNotNillable ErrorCode = "cvc-elt.3.1"
	// ErrNilElementNotEmpty indicates a nilled element had content.
	ErrNilElementNotEmpty ErrorCode = "cvc-elt.3.2.2"
	// ErrXsiTypeInvalid indicates an xsi:type could not be resolved or is invalid.
	ErrXsiTypeInvalid ErrorCode = "cvc-elt.4.3"
	// ErrElementFixedValue indicates a fixed element value was violated.
	ErrElementFixedValue ErrorCode = "cvc-elt.5.2.2.2"

	// ErrTextInElementOnly indicates text appeared in element-only content.
	ErrTextInElementOnly ErrorCode = "cvc-complex-type.2.3"
	// ErrContentModelInvalid indicates children violate the content model.
	ErrContentModelInvalid ErrorCode = "cvc-complex-type.2.4"
	// ErrAttributeNotDeclared indicates an attribute is not declared.
	ErrAttributeNotDeclared ErrorCode = "cvc-complex-type.3.2.1"
	// ErrRequiredAttributeMissing indicates a required attribute is missing.
	ErrRequiredAttributeMissing ErrorCode = "cvc-complex-type.4"

	// ErrAttributeFixedValue indicates a fixed attribute value was violated.
	ErrAttributeFixedValue ErrorCode = "cvc-attribute.1"

	// ErrDatatypeInvalid indicates a lexical value is invalid for its datatype.
	ErrDatatypeInvalid ErrorCode = "cvc-datatype-valid"
	// ErrFacetViolation indicates a value violates a facet constraint.
	ErrFacetViolation ErrorCode = "cvc-facet-valid"
)

// Validation describes a schema validation error with a W3C error code and
// optional instance path context. A validation engine records these per node
// and flattens them into the index-aligned error code and message lists of
// the node's post-validation record.
//
//nolint:errname // public API name uses XSD domain term.
type Validation struct {
	Code    string
	Message string
	Path    string
}

// ValidationList is an error that wraps one or more validation errors.
type ValidationList []Validation //nolint:errname // public API name, keep for compatibility.

// Error returns a compact summary of the validation errors.
func (v ValidationList) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Codes returns the error codes of the list, index-aligned with Messages.
func (v ValidationList) Codes() []string {
	if len(v) == 0 {
		return nil
	}
	codes := make([]string, len(v))
	for i := range v {
		codes[i] = v[i].Code
	}
	return codes
}

// Messages returns the formatted messages of the list, index-aligned with Codes.
func (v ValidationList) Messages() []string {
	if len(v) == 0 {
		return nil
	}
	messages := make([]string, len(v))
	for i := range v {
		messages[i] = v[i].Message
	}
	return messages
}

// Error formats the validation for display, including code, message, and context.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))
	if v.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", v.Path))
	}
	return b.String()
}

// NewValidation builds a Validation with a code, message, and optional path.
func NewValidation(code ErrorCode, msg, path string) Validation {
	return Validation{Code: string(code), Message: msg, Path: path}
}

// NewValidationf formats a message and builds a Validation.
func NewValidationf(code ErrorCode, path, format string, args ...any) Validation {
	return NewValidation(code, fmt.Sprintf(format, args...), path)
}

// AsValidations extracts validation errors from an error returned by validation helpers.
func AsValidations(err error) ([]Validation, bool) {
	if err == nil {
		return nil, false
	}
	var list ValidationList
	if errors.As(err, &list) {
		return []Validation(list), true
	}

	var listPtr *ValidationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return []Validation(*listPtr), true
	}

	return nil, false
}
