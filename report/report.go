// Package report builds serializable projections of a validated tree. Live
// nodes refuse serialization because their records reference schema-model
// objects; a report is the sanctioned strings-only view for logging and
// tooling, carrying validity, type names, normalized values, and errors but
// no schema-model references.
package report

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/xmlpsvi/dom"
	"github.com/jacoelho/xmlpsvi/schema"
)

// Attribute is the report record for one attribute node.
type Attribute struct {
	Name            string   `json:"name" yaml:"name"`
	Value           string   `json:"value" yaml:"value"`
	Validity        string   `json:"validity" yaml:"validity"`
	Attempted       string   `json:"attempted" yaml:"attempted"`
	Type            string   `json:"type,omitempty" yaml:"type,omitempty"`
	MemberType      string   `json:"memberType,omitempty" yaml:"memberType,omitempty"`
	NormalizedValue string   `json:"normalizedValue,omitempty" yaml:"normalizedValue,omitempty"`
	ErrorCodes      []string `json:"errorCodes,omitempty" yaml:"errorCodes,omitempty"`
	ErrorMessages   []string `json:"errorMessages,omitempty" yaml:"errorMessages,omitempty"`
}

// Element is the report record for one element node and its subtree.
type Element struct {
	Name            string      `json:"name" yaml:"name"`
	Validity        string      `json:"validity" yaml:"validity"`
	Attempted       string      `json:"attempted" yaml:"attempted"`
	Type            string      `json:"type,omitempty" yaml:"type,omitempty"`
	MemberType      string      `json:"memberType,omitempty" yaml:"memberType,omitempty"`
	NormalizedValue string      `json:"normalizedValue,omitempty" yaml:"normalizedValue,omitempty"`
	Nil             bool        `json:"nil,omitempty" yaml:"nil,omitempty"`
	Context         string      `json:"context,omitempty" yaml:"context,omitempty"`
	ErrorCodes      []string    `json:"errorCodes,omitempty" yaml:"errorCodes,omitempty"`
	ErrorMessages   []string    `json:"errorMessages,omitempty" yaml:"errorMessages,omitempty"`
	Attributes      []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Children        []Element   `json:"children,omitempty" yaml:"children,omitempty"`
}

// ForElement projects an element and its subtree into report records,
// reading only through the public accessor surface.
func ForElement(e *dom.Element) *Element {
	if e == nil {
		return nil
	}
	el := projectElement(e)
	return &el
}

func projectElement(e *dom.Element) Element {
	el := Element{
		Name:            e.NodeName(),
		Validity:        e.Validity().String(),
		Attempted:       e.ValidationAttempted().String(),
		Type:            typeName(e.TypeDefinition()),
		MemberType:      simpleTypeName(e.MemberTypeDefinition()),
		NormalizedValue: e.SchemaNormalizedValue(),
		Nil:             e.Nil(),
		Context:         e.ValidationContext(),
	}
	if codes := e.ErrorCodes(); codes.Len() > 0 {
		el.ErrorCodes = codes
	}
	if messages := e.ErrorMessages(); messages.Len() > 0 {
		el.ErrorMessages = messages
	}
	for _, attr := range e.Attributes() {
		el.Attributes = append(el.Attributes, projectAttribute(attr))
	}
	for _, child := range e.Children() {
		el.Children = append(el.Children, projectElement(child))
	}
	return el
}

func projectAttribute(a *dom.Attr) Attribute {
	attr := Attribute{
		Name:            a.NodeName(),
		Value:           a.Value(),
		Validity:        a.Validity().String(),
		Attempted:       a.ValidationAttempted().String(),
		Type:            typeName(a.TypeDefinition()),
		MemberType:      simpleTypeName(a.MemberTypeDefinition()),
		NormalizedValue: a.SchemaNormalizedValue(),
	}
	if codes := a.ErrorCodes(); codes.Len() > 0 {
		attr.ErrorCodes = codes
	}
	if messages := a.ErrorMessages(); messages.Len() > 0 {
		attr.ErrorMessages = messages
	}
	return attr
}

func typeName(typ schema.Type) string {
	if typ == nil {
		return ""
	}
	return typ.Name().String()
}

func simpleTypeName(typ *schema.SimpleType) string {
	if typ == nil {
		return ""
	}
	return typ.Name().String()
}

// JSON serializes the projection of an element subtree.
func JSON(e *dom.Element) ([]byte, error) {
	return json.Marshal(ForElement(e))
}

// YAML serializes the projection of an element subtree.
func YAML(e *dom.Element) ([]byte, error) {
	return yaml.Marshal(ForElement(e))
}
