package dom

import (
	"strings"

	psvi "github.com/jacoelho/xmlpsvi"
	"github.com/jacoelho/xmlpsvi/schema"
)

// Element is an element node. It owns exactly one psvi.ElementResult for its
// lifetime, initialized to the default state at creation, and exposes the
// full element PSVI accessor surface pass-through.
type Element struct {
	owner    *Document
	parent   *Element
	ns       string
	prefix   string
	local    string
	attrs    []*Attr
	children []Node
	result   *psvi.ElementResult
}

var _ psvi.ElementPSVI = (*Element)(nil)

// NodeType returns ElementNode.
func (e *Element) NodeType() NodeType {
	return ElementNode
}

// NodeName returns the qualified name (prefix:local, or local without prefix).
func (e *Element) NodeName() string {
	if e.prefix == "" {
		return e.local
	}
	return e.prefix + ":" + e.local
}

// NodeValue returns the empty string; elements have no node value.
func (e *Element) NodeValue() string {
	return ""
}

// NamespaceURI returns the element's namespace, or the empty string.
func (e *Element) NamespaceURI() string {
	return e.ns
}

// LocalName returns the element's local name.
func (e *Element) LocalName() string {
	return e.local
}

// Prefix returns the element's namespace prefix, or the empty string.
func (e *Element) Prefix() string {
	return e.prefix
}

// Parent returns the parent element; nil for the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// OwnerDocument returns the document the element belongs to.
func (e *Element) OwnerDocument() *Document {
	return e.owner
}

// AppendChild appends a child element. The child must belong to the same
// document and not already have a parent.
func (e *Element) AppendChild(child *Element) {
	child.parent = e
	e.children = append(e.children, child)
}

// AppendText appends a run of character data.
func (e *Element) AppendText(data string) {
	e.children = append(e.children, &Text{Data: data})
}

// Children returns the child elements in document order.
func (e *Element) Children() []*Element {
	var elements []*Element
	for _, child := range e.children {
		if el, ok := child.(*Element); ok {
			elements = append(elements, el)
		}
	}
	return elements
}

// ChildNodes returns all child nodes (elements and text) in document order.
func (e *Element) ChildNodes() []Node {
	return e.children
}

// TextContent returns the concatenated character data of the element and
// all its descendants, in document order.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.appendTextContent(&b)
	return b.String()
}

func (e *Element) appendTextContent(b *strings.Builder) {
	for _, child := range e.children {
		switch typed := child.(type) {
		case *Text:
			b.WriteString(typed.Data)
		case *Element:
			typed.appendTextContent(b)
		}
	}
}

// DirectTextContent returns only text directly under the element.
func (e *Element) DirectTextContent() string {
	var b strings.Builder
	for _, child := range e.children {
		if text, ok := child.(*Text); ok {
			b.WriteString(text.Data)
		}
	}
	return b.String()
}

// SetAttributeNode attaches an attribute node, replacing any attribute with
// the same namespace and local name.
func (e *Element) SetAttributeNode(attr *Attr) {
	attr.owner = e
	for i, existing := range e.attrs {
		if existing.ns == attr.ns && existing.local == attr.local {
			e.attrs[i] = attr
			return
		}
	}
	e.attrs = append(e.attrs, attr)
}

// Attributes returns the element's attribute nodes in attachment order.
func (e *Element) Attributes() []*Attr {
	return e.attrs
}

// GetAttribute returns the value of the attribute with the given qualified
// name, or the empty string.
func (e *Element) GetAttribute(name string) string {
	for _, attr := range e.attrs {
		if attr.NodeName() == name {
			return attr.value
		}
	}
	return ""
}

// GetAttributeNS returns the value of the attribute with the given namespace
// and local name, or the empty string.
func (e *Element) GetAttributeNS(ns, local string) string {
	for _, attr := range e.attrs {
		if attr.ns == ns && attr.local == local {
			return attr.value
		}
	}
	return ""
}

// HasAttribute reports whether an attribute with the given qualified name exists.
func (e *Element) HasAttribute(name string) bool {
	for _, attr := range e.attrs {
		if attr.NodeName() == name {
			return true
		}
	}
	return false
}

// HasAttributeNS reports whether an attribute with the given namespace and
// local name exists.
func (e *Element) HasAttributeNS(ns, local string) bool {
	for _, attr := range e.attrs {
		if attr.ns == ns && attr.local == local {
			return true
		}
	}
	return false
}

// GetAttributeNode returns the attribute node with the given namespace and
// local name, or nil.
func (e *Element) GetAttributeNode(ns, local string) *Attr {
	for _, attr := range e.attrs {
		if attr.ns == ns && attr.local == local {
			return attr
		}
	}
	return nil
}

// PSVI returns the element's owned post-validation record. The validation
// engine may populate it directly during a pass; consumers should use the
// read accessors on the element instead.
func (e *Element) PSVI() *psvi.ElementResult {
	return e.result
}

// SetPSVI merges a computed outcome onto the element's owned record. Not
// internally synchronized: at most one SetPSVI may be in flight per element,
// and readers must not race it.
func (e *Element) SetPSVI(source psvi.ElementPSVI) {
	e.result.MergeFrom(source)
}

// ElementDeclaration returns the declaration used to validate the element, or nil.
func (e *Element) ElementDeclaration() *schema.ElementDecl {
	return e.result.ElementDeclaration()
}

// TypeDefinition returns the type that validated the element, or nil.
func (e *Element) TypeDefinition() schema.Type {
	return e.result.TypeDefinition()
}

// Nil reports whether the element satisfied the schema's nil clause.
func (e *Element) Nil() bool {
	return e.result.Nil()
}

// IsSchemaSpecified reports whether the value originates from the infoset.
func (e *Element) IsSchemaSpecified() bool {
	return e.result.IsSchemaSpecified()
}

// Notation returns the notation declaration for NOTATION-typed content, or nil.
func (e *Element) Notation() *schema.NotationDecl {
	return e.result.Notation()
}

// ValidationAttempted reports how much of the element was validated.
func (e *Element) ValidationAttempted() psvi.ValidationAttempted {
	return e.result.ValidationAttempted()
}

// Validity reports the outcome classification of the attempt.
func (e *Element) Validity() psvi.Validity {
	return e.result.Validity()
}

// ErrorCodes returns the recorded error codes, or the shared empty list.
func (e *Element) ErrorCodes() psvi.StringList {
	return e.result.ErrorCodes()
}

// ErrorMessages returns the recorded error messages, or the shared empty list.
func (e *Element) ErrorMessages() psvi.StringList {
	return e.result.ErrorMessages()
}

// ValidationContext names the location validation was anchored to.
func (e *Element) ValidationContext() string {
	return e.result.ValidationContext()
}

// SchemaInformation returns the schema model on the validation root, nil elsewhere.
func (e *Element) SchemaInformation() *schema.Schema {
	return e.result.SchemaInformation()
}

// SchemaDefault returns the declaration's value-constraint default.
func (e *Element) SchemaDefault() string {
	return e.result.SchemaDefault()
}

// SchemaNormalizedValue returns the normalized value after validation.
func (e *Element) SchemaNormalizedValue() string {
	return e.result.SchemaNormalizedValue()
}

// SchemaValue returns the typed schema value.
func (e *Element) SchemaValue() psvi.Value {
	return e.result.SchemaValue()
}

// ActualValue returns the type-converted value, or nil if unavailable.
func (e *Element) ActualValue() any {
	return e.result.ActualValue()
}

// ActualValueKind returns the kind tag of the actual value.
func (e *Element) ActualValueKind() psvi.Kind {
	return e.result.ActualValueKind()
}

// ListValueKinds returns the per-item kinds for list values, or nil.
func (e *Element) ListValueKinds() []psvi.Kind {
	return e.result.ListValueKinds()
}

// MemberTypeDefinition returns the union member that matched, or nil.
func (e *Element) MemberTypeDefinition() *schema.SimpleType {
	return e.result.MemberTypeDefinition()
}
