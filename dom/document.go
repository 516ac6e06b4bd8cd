package dom

import psvi "github.com/jacoelho/xmlpsvi"

// Document owns a tree of post-validation-carrying nodes.
type Document struct {
	root *Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// NodeType returns DocumentNode.
func (d *Document) NodeType() NodeType {
	return DocumentNode
}

// NodeName returns the DOM name for document nodes.
func (d *Document) NodeName() string {
	return "#document"
}

// NodeValue returns the empty string; documents have no node value.
func (d *Document) NodeValue() string {
	return ""
}

// DocumentElement returns the root element, or nil for an empty document.
func (d *Document) DocumentElement() *Element {
	if d == nil {
		return nil
	}
	return d.root
}

// SetDocumentElement installs the root element. The element must belong to
// this document.
func (d *Document) SetDocumentElement(root *Element) {
	d.root = root
}

// CreateElement creates an element owned by this document, with its
// post-validation record initialized to the default state.
func (d *Document) CreateElement(ns, prefix, local string) *Element {
	return &Element{
		owner:  d,
		ns:     ns,
		prefix: prefix,
		local:  local,
		result: psvi.NewElementResult(),
	}
}

// CreateAttribute creates an unattached attribute node with its
// post-validation record initialized to the default state.
func (d *Document) CreateAttribute(ns, prefix, local, value string) *Attr {
	return &Attr{
		ns:     ns,
		prefix: prefix,
		local:  local,
		value:  value,
		result: psvi.NewAttrResult(),
	}
}
