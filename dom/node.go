// Package dom provides a minimal document tree whose element and attribute
// nodes each own one post-schema-validation record for their lifetime. A
// validation engine attaches outcomes with SetPSVI; consumers query them
// through the nodes' psvi accessor surface. Nodes carrying post-validation
// data refuse serialization (see serialize.go).
package dom

// NodeType classifies nodes in the tree.
type NodeType int

const (
	// ElementNode identifies an element in the document tree.
	ElementNode NodeType = 1
	// AttrNode identifies an attribute node.
	AttrNode NodeType = 2
	// TextNode identifies a text node.
	TextNode NodeType = 3
	// DocumentNode identifies the document itself.
	DocumentNode NodeType = 9
)

// Node is the minimal contract shared by all tree nodes.
type Node interface {
	NodeType() NodeType
	NodeName() string
	NodeValue() string
}

// Text is a run of character data directly under an element.
type Text struct {
	Data string
}

// NodeType returns TextNode.
func (t *Text) NodeType() NodeType {
	return TextNode
}

// NodeName returns the DOM name for text nodes.
func (t *Text) NodeName() string {
	return "#text"
}

// NodeValue returns the character data.
func (t *Text) NodeValue() string {
	return t.Data
}
