package dom

import (
	"encoding/xml"

	"github.com/jacoelho/xmlpsvi/errors"
)

// Nodes carrying post-validation data refuse every serialization path: the
// schema-model objects their records reference (element declarations, type
// definitions) are not serializable, so persisting a node would silently
// strip or corrupt its record. Attempts fail loudly with NotSerializable
// before any output is produced.

// MarshalXML always fails with a NotSerializable error.
func (e *Element) MarshalXML(_ *xml.Encoder, _ xml.StartElement) error {
	return &errors.NotSerializable{Node: e.NodeName()}
}

// MarshalJSON always fails with a NotSerializable error.
func (e *Element) MarshalJSON() ([]byte, error) {
	return nil, &errors.NotSerializable{Node: e.NodeName()}
}

// MarshalText always fails with a NotSerializable error.
func (e *Element) MarshalText() ([]byte, error) {
	return nil, &errors.NotSerializable{Node: e.NodeName()}
}

// MarshalXML always fails with a NotSerializable error.
func (a *Attr) MarshalXML(_ *xml.Encoder, _ xml.StartElement) error {
	return &errors.NotSerializable{Node: a.NodeName()}
}

// MarshalJSON always fails with a NotSerializable error.
func (a *Attr) MarshalJSON() ([]byte, error) {
	return nil, &errors.NotSerializable{Node: a.NodeName()}
}

// MarshalText always fails with a NotSerializable error.
func (a *Attr) MarshalText() ([]byte, error) {
	return nil, &errors.NotSerializable{Node: a.NodeName()}
}

// MarshalXML always fails with a NotSerializable error.
func (d *Document) MarshalXML(_ *xml.Encoder, _ xml.StartElement) error {
	return &errors.NotSerializable{Node: d.NodeName()}
}

// MarshalJSON always fails with a NotSerializable error.
func (d *Document) MarshalJSON() ([]byte, error) {
	return nil, &errors.NotSerializable{Node: d.NodeName()}
}

// MarshalText always fails with a NotSerializable error.
func (d *Document) MarshalText() ([]byte, error) {
	return nil, &errors.NotSerializable{Node: d.NodeName()}
}
