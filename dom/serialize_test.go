package dom

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"testing"

	psvi "github.com/jacoelho/xmlpsvi"
	xmlpsvierrors "github.com/jacoelho/xmlpsvi/errors"
	"github.com/jacoelho/xmlpsvi/schema"
)

func validatedNode(t *testing.T) *Element {
	t.Helper()
	d := NewDocument()
	e := d.CreateElement("urn:test", "o", "quantity")
	d.SetDocumentElement(e)

	outcome := psvi.NewElementResult()
	outcome.SetTypeDefinition(schema.NewBuiltinSimpleType("int"))
	outcome.SetState(psvi.AttemptedFull, psvi.ValidityValid)
	outcome.MutableValue().SetValue(int64(7), psvi.KindInteger, "7")
	e.SetPSVI(outcome)
	return e
}

func TestElementXMLEncodingFailsWithoutOutput(t *testing.T) {
	e := validatedNode(t)

	var buf bytes.Buffer
	err := xml.NewEncoder(&buf).Encode(e)
	if err == nil {
		t.Fatal("Encode() error = nil, want NotSerializable")
	}
	if !xmlpsvierrors.IsNotSerializable(err) {
		t.Fatalf("Encode() error = %v, want NotSerializable", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("Encode() produced %d bytes before failing, want 0", buf.Len())
	}
}

func TestElementJSONEncodingFails(t *testing.T) {
	e := validatedNode(t)

	data, err := json.Marshal(e)
	if err == nil {
		t.Fatalf("Marshal() = %q, want NotSerializable error", data)
	}
	if !xmlpsvierrors.IsNotSerializable(err) {
		t.Fatalf("Marshal() error = %v, want NotSerializable", err)
	}
}

func TestElementTextEncodingFails(t *testing.T) {
	e := validatedNode(t)

	data, err := e.MarshalText()
	if err == nil {
		t.Fatalf("MarshalText() = %q, want NotSerializable error", data)
	}
	if data != nil {
		t.Fatalf("MarshalText() produced output %q alongside the error", data)
	}
}

func TestUnvalidatedNodeAlsoRefusesSerialization(t *testing.T) {
	// The guard is unconditional: every node owns an outcome record from
	// creation, so every node refuses persistence.
	d := NewDocument()
	e := d.CreateElement("", "", "fresh")

	if _, err := e.MarshalJSON(); !xmlpsvierrors.IsNotSerializable(err) {
		t.Fatalf("MarshalJSON() error = %v, want NotSerializable", err)
	}
}

func TestAttrAndDocumentRefuseSerialization(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("", "", "order")
	d.SetDocumentElement(e)
	attr := d.CreateAttribute("", "", "issued", "2024-01-01")
	e.SetAttributeNode(attr)

	if _, err := attr.MarshalJSON(); !xmlpsvierrors.IsNotSerializable(err) {
		t.Fatalf("attr MarshalJSON() error = %v, want NotSerializable", err)
	}
	if _, err := d.MarshalJSON(); !xmlpsvierrors.IsNotSerializable(err) {
		t.Fatalf("document MarshalJSON() error = %v, want NotSerializable", err)
	}

	var buf bytes.Buffer
	if err := xml.NewEncoder(&buf).Encode(d); !xmlpsvierrors.IsNotSerializable(err) {
		t.Fatalf("document Encode() error = %v, want NotSerializable", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("document Encode() produced %d bytes before failing, want 0", buf.Len())
	}
}

func TestNotSerializableNamesTheNode(t *testing.T) {
	e := validatedNode(t)

	_, err := e.MarshalJSON()
	if err == nil {
		t.Fatal("MarshalJSON() error = nil")
	}
	want := "psvi: node o:quantity is not serializable"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}
