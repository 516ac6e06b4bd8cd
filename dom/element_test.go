package dom

import (
	"testing"

	psvi "github.com/jacoelho/xmlpsvi"
	"github.com/jacoelho/xmlpsvi/schema"
)

func buildOrder(t *testing.T) (*Document, *Element, *Element) {
	t.Helper()
	d := NewDocument()
	order := d.CreateElement("urn:test", "o", "order")
	d.SetDocumentElement(order)

	quantity := d.CreateElement("urn:test", "o", "quantity")
	order.AppendChild(quantity)
	quantity.AppendText("7")
	return d, order, quantity
}

func TestDocumentTreeConstruction(t *testing.T) {
	d, order, quantity := buildOrder(t)

	if got := d.DocumentElement(); got != order {
		t.Fatalf("DocumentElement() = %v, want %v", got, order)
	}
	if got := order.NodeName(); got != "o:order" {
		t.Fatalf("NodeName() = %q, want %q", got, "o:order")
	}
	if got := quantity.Parent(); got != order {
		t.Fatalf("Parent() = %v, want %v", got, order)
	}
	if got := quantity.OwnerDocument(); got != d {
		t.Fatalf("OwnerDocument() = %v, want %v", got, d)
	}
	if got := len(order.Children()); got != 1 {
		t.Fatalf("len(Children()) = %d, want 1", got)
	}
	if got := quantity.NodeType(); got != ElementNode {
		t.Fatalf("NodeType() = %v, want %v", got, ElementNode)
	}
}

func TestNilDocumentElement(t *testing.T) {
	var d *Document
	if got := d.DocumentElement(); got != nil {
		t.Fatalf("DocumentElement() = %v, want nil", got)
	}
}

func TestTextContent(t *testing.T) {
	d := NewDocument()
	root := d.CreateElement("", "", "note")
	root.AppendText("a")
	child := d.CreateElement("", "", "b")
	root.AppendChild(child)
	child.AppendText("b-text")
	root.AppendText("c")

	if got := root.TextContent(); got != "ab-textc" {
		t.Fatalf("TextContent() = %q, want %q", got, "ab-textc")
	}
	if got := root.DirectTextContent(); got != "ac" {
		t.Fatalf("DirectTextContent() = %q, want %q", got, "ac")
	}
}

func TestAttributes(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("urn:test", "o", "order")

	issued := d.CreateAttribute("", "", "issued", "2024-01-01")
	e.SetAttributeNode(issued)

	if got := e.GetAttribute("issued"); got != "2024-01-01" {
		t.Fatalf("GetAttribute() = %q, want %q", got, "2024-01-01")
	}
	if got := e.GetAttributeNS("", "issued"); got != "2024-01-01" {
		t.Fatalf("GetAttributeNS() = %q, want %q", got, "2024-01-01")
	}
	if !e.HasAttribute("issued") {
		t.Fatal("HasAttribute() = false, want true")
	}
	if e.HasAttributeNS("urn:other", "issued") {
		t.Fatal("HasAttributeNS() = true, want false")
	}
	if got := e.GetAttribute("missing"); got != "" {
		t.Fatalf("GetAttribute(missing) = %q, want empty", got)
	}
	if got := issued.OwnerElement(); got != e {
		t.Fatalf("OwnerElement() = %v, want %v", got, e)
	}

	// Replacement keeps a single node per namespace+local pair.
	replacement := d.CreateAttribute("", "", "issued", "2024-02-02")
	e.SetAttributeNode(replacement)
	if got := len(e.Attributes()); got != 1 {
		t.Fatalf("len(Attributes()) = %d, want 1", got)
	}
	if got := e.GetAttribute("issued"); got != "2024-02-02" {
		t.Fatalf("GetAttribute() = %q, want %q", got, "2024-02-02")
	}
	if got := e.GetAttributeNode("", "issued"); got != replacement {
		t.Fatalf("GetAttributeNode() = %v, want %v", got, replacement)
	}
}

func TestElementStartsAtDefaultOutcome(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("urn:test", "", "order")

	if got := e.ValidationAttempted(); got != psvi.AttemptedNone {
		t.Fatalf("ValidationAttempted() = %v, want %v", got, psvi.AttemptedNone)
	}
	if got := e.Validity(); got != psvi.ValidityUnknown {
		t.Fatalf("Validity() = %v, want %v", got, psvi.ValidityUnknown)
	}
	if e.ErrorCodes() == nil || e.ErrorMessages() == nil {
		t.Fatal("error list accessor returned nil")
	}
	if got := e.TypeDefinition(); got != nil {
		t.Fatalf("TypeDefinition() = %v, want nil", got)
	}
}

func TestSetPSVIAttachesOutcome(t *testing.T) {
	_, _, quantity := buildOrder(t)

	intType := schema.NewBuiltinSimpleType("int")
	outcome := psvi.NewElementResult()
	outcome.SetTypeDefinition(intType)
	outcome.SetState(psvi.AttemptedFull, psvi.ValidityValid)
	outcome.MutableValue().SetValue(int64(7), psvi.KindInteger, "7")

	quantity.SetPSVI(outcome)

	if got := quantity.ValidationAttempted(); got != psvi.AttemptedFull {
		t.Fatalf("ValidationAttempted() = %v, want %v", got, psvi.AttemptedFull)
	}
	if got := quantity.Validity(); got != psvi.ValidityValid {
		t.Fatalf("Validity() = %v, want %v", got, psvi.ValidityValid)
	}
	if got := quantity.SchemaNormalizedValue(); got != "7" {
		t.Fatalf("SchemaNormalizedValue() = %q, want %q", got, "7")
	}
	if got := quantity.ActualValue(); got != int64(7) {
		t.Fatalf("ActualValue() = %v, want 7", got)
	}
	if got := quantity.TypeDefinition(); got != schema.Type(intType) {
		t.Fatalf("TypeDefinition() = %v, want %v", got, intType)
	}
}

func TestSetPSVIFromAnotherNode(t *testing.T) {
	d, _, quantity := buildOrder(t)

	outcome := psvi.NewElementResult()
	outcome.SetTypeDefinition(schema.NewBuiltinSimpleType("int"))
	outcome.SetState(psvi.AttemptedFull, psvi.ValidityInvalid)
	outcome.SetErrors(psvi.StringList{"cvc-datatype-valid"}, psvi.StringList{"not an int"})
	outcome.MutableValue().SetValue(nil, psvi.KindUnavailable, "x")
	quantity.SetPSVI(outcome)

	// A node is itself a valid merge source for another node.
	other := d.CreateElement("urn:test", "o", "quantity")
	other.SetPSVI(quantity)

	if got := other.Validity(); got != psvi.ValidityInvalid {
		t.Fatalf("Validity() = %v, want %v", got, psvi.ValidityInvalid)
	}
	if got := other.ErrorCodes().Item(0); got != "cvc-datatype-valid" {
		t.Fatalf("ErrorCodes().Item(0) = %q, want %q", got, "cvc-datatype-valid")
	}
	if got := other.ErrorMessages().Item(0); got != "not an int" {
		t.Fatalf("ErrorMessages().Item(0) = %q, want %q", got, "not an int")
	}
}

func TestAttrSetPSVI(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("urn:test", "", "order")
	attr := d.CreateAttribute("", "", "issued", "2024-01-01")
	e.SetAttributeNode(attr)

	dateType := schema.NewBuiltinSimpleType("date")
	outcome := psvi.NewAttrResult()
	outcome.SetTypeDefinition(dateType)
	outcome.SetState(psvi.AttemptedFull, psvi.ValidityValid)
	outcome.MutableValue().SetValue("2024-01-01", psvi.KindDate, "2024-01-01")

	attr.SetPSVI(outcome)

	if got := attr.Validity(); got != psvi.ValidityValid {
		t.Fatalf("Validity() = %v, want %v", got, psvi.ValidityValid)
	}
	if got := attr.SchemaNormalizedValue(); got != "2024-01-01" {
		t.Fatalf("SchemaNormalizedValue() = %q, want %q", got, "2024-01-01")
	}
	if got := attr.TypeDefinition(); got != schema.Type(dateType) {
		t.Fatalf("TypeDefinition() = %v, want %v", got, dateType)
	}
}
