package psvi

import (
	"reflect"
	"testing"

	"github.com/jacoelho/xmlpsvi/schema"
)

func TestValidatedInfoZeroValueIsEmpty(t *testing.T) {
	var v ValidatedInfo
	if got := v.ActualValue(); got != nil {
		t.Fatalf("ActualValue() = %v, want nil", got)
	}
	if got := v.ActualValueKind(); got != KindUnavailable {
		t.Fatalf("ActualValueKind() = %v, want %v", got, KindUnavailable)
	}
	if got := v.ListValueKinds(); got != nil {
		t.Fatalf("ListValueKinds() = %v, want nil", got)
	}
	if got := v.NormalizedValue(); got != "" {
		t.Fatalf("NormalizedValue() = %q, want empty", got)
	}
	if got := v.MemberTypeDefinition(); got != nil {
		t.Fatalf("MemberTypeDefinition() = %v, want nil", got)
	}
}

func TestValidatedInfoCopyFrom(t *testing.T) {
	member := schema.NewBuiltinSimpleType("int")

	var source ValidatedInfo
	source.SetValue(int64(42), KindInteger, "42")
	source.SetListValueKinds([]Kind{KindInteger, KindInteger})
	source.SetMemberType(member)

	var got ValidatedInfo
	got.CopyFrom(&source)

	if got.ActualValue() != int64(42) {
		t.Fatalf("ActualValue() = %v, want 42", got.ActualValue())
	}
	if got.ActualValueKind() != KindInteger {
		t.Fatalf("ActualValueKind() = %v, want %v", got.ActualValueKind(), KindInteger)
	}
	if !reflect.DeepEqual(got.ListValueKinds(), []Kind{KindInteger, KindInteger}) {
		t.Fatalf("ListValueKinds() = %v", got.ListValueKinds())
	}
	if got.NormalizedValue() != "42" {
		t.Fatalf("NormalizedValue() = %q, want %q", got.NormalizedValue(), "42")
	}
	if got.MemberTypeDefinition() != member {
		t.Fatalf("MemberTypeDefinition() = %v, want %v", got.MemberTypeDefinition(), member)
	}
}

func TestValidatedInfoCopyFromDoesNotAliasListKinds(t *testing.T) {
	var source ValidatedInfo
	kinds := []Kind{KindInteger, KindString}
	source.SetListValueKinds(kinds)

	var got ValidatedInfo
	got.CopyFrom(&source)

	kinds[0] = KindBoolean
	if got.ListValueKinds()[0] != KindInteger {
		t.Fatalf("ListValueKinds()[0] = %v after source mutation, want %v", got.ListValueKinds()[0], KindInteger)
	}
}

func TestValidatedInfoResetIdempotent(t *testing.T) {
	var v ValidatedInfo
	v.SetValue("x", KindString, "x")
	v.SetListValueKinds([]Kind{KindString})
	v.SetMemberType(schema.NewBuiltinSimpleType("string"))

	v.Reset()
	once := v

	v.Reset()
	if !reflect.DeepEqual(v, once) {
		t.Fatalf("Reset() twice = %+v, want %+v", v, once)
	}
	if v.ActualValue() != nil || v.NormalizedValue() != "" || v.MemberTypeDefinition() != nil {
		t.Fatalf("Reset() left populated fields: %+v", v)
	}
}
