package serialize

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treex-io/treex/encode"
	"github.com/treex-io/treex/ir"
)

var roundTripTrees = []string{
	"A",
	"A<x>",
	"Add(IntegerLiteral<2>, IntegerLiteral<3>)",
	"Prog(Stmt(Call<f>, Return(IntegerLiteral<0>)), Stmt(Call<g>))",
}

func TestJSONRoundTrip(t *testing.T) {
	for _, s := range roundTripTrees {
		n := ir.MustDraft(s)
		data, err := MarshalJSON(n)
		if err != nil {
			t.Fatalf("MarshalJSON(%s): %v", s, err)
		}
		back, err := UnmarshalJSON(data, ir.DraftFactory{})
		if err != nil {
			t.Fatalf("UnmarshalJSON(%s): %v", data, err)
		}
		if !ir.DeepEqual(n, back) {
			t.Errorf("round trip of %s gave %s", s, encode.String(back))
		}
	}
}

func TestJSONShape(t *testing.T) {
	n := ir.MustDraft("Add(IntegerLiteral<2>)")
	data, err := MarshalJSON(n)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"Add","children":[{"type":"IntegerLiteral","data":"2"}]}`
	if d := cmp.Diff(want, string(data)); d != "" {
		t.Errorf("document shape (-want +got):\n%s", d)
	}
}

func TestJSONNilFactory(t *testing.T) {
	data := []byte(`{"type":"X","data":"1"}`)
	n, err := UnmarshalJSON(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n.TypeName() != "X" || n.Data() != "1" {
		t.Errorf("got %s", encode.String(n))
	}
}

func TestJSONNullAndDummy(t *testing.T) {
	data, err := MarshalJSON(ir.Dummy)
	if err != nil || string(data) != "null" {
		t.Fatalf("dummy marshals to %q, %v", data, err)
	}
	n, err := UnmarshalJSON([]byte("null"), nil)
	if err != nil || !ir.IsDummy(n) {
		t.Fatalf("null unmarshals to %v, %v", n, err)
	}
}

func TestJSONErrors(t *testing.T) {
	if _, err := UnmarshalJSON([]byte("{"), nil); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, err := UnmarshalJSON([]byte(`{"data":"x"}`), nil); err == nil {
		t.Error("document without a type accepted")
	}
}

func TestJSONProperties(t *testing.T) {
	b := ir.NewDraftBuilder()
	b.SetName("X")
	b.SetProperties(map[string]string{"color": "green"})
	n := b.CreateNode()
	data, err := MarshalJSON(n)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"properties"`) {
		t.Errorf("properties missing from %s", data)
	}
	back, err := UnmarshalJSON(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if back.Properties()["color"] != "green" {
		t.Error("properties lost in round trip")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	for _, s := range roundTripTrees {
		n := ir.MustDraft(s)
		data, err := MarshalYAML(n)
		if err != nil {
			t.Fatalf("MarshalYAML(%s): %v", s, err)
		}
		back, err := UnmarshalYAML(data, ir.DraftFactory{})
		if err != nil {
			t.Fatalf("UnmarshalYAML(%q): %v", data, err)
		}
		if !ir.DeepEqual(n, back) {
			t.Errorf("YAML round trip of %s gave %s", s, encode.String(back))
		}
	}
}

func TestYAMLNull(t *testing.T) {
	n, err := UnmarshalYAML([]byte("null\n"), nil)
	if err != nil || !ir.IsDummy(n) {
		t.Fatalf("null unmarshals to %v, %v", n, err)
	}
}
