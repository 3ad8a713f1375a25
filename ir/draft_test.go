package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type draftParseTest struct {
	in   string
	out  string // "" means in is already canonical
	err  bool
}

var draftParseTests = []draftParseTest{
	{in: "A"},
	{in: "A<x>"},
	{in: "A(B, C)"},
	{in: "A<data>(B<1>, C)"},
	{in: "Add(IntegerLiteral<2>, IntegerLiteral<3>)"},
	{in: "A(B(C(D)))"},
	{in: "A( B , C )", out: "A(B, C)"},
	{in: "", err: true},
	{in: "A(", err: true},
	{in: "A(B", err: true},
	{in: "A<unterminated", err: true},
	{in: "A(B,)", err: true},
	{in: "A extra", err: true},
}

func TestParseDraft(t *testing.T) {
	for _, tc := range draftParseTests {
		n, err := ParseDraft(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("ParseDraft(%q): expected error, got %s", tc.in, n)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDraft(%q): %v", tc.in, err)
			continue
		}
		want := tc.out
		if want == "" {
			want = tc.in
		}
		got := n.(*DraftNode).String()
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("ParseDraft(%q): (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestParseDraftInto(t *testing.T) {
	nodes := map[string][]Node{}
	root, err := ParseDraftInto("A(B, C(B<1>))", nodes)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes["B"]) != 2 {
		t.Fatalf("expected 2 B nodes, got %d", len(nodes["B"]))
	}
	if nodes["A"][0] != root {
		t.Error("root not recorded under its name")
	}
	if nodes["B"][0].Data() != "" || nodes["B"][1].Data() != "1" {
		t.Error("B nodes recorded out of creation order")
	}
}

func TestDraftBuilder(t *testing.T) {
	b := NewDraftBuilder()
	if b.IsValid() {
		t.Error("builder without a name reports valid")
	}
	if b.CreateNode() != Dummy {
		t.Error("invalid builder must create the dummy node")
	}
	b.SetName("X")
	if !b.SetData("d") || !b.SetChildren([]Node{MustDraft("Y")}) {
		t.Error("draft builder rejected data or children")
	}
	if !b.IsValid() {
		t.Error("named builder reports invalid")
	}
	n := b.CreateNode()
	if n.TypeName() != "X" || n.Data() != "d" || n.ChildCount() != 1 {
		t.Errorf("unexpected node %v", n)
	}
	if n.Type().Name() != "X" {
		t.Errorf("type handle name = %q", n.Type().Name())
	}
}

func TestDraftFactory(t *testing.T) {
	var f Factory = DraftFactory{}
	if f.CreateBuilder("") != nil {
		t.Error("factory built the empty type")
	}
	b := f.CreateBuilder("Stmt")
	if b == nil {
		t.Fatal("factory refused a draft type")
	}
	if got := b.CreateNode().TypeName(); got != "Stmt" {
		t.Errorf("built type %q", got)
	}
}
