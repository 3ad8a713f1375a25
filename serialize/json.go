package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/treex-io/treex/ir"
)

// document is the serialized form of a node.
type document struct {
	Type       string            `json:"type" yaml:"type"`
	Data       string            `json:"data,omitempty" yaml:"data,omitempty"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Children   []*document       `json:"children,omitempty" yaml:"children,omitempty"`
}

func toDocument(n ir.Node) *document {
	d := &document{
		Type:       n.TypeName(),
		Data:       n.Data(),
		Properties: n.Properties(),
	}
	for i := range n.ChildCount() {
		d.Children = append(d.Children, toDocument(n.Child(i)))
	}
	return d
}

// build reconstructs a node from its document through the factory.
// Types unknown to the factory become drafts.
func (d *document) build(f ir.Factory) (ir.Node, error) {
	if d.Type == "" {
		return nil, fmt.Errorf("serialize: document node without a type")
	}
	children := make([]ir.Node, len(d.Children))
	for i, cd := range d.Children {
		child, err := cd.build(f)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	var b ir.Builder
	if f != nil {
		b = f.CreateBuilder(d.Type)
	}
	if b == nil {
		db := ir.NewDraftBuilder()
		db.SetName(d.Type)
		db.SetProperties(d.Properties)
		b = db
	}
	if !b.SetData(d.Data) {
		return nil, fmt.Errorf("serialize: type %q rejects data %q", d.Type, d.Data)
	}
	if !b.SetChildren(children) {
		return nil, fmt.Errorf("serialize: type %q rejects its %d children", d.Type, len(children))
	}
	if !b.IsValid() {
		return nil, fmt.Errorf("serialize: incomplete node of type %q", d.Type)
	}
	return b.CreateNode(), nil
}

// MarshalJSON serializes a tree as a JSON document.
func MarshalJSON(n ir.Node) ([]byte, error) {
	if n == nil || ir.IsDummy(n) {
		return []byte("null"), nil
	}
	return json.Marshal(toDocument(n))
}

// UnmarshalJSON rebuilds a tree from a JSON document. A nil factory
// builds drafts throughout. A JSON null yields the dummy node.
func UnmarshalJSON(data []byte, f ir.Factory) (ir.Node, error) {
	var d *document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	if d == nil {
		return ir.Dummy, nil
	}
	return d.build(f)
}
