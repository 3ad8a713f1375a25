package serialize

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/treex-io/treex"
	"github.com/treex-io/treex/difftree"
	"github.com/treex-io/treex/ir"
	"github.com/treex-io/treex/mapping"
)

// patchOp is one RFC-6902 operation.
type patchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// ExportJSONPatch converts the edit script of a mapping result into an
// RFC-6902 patch over the JSON serialization of the left tree. Applying
// the patch to MarshalJSON(left) yields MarshalJSON of the right tree.
func ExportJSONPatch(left ir.Node, res *mapping.Result) ([]byte, error) {
	t, err := treex.FromMapping(left, res)
	if err != nil {
		return nil, err
	}
	var ops []patchOp
	switch root := t.Root().(type) {
	case *difftree.Replace:
		value, err := MarshalJSON(root.After())
		if err != nil {
			return nil, err
		}
		ops = append(ops, patchOp{Op: "replace", Path: "", Value: value})
	case *difftree.Node:
		ops, err = exportNode(root, "", ops)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("serialize: unexpected root item %T", t.Root())
	}
	if ops == nil {
		ops = []patchOp{}
	}
	return json.Marshal(ops)
}

// exportNode emits operations for one difference node. The index tracks
// positions in the evolving document, so operations are valid when
// applied in sequence.
func exportNode(d *difftree.Node, ptr string, ops []patchOp) ([]patchOp, error) {
	items := d.Items()
	if d.Prototype().ChildCount() == 0 && len(items) > 0 {
		// The serialized parent has no children array; add it whole.
		value, err := insertedArray(items)
		if err != nil {
			return nil, err
		}
		return append(ops, patchOp{Op: "add", Path: ptr + "/children", Value: value}), nil
	}
	if len(items) > 0 && allDeleted(items) {
		// Every child goes away; the serialized form drops the array.
		return append(ops, patchOp{Op: "remove", Path: ptr + "/children"}), nil
	}
	index := 0
	for _, item := range items {
		path := fmt.Sprintf("%s/children/%d", ptr, index)
		switch x := item.(type) {
		case *difftree.Node:
			var err error
			ops, err = exportNode(x, path, ops)
			if err != nil {
				return nil, err
			}
			index++
		case *difftree.Insert:
			value, err := MarshalJSON(x.Node())
			if err != nil {
				return nil, err
			}
			ops = append(ops, patchOp{Op: "add", Path: path, Value: value})
			index++
		case *difftree.Delete:
			ops = append(ops, patchOp{Op: "remove", Path: path})
		case *difftree.Replace:
			value, err := MarshalJSON(x.After())
			if err != nil {
				return nil, err
			}
			ops = append(ops, patchOp{Op: "replace", Path: path, Value: value})
			index++
		}
	}
	return ops, nil
}

func allDeleted(items []difftree.Item) bool {
	for _, item := range items {
		if _, ok := item.(*difftree.Delete); !ok {
			return false
		}
	}
	return true
}

func insertedArray(items []difftree.Item) (json.RawMessage, error) {
	docs := make([]*document, 0, len(items))
	for _, item := range items {
		ins, ok := item.(*difftree.Insert)
		if !ok {
			return nil, fmt.Errorf("serialize: childless parent holds %T item", item)
		}
		docs = append(docs, toDocument(ins.Node()))
	}
	return json.Marshal(docs)
}

// ApplyJSONPatch applies an RFC-6902 patch to a serialized tree.
func ApplyJSONPatch(doc, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	return out, nil
}
