package serialize

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/treex-io/treex/ir"
)

// MarshalYAML serializes a tree as a YAML document.
func MarshalYAML(n ir.Node) ([]byte, error) {
	if n == nil || ir.IsDummy(n) {
		return []byte("null\n"), nil
	}
	return yaml.Marshal(toDocument(n))
}

// UnmarshalYAML rebuilds a tree from a YAML document. A nil factory
// builds drafts throughout. A YAML null yields the dummy node.
func UnmarshalYAML(data []byte, f ir.Factory) (ir.Node, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	if raw == nil {
		return ir.Dummy, nil
	}
	var d document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	return d.build(f)
}
