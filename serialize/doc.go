// Package serialize converts syntax trees to and from portable documents.
//
// A tree serializes as a nested object with a type name, optional data,
// optional properties, and children:
//
//	{"type": "Addition", "children": [
//	  {"type": "IntegerLiteral", "data": "2"},
//	  {"type": "IntegerLiteral", "data": "3"}]}
//
// The same shape is available in YAML. Deserialization goes through an
// ir.Factory so typed nodes are rebuilt where the factory knows the type;
// unknown types fall back to drafts.
//
// Edit scripts can be exported as RFC-6902 (JSON Patch) documents over
// the serialized form, and such documents can be applied to serialized
// trees.
package serialize
