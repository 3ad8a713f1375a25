package ir

import (
	"fmt"
	"strings"
)

// DraftNode is a general-purpose node without typing rules: any data and
// any children are accepted. Drafts are used by tests, tooling, and as a
// deserialization fallback when no factory knows a type.
type DraftNode struct {
	fragment   Fragment
	name       string
	data       string
	children   []Node
	properties map[string]string
}

func (n *DraftNode) TypeName() string              { return n.name }
func (n *DraftNode) Data() string                  { return n.data }
func (n *DraftNode) ChildCount() int               { return len(n.children) }
func (n *DraftNode) Child(index int) Node          { return n.children[index] }
func (n *DraftNode) Fragment() Fragment            { return n.fragment }
func (n *DraftNode) Properties() map[string]string { return n.properties }
func (n *DraftNode) Type() Type                    { return draftType(n.name) }

func (n *DraftNode) String() string {
	var sb strings.Builder
	writeDraft(&sb, n)
	return sb.String()
}

func writeDraft(sb *strings.Builder, n Node) {
	sb.WriteString(n.TypeName())
	if d := n.Data(); d != "" {
		sb.WriteByte('<')
		sb.WriteString(d)
		sb.WriteByte('>')
	}
	if n.ChildCount() > 0 {
		sb.WriteByte('(')
		for i := range n.ChildCount() {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeDraft(sb, n.Child(i))
		}
		sb.WriteByte(')')
	}
}

type draftType string

func (t draftType) Name() string { return string(t) }

func (t draftType) CreateBuilder() Builder {
	b := NewDraftBuilder()
	b.SetName(string(t))
	return b
}

// DraftBuilder builds draft nodes. It accepts any data and children and is
// valid as soon as a non-empty name is set.
type DraftBuilder struct {
	fragment   Fragment
	name       string
	data       string
	children   []Node
	properties map[string]string
}

// NewDraftBuilder returns an empty draft builder.
func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{}
}

// SetName sets the type name of the node being built.
func (b *DraftBuilder) SetName(name string) {
	b.name = name
}

// SetProperties sets the properties of the node being built.
func (b *DraftBuilder) SetProperties(props map[string]string) {
	b.properties = props
}

func (b *DraftBuilder) SetFragment(f Fragment) { b.fragment = f }

func (b *DraftBuilder) SetData(data string) bool {
	b.data = data
	return true
}

func (b *DraftBuilder) SetChildren(children []Node) bool {
	b.children = children
	return true
}

func (b *DraftBuilder) IsValid() bool {
	return b.name != ""
}

func (b *DraftBuilder) CreateNode() Node {
	if !b.IsValid() {
		return Dummy
	}
	return &DraftNode{
		fragment:   b.fragment,
		name:       b.name,
		data:       b.data,
		children:   append([]Node(nil), b.children...),
		properties: b.properties,
	}
}

// DraftFactory is a factory that builds a draft for any type name.
type DraftFactory struct{}

func (DraftFactory) CreateBuilder(typeName string) Builder {
	if typeName == "" {
		return nil
	}
	return draftType(typeName).CreateBuilder()
}

// ParseDraft builds a draft tree from a compact notation:
//
//	Name            a node with no data and no children
//	Name<data>      a node with data
//	Name(A, B)      a node with children
//	Name<d>(A, B)   both
//
// Whitespace between tokens is ignored.
func ParseDraft(s string) (Node, error) {
	return ParseDraftInto(s, nil)
}

// ParseDraftInto is ParseDraft, additionally recording every created node
// in nodes under its type name, in creation (post-order) sequence. A nil
// map disables recording.
func ParseDraftInto(s string, nodes map[string][]Node) (Node, error) {
	p := &draftParser{src: s, nodes: nodes}
	n, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("ir: trailing input at offset %d in %q", p.pos, s)
	}
	return n, nil
}

// MustDraft is ParseDraft, panicking on malformed input. Intended for
// tests and fixed literals.
func MustDraft(s string) Node {
	n, err := ParseDraft(s)
	if err != nil {
		panic(err)
	}
	return n
}

type draftParser struct {
	src   string
	pos   int
	nodes map[string][]Node
}

func (p *draftParser) parseNode() (Node, error) {
	p.skipSpace()
	name := p.takeName()
	if name == "" {
		return nil, fmt.Errorf("ir: expected node name at offset %d in %q", p.pos, p.src)
	}
	p.skipSpace()
	data := ""
	if p.peek() == '<' {
		p.pos++
		end := strings.IndexByte(p.src[p.pos:], '>')
		if end < 0 {
			return nil, fmt.Errorf("ir: unterminated data in %q", p.src)
		}
		data = p.src[p.pos : p.pos+end]
		p.pos += end + 1
		p.skipSpace()
	}
	var children []Node
	if p.peek() == '(' {
		p.pos++
		for {
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			p.skipSpace()
			switch p.peek() {
			case ',':
				p.pos++
			case ')':
				p.pos++
			default:
				return nil, fmt.Errorf("ir: expected ',' or ')' at offset %d in %q", p.pos, p.src)
			}
			if p.src[p.pos-1] == ')' {
				break
			}
		}
	}
	b := NewDraftBuilder()
	b.SetName(name)
	b.SetData(data)
	b.SetChildren(children)
	n := b.CreateNode()
	if p.nodes != nil {
		p.nodes[name] = append(p.nodes[name], n)
	}
	return n, nil
}

func (p *draftParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *draftParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

func (p *draftParser) takeName() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '<' || c == '(' || c == ')' || c == ',' || c == ' ' || c == '\t' || c == '\n' {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}
