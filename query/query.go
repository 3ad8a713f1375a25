// Package query compiles boolean predicates over syntax-tree nodes.
//
// Predicates are expr-lang expressions evaluated against a node
// environment with the fields type, data, props, and children:
//
//	p, err := query.Compile(`type == "IntegerLiteral" && data != "0"`)
//	nodes, err := query.Select(root, p)
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/treex-io/treex/ir"
)

// Env is the evaluation environment of a predicate: one node's visible
// attributes.
type Env struct {
	Type     string            `expr:"type"`
	Data     string            `expr:"data"`
	Props    map[string]string `expr:"props"`
	Children int               `expr:"children"`
}

// Predicate is a compiled node predicate.
type Predicate struct {
	src     string
	program *vm.Program
}

// Compile compiles a predicate expression.
func Compile(src string) (*Predicate, error) {
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return &Predicate{src: src, program: program}, nil
}

func (p *Predicate) String() string { return p.src }

// Match evaluates the predicate against one node.
func (p *Predicate) Match(n ir.Node) (bool, error) {
	props := n.Properties()
	if props == nil {
		props = map[string]string{}
	}
	out, err := expr.Run(p.program, Env{
		Type:     n.TypeName(),
		Data:     n.Data(),
		Props:    props,
		Children: n.ChildCount(),
	})
	if err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return out.(bool), nil
}

// Select walks the tree rooted at n in depth-first pre-order and returns
// the nodes matching the predicate.
func Select(n ir.Node, p *Predicate) ([]ir.Node, error) {
	var res []ir.Node
	var firstErr error
	ir.Visit(n, func(node ir.Node) bool {
		if firstErr != nil {
			return false
		}
		ok, err := p.Match(node)
		if err != nil {
			firstErr = err
			return false
		}
		if ok {
			res = append(res, node)
		}
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return res, nil
}
