package pred

import (
	"fmt"

	"github.com/npillmayer/fncomb"
	tp "github.com/xlab/treeprint"
)

type kind int8

const (
	kindLeaf kind = iota
	kindAll
	kindAny
	kindNot
)

func (k kind) String() string {
	switch k {
	case kindAll:
		return "all"
	case kindAny:
		return "any"
	case kindNot:
		return "not"
	}
	return "leaf"
}

// Expr is a named, inspectable predicate over T. Expr values are immutable.
type Expr[T any] struct {
	name     string
	kind     kind
	children []Expr[T]
	fn       func(T) bool
}

// Leaf wraps predicate p under name.
func Leaf[T any](name string, p func(T) bool) Expr[T] {
	return Expr[T]{name: name, kind: kindLeaf, fn: p}
}

// All is the conjunction of es, evaluated in order and stopping at the first false.
func All[T any](name string, es ...Expr[T]) Expr[T] {
	return Expr[T]{name: name, kind: kindAll, children: clone(es), fn: fncomb.Every(funcs(es)...)}
}

// Any is the disjunction of es, evaluated in order and stopping at the first true.
func Any[T any](name string, es ...Expr[T]) Expr[T] {
	return Expr[T]{name: name, kind: kindAny, children: clone(es), fn: fncomb.Some(funcs(es)...)}
}

// Not negates e. The resulting expression is named "not <name of e>".
func Not[T any](e Expr[T]) Expr[T] {
	return Expr[T]{
		name:     "not " + e.name,
		kind:     kindNot,
		children: []Expr[T]{e},
		fn:       fncomb.Not(e.Func()),
	}
}

// Name returns the name of e.
func (e Expr[T]) Name() string {
	return e.name
}

// Test evaluates e for x. The zero Expr is always false.
func (e Expr[T]) Test(x T) bool {
	if e.fn == nil {
		return false
	}
	return e.fn(x)
}

// Func returns e as a plain predicate.
func (e Expr[T]) Func() func(T) bool {
	return e.Test
}

// Tree renders the structure of e.
func (e Expr[T]) Tree() string {
	printer := tp.New()
	e.print(printer)
	return printer.String()
}

func (e Expr[T]) print(t tp.Tree) {
	if e.kind == kindLeaf {
		t.AddNode(e.name)
		return
	}
	b := t.AddMetaBranch(e.kind.String(), e.name)
	for _, c := range e.children {
		c.print(b)
	}
}

// Explain evaluates e for x and renders every node with its result. Nodes not
// evaluated because of short-circuiting are marked as skipped.
func Explain[T any](e Expr[T], x T) string {
	trace := explain(e, x)
	tracer().Debugf("explained %q for %v => %s", e.name, x, trace.result)
	printer := tp.New()
	trace.print(printer)
	return printer.String()
}

// step records the evaluation of a single node.
type step struct {
	name     string
	result   string
	children []step
}

func explain[T any](e Expr[T], x T) step {
	s := step{name: e.name}
	if e.kind == kindLeaf {
		s.result = fmt.Sprint(e.Test(x))
		return s
	}
	r := e.kind == kindAll
	decided := false
	for _, c := range e.children {
		if decided {
			s.children = append(s.children, step{name: c.name, result: "skipped"})
			continue
		}
		cs := explain(c, x)
		s.children = append(s.children, cs)
		cr := cs.result == "true"
		switch e.kind {
		case kindAll:
			r, decided = cr, !cr
		case kindAny:
			r, decided = cr, cr
		case kindNot:
			r = !cr
		}
	}
	s.result = fmt.Sprint(r)
	return s
}

func (s step) print(t tp.Tree) {
	if len(s.children) == 0 {
		t.AddMetaNode(s.result, s.name)
		return
	}
	b := t.AddMetaBranch(s.result, s.name)
	for _, c := range s.children {
		c.print(b)
	}
}

func (e Expr[T]) String() string {
	return fmt.Sprintf("%s(%s)", e.kind, e.name)
}

func funcs[T any](es []Expr[T]) []func(T) bool {
	fns := make([]func(T) bool, len(es))
	for i, e := range es {
		fns[i] = e.Func()
	}
	return fns
}

func clone[T any](es []Expr[T]) []Expr[T] {
	c := make([]Expr[T], len(es))
	copy(c, es)
	return c
}
