// Package permission gates command execution with boolean expression trees
// over actor predicates. Trees are built once at registration, never mutated,
// and evaluated per incoming message with short-circuit semantics.
package permission

import (
	"strings"

	"github.com/keshon/tgclick/pkg/chat"
)

// Permission is a node in a boolean expression tree. Evaluate must be pure
// and total: no side effects, a result for every context.
type Permission interface {
	Evaluate(ctx chat.Context) bool
}

// Func adapts a plain predicate function into a Permission, so custom
// checks compose with the built-ins through the same combinators.
type Func func(ctx chat.Context) bool

// Evaluate calls the wrapped predicate.
func (f Func) Evaluate(ctx chat.Context) bool { return f(ctx) }

type andNode struct {
	children []Permission
}

// And combines permissions so all must grant. Evaluation stops at the first
// child that denies.
func And(perms ...Permission) Permission {
	return andNode{children: perms}
}

func (n andNode) Evaluate(ctx chat.Context) bool {
	for _, p := range n.children {
		if !p.Evaluate(ctx) {
			return false
		}
	}
	return true
}

func (n andNode) String() string {
	return "(" + joinNodes(n.children, " and ") + ")"
}

type orNode struct {
	children []Permission
}

// Or combines permissions so one granting is enough. Evaluation stops at the
// first child that grants.
func Or(perms ...Permission) Permission {
	return orNode{children: perms}
}

func (n orNode) Evaluate(ctx chat.Context) bool {
	for _, p := range n.children {
		if p.Evaluate(ctx) {
			return true
		}
	}
	return false
}

func (n orNode) String() string {
	return "(" + joinNodes(n.children, " or ") + ")"
}

type notNode struct {
	inner Permission
}

// Not inverts a permission.
func Not(p Permission) Permission {
	return notNode{inner: p}
}

func (n notNode) Evaluate(ctx chat.Context) bool {
	return !n.inner.Evaluate(ctx)
}

func (n notNode) String() string {
	return "(not " + nodeName(n.inner) + ")"
}

func joinNodes(perms []Permission, sep string) string {
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, nodeName(p))
	}
	return strings.Join(names, sep)
}

func nodeName(p Permission) string {
	if s, ok := p.(interface{ String() string }); ok {
		return s.String()
	}
	return "custom"
}
