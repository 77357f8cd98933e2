// Package dom implements the mutable document tree behind the editor:
// typed nodes with stable identity, parent back-references, deterministic
// serialization, deep copy and a per-kind visitor.
package dom

import (
	"fmt"

	"github.com/segmentio/ksuid"
)

// Kind identifies the concrete kind of a node.
type Kind uint8

const (
	KindElement Kind = iota + 1
	KindText
	KindComment
	KindCDATA
	KindProcInst
)

var kindName = map[Kind]string{
	KindElement:  "Element",
	KindText:     "Text",
	KindComment:  "Comment",
	KindCDATA:    "CDATA",
	KindProcInst: "ProcessingInstruction",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if name, ok := kindName[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Node is implemented by every node in a document tree.
//
// Every node carries an identifier assigned at construction. Identifiers
// are never reused; a deep copy always receives fresh ones, so a node and
// any of its copies compare unequal by ID.
type Node interface {
	// ID returns the node's identifier.
	ID() string
	// Kind returns the concrete node kind.
	Kind() Kind
	// Parent returns the containing element, or nil for a detached root.
	// The relation is lookup-only; ownership flows container to children.
	Parent() *Element
	// Serialize renders the node as markup at the given indentation level.
	Serialize(indent int) string
	// DeepCopy returns a fully independent copy of the subtree with fresh
	// identifiers, attached under parent when parent is non-nil.
	DeepCopy(parent *Element) Node
	// Accept dispatches the visitor callback for this node's kind.
	Accept(v *Visitor)

	setParent(p *Element)
}

func newID() string {
	return ksuid.New().String()
}

// Visitor holds one callback per node kind. A nil callback is a no-op for
// that kind, not an error.
type Visitor struct {
	Element  func(*Element)
	Text     func(*Text)
	Comment  func(*Comment)
	CDATA    func(*CDATA)
	ProcInst func(*ProcInst)
}

// Walk applies the visitor to n and then, depth-first in document order,
// to every descendant.
func Walk(n Node, v *Visitor) {
	if n == nil || v == nil {
		return
	}
	n.Accept(v)
	if el, ok := n.(*Element); ok {
		for _, child := range el.children {
			Walk(child, v)
		}
	}
}

const previewLimit = 20

// preview shortens content for debug output.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLimit {
		return content
	}
	return string(runes[:previewLimit]) + "..."
}
