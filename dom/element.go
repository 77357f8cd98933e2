package dom

import "fmt"

// Attr is a single name/value attribute on an element. Attribute order is
// preserved as written.
type Attr struct {
	Name  string
	Value string
}

// Element is the container node kind. It owns an ordered child sequence;
// children hold a non-owning back-reference to it.
type Element struct {
	id       string
	name     string
	attrs    []Attr
	children []Node
	parent   *Element
}

// NewElement creates a detached element with the given tag name.
func NewElement(name string) *Element {
	return &Element{id: newID(), name: name}
}

func (e *Element) ID() string       { return e.id }
func (e *Element) Kind() Kind       { return KindElement }
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) setParent(p *Element) { e.parent = p }

// Name returns the tag name.
func (e *Element) Name() string { return e.name }

// SetName changes the tag name.
func (e *Element) SetName(name string) { e.name = name }

// Attr returns the value of the named attribute, or "" when absent.
func (e *Element) Attr(name string) string {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets an attribute, replacing an existing value in place.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// RemoveAttr removes the named attribute. Removing an absent attribute is
// a no-op.
func (e *Element) RemoveAttr(name string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns a copy of the attribute list in document order.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// ChildCount returns the number of direct children.
func (e *Element) ChildCount() int { return len(e.children) }

// ChildAt returns the i-th child, or nil when i is out of range.
func (e *Element) ChildAt(i int) Node {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// Children returns a copy of the child sequence in document order.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// AppendChild adds n as the last child. A node that already has a parent
// is detached from it first, so a node has at most one parent.
func (e *Element) AppendChild(n Node) {
	if n == nil {
		return
	}
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
	n.setParent(e)
	e.children = append(e.children, n)
}

// InsertChildAt inserts n before the i-th child; i values past the end
// append. The node is detached from any previous parent first.
func (e *Element) InsertChildAt(i int, n Node) {
	if n == nil {
		return
	}
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
	if i < 0 {
		i = 0
	}
	if i >= len(e.children) {
		n.setParent(e)
		e.children = append(e.children, n)
		return
	}
	n.setParent(e)
	e.children = append(e.children[:i], append([]Node{n}, e.children[i:]...)...)
}

// RemoveChild unlinks n from the child sequence and clears its parent
// reference. It reports whether n was a child. No further cleanup happens;
// ownership is structural.
func (e *Element) RemoveChild(n Node) bool {
	for i, child := range e.children {
		if child == n {
			e.children = append(e.children[:i], e.children[i+1:]...)
			n.setParent(nil)
			return true
		}
	}
	return false
}

// ReplaceChild swaps old for n in place, keeping the child position. It
// reports whether old was a child.
func (e *Element) ReplaceChild(old, n Node) bool {
	if n == nil {
		return false
	}
	for i, child := range e.children {
		if child == old {
			if p := n.Parent(); p != nil {
				p.RemoveChild(n)
			}
			old.setParent(nil)
			n.setParent(e)
			e.children[i] = n
			return true
		}
	}
	return false
}

// DeepCopy copies the element and its whole subtree. Every node in the
// copy gets a fresh identifier and the copy shares no mutable state with
// the source.
func (e *Element) DeepCopy(parent *Element) Node {
	cp := NewElement(e.name)
	cp.attrs = make([]Attr, len(e.attrs))
	copy(cp.attrs, e.attrs)
	for _, child := range e.children {
		child.DeepCopy(cp)
	}
	if parent != nil {
		parent.AppendChild(cp)
	}
	return cp
}

// Accept dispatches the element callback when the visitor defines one.
func (e *Element) Accept(v *Visitor) {
	if v != nil && v.Element != nil {
		v.Element(e)
	}
}

func (e *Element) String() string {
	return fmt.Sprintf("%s(%q)", KindElement, preview(e.name))
}
