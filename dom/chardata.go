package dom

import (
	"fmt"
	"strings"
)

// asciiSpace is the whitespace set used by the whitespace predicate.
const asciiSpace = " \t\n\r"

// Text is a character-data node. Its content is never unset: a caller
// passing the zero value ends up with the empty string.
type Text struct {
	id      string
	content string
	parent  *Element
}

// NewText creates a detached text node holding s.
func NewText(s string) *Text {
	return &Text{id: newID(), content: s}
}

func (t *Text) ID() string       { return t.id }
func (t *Text) Kind() Kind       { return KindText }
func (t *Text) Parent() *Element { return t.parent }

func (t *Text) setParent(p *Element) { t.parent = p }

// Text returns the stored content.
func (t *Text) Text() string { return t.content }

// SetText replaces the stored content.
func (t *Text) SetText(s string) { t.content = s }

// IsWhitespace reports whether the content is empty after trimming the
// ASCII whitespace set (space, tab, LF, CR). An empty node counts as
// whitespace.
func (t *Text) IsWhitespace() bool {
	return strings.Trim(t.content, asciiSpace) == ""
}

// Serialize emits the escaped content. Text nodes ignore indentation.
func (t *Text) Serialize(indent int) string {
	return EscapeText(t.content)
}

// DeepCopy copies the node with a fresh identifier.
func (t *Text) DeepCopy(parent *Element) Node {
	cp := NewText(t.content)
	if parent != nil {
		parent.AppendChild(cp)
	}
	return cp
}

// Accept dispatches the text callback when the visitor defines one.
func (t *Text) Accept(v *Visitor) {
	if v != nil && v.Text != nil {
		v.Text(t)
	}
}

func (t *Text) String() string {
	return fmt.Sprintf("%s(%q)", KindText, preview(t.content))
}

// Comment is a comment node.
type Comment struct {
	id      string
	content string
	parent  *Element
}

// NewComment creates a detached comment node.
func NewComment(s string) *Comment {
	return &Comment{id: newID(), content: s}
}

func (c *Comment) ID() string       { return c.id }
func (c *Comment) Kind() Kind       { return KindComment }
func (c *Comment) Parent() *Element { return c.parent }

func (c *Comment) setParent(p *Element) { c.parent = p }

// Text returns the comment content.
func (c *Comment) Text() string { return c.content }

// SetText replaces the comment content.
func (c *Comment) SetText(s string) { c.content = s }

func (c *Comment) Serialize(indent int) string {
	return indentPrefix(indent) + "<!--" + c.content + "-->"
}

func (c *Comment) DeepCopy(parent *Element) Node {
	cp := NewComment(c.content)
	if parent != nil {
		parent.AppendChild(cp)
	}
	return cp
}

func (c *Comment) Accept(v *Visitor) {
	if v != nil && v.Comment != nil {
		v.Comment(c)
	}
}

func (c *Comment) String() string {
	return fmt.Sprintf("%s(%q)", KindComment, preview(c.content))
}

// CDATA is a CDATA section node. Its content is emitted verbatim.
type CDATA struct {
	id      string
	content string
	parent  *Element
}

// NewCDATA creates a detached CDATA node.
func NewCDATA(s string) *CDATA {
	return &CDATA{id: newID(), content: s}
}

func (c *CDATA) ID() string       { return c.id }
func (c *CDATA) Kind() Kind       { return KindCDATA }
func (c *CDATA) Parent() *Element { return c.parent }

func (c *CDATA) setParent(p *Element) { c.parent = p }

// Text returns the section content.
func (c *CDATA) Text() string { return c.content }

// SetText replaces the section content.
func (c *CDATA) SetText(s string) { c.content = s }

func (c *CDATA) Serialize(indent int) string {
	return indentPrefix(indent) + "<![CDATA[" + c.content + "]]>"
}

func (c *CDATA) DeepCopy(parent *Element) Node {
	cp := NewCDATA(c.content)
	if parent != nil {
		parent.AppendChild(cp)
	}
	return cp
}

func (c *CDATA) Accept(v *Visitor) {
	if v != nil && v.CDATA != nil {
		v.CDATA(c)
	}
}

func (c *CDATA) String() string {
	return fmt.Sprintf("%s(%q)", KindCDATA, preview(c.content))
}

// ProcInst is a processing-instruction node such as <?xml-stylesheet …?>.
type ProcInst struct {
	id     string
	target string
	data   string
	parent *Element
}

// NewProcInst creates a detached processing instruction.
func NewProcInst(target, data string) *ProcInst {
	return &ProcInst{id: newID(), target: target, data: data}
}

func (p *ProcInst) ID() string       { return p.id }
func (p *ProcInst) Kind() Kind       { return KindProcInst }
func (p *ProcInst) Parent() *Element { return p.parent }

func (p *ProcInst) setParent(e *Element) { p.parent = e }

// Target returns the instruction target.
func (p *ProcInst) Target() string { return p.target }

// Data returns the instruction data.
func (p *ProcInst) Data() string { return p.data }

func (p *ProcInst) Serialize(indent int) string {
	if p.data == "" {
		return indentPrefix(indent) + "<?" + p.target + "?>"
	}
	return indentPrefix(indent) + "<?" + p.target + " " + p.data + "?>"
}

func (p *ProcInst) DeepCopy(parent *Element) Node {
	cp := NewProcInst(p.target, p.data)
	if parent != nil {
		parent.AppendChild(cp)
	}
	return cp
}

func (p *ProcInst) Accept(v *Visitor) {
	if v != nil && v.ProcInst != nil {
		v.ProcInst(p)
	}
}

func (p *ProcInst) String() string {
	return fmt.Sprintf("%s(%q)", KindProcInst, preview(p.target+" "+p.data))
}
