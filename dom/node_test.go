package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextContentNeverUnset(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "zero value", in: "", want: ""},
		{name: "plain", in: "hello", want: "hello"},
		{name: "whitespace kept verbatim", in: "  a  ", want: "  a  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewText(tt.in)
			assert.Equal(t, tt.want, n.Text())

			n.SetText(tt.in)
			assert.Equal(t, tt.want, n.Text())
		})
	}
}

func TestTextIsWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "empty", in: "", want: true},
		{name: "spaces", in: "   ", want: true},
		{name: "mixed whitespace", in: " \t\r\n ", want: true},
		{name: "word", in: "x", want: false},
		{name: "padded word", in: "  x  ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewText(tt.in).IsWhitespace())
		})
	}
}

func TestNodeIdentity(t *testing.T) {
	a := NewElement("a")
	b := NewElement("a")
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID(), "two nodes never share an identifier")
}

func TestChildMutationKeepsParentLinks(t *testing.T) {
	root := NewElement("root")
	child := NewElement("child")
	text := NewText("body")

	root.AppendChild(child)
	child.AppendChild(text)

	require.Equal(t, 1, root.ChildCount())
	assert.Same(t, root, child.Parent())
	assert.Same(t, child, text.Parent())
	assert.Nil(t, root.Parent())

	// Re-appending under a new parent detaches first.
	other := NewElement("other")
	other.AppendChild(child)
	assert.Equal(t, 0, root.ChildCount())
	assert.Same(t, other, child.Parent())

	require.True(t, other.RemoveChild(child))
	assert.Nil(t, child.Parent())
	assert.False(t, other.RemoveChild(child), "removing twice is a no-op")
}

func TestInsertAndReplaceChild(t *testing.T) {
	root := NewElement("root")
	first := NewElement("first")
	second := NewElement("second")
	root.AppendChild(first)
	root.AppendChild(second)

	middle := NewElement("middle")
	root.InsertChildAt(1, middle)
	require.Equal(t, 3, root.ChildCount())
	assert.Same(t, middle, root.ChildAt(1))
	assert.Same(t, root, middle.Parent())

	swap := NewText("swap")
	require.True(t, root.ReplaceChild(middle, swap))
	assert.Same(t, swap, root.ChildAt(1))
	assert.Nil(t, middle.Parent())
	assert.Same(t, root, swap.Parent())
}

func TestDeepCopyIndependence(t *testing.T) {
	root := NewElement("book")
	root.SetAttr("id", "b1")
	title := NewElement("title")
	title.AppendChild(NewText("Go"))
	root.AppendChild(title)
	root.AppendChild(NewComment("todo"))

	cp, ok := root.DeepCopy(nil).(*Element)
	require.True(t, ok)

	assert.NotEqual(t, root.ID(), cp.ID())
	assert.Equal(t, root.Name(), cp.Name())
	assert.Equal(t, root.Attrs(), cp.Attrs())
	assert.Nil(t, cp.Parent())
	require.Equal(t, root.ChildCount(), cp.ChildCount())

	cpTitle, ok := cp.ChildAt(0).(*Element)
	require.True(t, ok)
	assert.NotEqual(t, title.ID(), cpTitle.ID())

	// Mutating the copy leaves the source untouched.
	cp.SetAttr("id", "b2")
	cpTitle.AppendChild(NewText("!"))
	assert.Equal(t, "b1", root.Attr("id"))
	assert.Equal(t, 1, title.ChildCount())
}

func TestDeepCopyAttaches(t *testing.T) {
	src := NewText("note")
	parent := NewElement("p")

	cp := src.DeepCopy(parent)
	assert.Same(t, parent, cp.Parent())
	assert.Equal(t, 1, parent.ChildCount())
	assert.NotEqual(t, src.ID(), cp.ID())
	assert.Equal(t, "note", cp.(*Text).Text())
}

func TestVisitorDispatch(t *testing.T) {
	root := NewElement("root")
	root.AppendChild(NewText("t"))
	root.AppendChild(NewComment("c"))
	root.AppendChild(NewCDATA("d"))
	root.AppendChild(NewProcInst("xml-stylesheet", `href="s.xsl"`))

	var elements, texts int
	v := &Visitor{
		Element: func(*Element) { elements++ },
		Text:    func(*Text) { texts++ },
		// Comment, CDATA and ProcInst handlers omitted on purpose.
	}

	Walk(root, v)
	assert.Equal(t, 1, elements)
	assert.Equal(t, 1, texts)

	// An empty visitor must be a no-op, never a failure.
	Walk(root, &Visitor{})
	Walk(root, nil)
}

func TestDebugRepresentation(t *testing.T) {
	long := NewText("This is the first sentence. This is the second sentence.")
	repr := long.String()
	assert.Less(t, len(repr), 50)
	assert.Contains(t, repr, "...")
	assert.True(t, strings.HasPrefix(repr, "Text("))

	short := NewText("short")
	assert.Equal(t, `Text("short")`, short.String())
	assert.NotContains(t, short.String(), "...")

	pi := NewProcInst("xml-stylesheet", "href")
	assert.True(t, strings.HasPrefix(pi.String(), "ProcessingInstruction("))
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "Element", KindElement.String())
	assert.Equal(t, "ProcessingInstruction", KindProcInst.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}
