package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ampersand", in: "a & b", want: "a &amp; b"},
		{name: "angle brackets", in: "<tag>", want: "&lt;tag&gt;"},
		{name: "no double escaping", in: "&lt;", want: "&amp;lt;"},
		{name: "untouched", in: `quotes " and ' stay`, want: `quotes " and ' stay`},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeText(tt.in))
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	// Unescaping with the inverse mapping recovers the original.
	in := "if a < b && b > c"
	escaped := EscapeText(in)
	restored := strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&").Replace(escaped)
	assert.Equal(t, in, restored)
}

func TestSerializeElement(t *testing.T) {
	root := NewElement("bookstore")
	book := NewElement("book")
	book.SetAttr("category", "fiction")
	title := NewElement("title")
	title.AppendChild(NewText("War & Peace"))
	book.AppendChild(title)
	empty := NewElement("available")
	book.AppendChild(empty)
	root.AppendChild(book)

	want := strings.Join([]string{
		"<bookstore>",
		`  <book category="fiction">`,
		"    <title>War &amp; Peace</title>",
		"    <available/>",
		"  </book>",
		"</bookstore>",
	}, "\n")
	assert.Equal(t, want, root.Serialize(0))
}

func TestSerializeTextIgnoresIndent(t *testing.T) {
	n := NewText("x < y")
	assert.Equal(t, "x &lt; y", n.Serialize(0))
	assert.Equal(t, "x &lt; y", n.Serialize(3))
}

func TestSerializeLeafKinds(t *testing.T) {
	assert.Equal(t, "<!--note-->", NewComment("note").Serialize(0))
	assert.Equal(t, "  <!--note-->", NewComment("note").Serialize(1))
	assert.Equal(t, "<![CDATA[1 < 2]]>", NewCDATA("1 < 2").Serialize(0))
	assert.Equal(t, `<?xml-stylesheet href="s.xsl"?>`,
		NewProcInst("xml-stylesheet", `href="s.xsl"`).Serialize(0))
	assert.Equal(t, "<?break?>", NewProcInst("break", "").Serialize(0))
}

func TestSerializeAttributeEscaping(t *testing.T) {
	el := NewElement("a")
	el.SetAttr("title", "x < y & z")
	assert.Equal(t, `<a title="x &lt; y &amp; z"/>`, el.Serialize(0))
}

func TestDecodeBuildsTree(t *testing.T) {
	xml := `<catalog><book id="b1"><title>Go &amp; XML</title><!--draft--></book></catalog>`

	root, err := DecodeBytes([]byte(xml))
	require.NoError(t, err)

	assert.Equal(t, "catalog", root.Name())
	require.Equal(t, 1, root.ChildCount())

	book, ok := root.ChildAt(0).(*Element)
	require.True(t, ok)
	assert.Equal(t, "b1", book.Attr("id"))
	require.Equal(t, 2, book.ChildCount())

	title, ok := book.ChildAt(0).(*Element)
	require.True(t, ok)
	require.Equal(t, 1, title.ChildCount())
	text, ok := title.ChildAt(0).(*Text)
	require.True(t, ok)
	assert.Equal(t, "Go & XML", text.Text())

	comment, ok := book.ChildAt(1).(*Comment)
	require.True(t, ok)
	assert.Equal(t, "draft", comment.Text())
}

func TestDecodeCarriesCDATAAndProcInst(t *testing.T) {
	root, err := DecodeBytes([]byte("<a><![CDATA[1 < 2]]><?pi data?></a>"))
	require.NoError(t, err)
	require.Equal(t, 2, root.ChildCount())

	cdata, ok := root.ChildAt(0).(*CDATA)
	require.True(t, ok, "first child is %v, want a CDATA node", root.ChildAt(0))
	assert.Equal(t, "1 < 2", cdata.Text())

	pi, ok := root.ChildAt(1).(*ProcInst)
	require.True(t, ok, "second child is %v, want a processing instruction", root.ChildAt(1))
	assert.Equal(t, "pi", pi.Target())
	assert.Equal(t, "data", pi.Data())

	// The section survives a round trip as a section, not as escaped text.
	assert.Contains(t, root.Serialize(0), "<![CDATA[1 < 2]]>")
}

func TestDecodeCDATAMixedWithText(t *testing.T) {
	root, err := DecodeBytes([]byte("<a>before<![CDATA[x?>y]]>after</a>"))
	require.NoError(t, err)
	require.Equal(t, 3, root.ChildCount())

	assert.Equal(t, KindText, root.ChildAt(0).Kind())
	cdata, ok := root.ChildAt(1).(*CDATA)
	require.True(t, ok)
	assert.Equal(t, "x?>y", cdata.Text())
	assert.Equal(t, KindText, root.ChildAt(2).Kind())
}

func TestDecodeCDATAInsideCommentUntouched(t *testing.T) {
	root, err := DecodeBytes([]byte("<a><!--keep <![CDATA[as-is]]> here--></a>"))
	require.NoError(t, err)
	require.Equal(t, 1, root.ChildCount())

	comment, ok := root.ChildAt(0).(*Comment)
	require.True(t, ok)
	assert.Equal(t, "keep <![CDATA[as-is]]> here", comment.Text())
}

func TestDecodeMalformed(t *testing.T) {
	_, err := DecodeBytes([]byte("<open>"))
	assert.Error(t, err)
}
