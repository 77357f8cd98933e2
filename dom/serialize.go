package dom

import "strings"

// EscapeText applies the three markup substitutions to character data.
// '&' is rewritten first so already-substituted entities are not escaped
// a second time. No other characters are transformed.
func EscapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func indentPrefix(indent int) string {
	if indent <= 0 {
		return ""
	}
	return strings.Repeat("  ", indent)
}

// Serialize renders the element and its subtree as pretty-printed markup.
// Elements whose children are all text nodes render inline; otherwise each
// child goes on its own line one level deeper. Text children ignore the
// indentation level.
func (e *Element) Serialize(indent int) string {
	var b strings.Builder
	prefix := indentPrefix(indent)

	b.WriteString(prefix)
	b.WriteString("<")
	b.WriteString(e.name)
	for _, a := range e.attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString("=\"")
		b.WriteString(EscapeText(a.Value))
		b.WriteString("\"")
	}

	if len(e.children) == 0 {
		b.WriteString("/>")
		return b.String()
	}

	b.WriteString(">")
	if e.textOnly() {
		for _, child := range e.children {
			b.WriteString(child.Serialize(0))
		}
	} else {
		for _, child := range e.children {
			b.WriteString("\n")
			if child.Kind() == KindText {
				b.WriteString(child.Serialize(0))
			} else {
				b.WriteString(child.Serialize(indent + 1))
			}
		}
		b.WriteString("\n")
		b.WriteString(prefix)
	}
	b.WriteString("</")
	b.WriteString(e.name)
	b.WriteString(">")
	return b.String()
}

func (e *Element) textOnly() bool {
	for _, child := range e.children {
		if child.Kind() != KindText {
			return false
		}
	}
	return true
}
