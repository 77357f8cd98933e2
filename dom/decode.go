package dom

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"

	"github.com/agentflare-ai/go-xmldom"
	"github.com/pkg/errors"
)

// DOM node type codes, per the DOM numbering used by go-xmldom.
const (
	nodeTypeElement  = 1
	nodeTypeText     = 3
	nodeTypeProcInst = 7
	nodeTypeComment  = 8
)

// cdataTarget is the reserved processing-instruction target that carries
// CDATA sections through the xmldom decoder, which reports them as plain
// character data. maskCDATA rewrites sections into these instructions
// before decoding and fromElement turns them back into CDATA nodes.
const cdataTarget = "xmledit-cdata"

// Decode reads an XML document and builds a detached tree rooted at its
// document element. Element, text, comment, CDATA and processing-
// instruction nodes are carried over; whitespace-only text nodes are
// dropped, since they are formatting artifacts and the serializer
// re-indents on output.
func Decode(r io.Reader) (*Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "dom: decode")
	}
	return DecodeBytes(data)
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) (*Element, error) {
	decoder := xmldom.NewDecoderFromBytes(maskCDATA(data))
	doc, err := decoder.Decode()
	if err != nil {
		return nil, errors.Wrap(err, "dom: decode")
	}
	return fromDocument(doc)
}

func fromDocument(doc xmldom.Document) (*Element, error) {
	root := doc.DocumentElement()
	if root == nil {
		return nil, errors.New("dom: document has no root element")
	}
	return fromElement(root), nil
}

func fromElement(src xmldom.Element) *Element {
	el := NewElement(string(src.NodeName()))

	attrs := src.Attributes()
	for i := uint(0); i < attrs.Length(); i++ {
		attr := attrs.Item(i)
		if attr == nil {
			continue
		}
		el.SetAttr(string(attr.NodeName()), string(attr.NodeValue()))
	}

	nodes := src.ChildNodes()
	for i := uint(0); i < nodes.Length(); i++ {
		node := nodes.Item(i)
		if node == nil {
			continue
		}
		switch node.NodeType() {
		case nodeTypeElement:
			if child, ok := node.(xmldom.Element); ok {
				el.AppendChild(fromElement(child))
			}
		case nodeTypeText:
			text := NewText(string(node.NodeValue()))
			if !text.IsWhitespace() {
				el.AppendChild(text)
			}
		case nodeTypeComment:
			el.AppendChild(NewComment(string(node.NodeValue())))
		case nodeTypeProcInst:
			el.AppendChild(instructionNode(string(node.NodeName()), string(node.NodeValue())))
		}
	}

	return el
}

// instructionNode resolves a decoded processing instruction: the reserved
// carrier target becomes a CDATA node again, everything else stays a
// processing instruction.
func instructionNode(target, data string) Node {
	if target == cdataTarget {
		if content, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data)); err == nil {
			return NewCDATA(string(content))
		}
	}
	return NewProcInst(target, data)
}

// maskCDATA rewrites every CDATA section into a carrier processing
// instruction. The section content travels base64-encoded so a "?>"
// inside it cannot end the instruction early. Comments and real
// processing instructions are copied through whole, so their bytes are
// never rewritten.
func maskCDATA(data []byte) []byte {
	var out bytes.Buffer
	for i := 0; i < len(data); {
		rest := data[i:]
		switch {
		case bytes.HasPrefix(rest, []byte("<!--")):
			end := bytes.Index(rest, []byte("-->"))
			if end < 0 {
				out.Write(rest)
				return out.Bytes()
			}
			out.Write(rest[:end+len("-->")])
			i += end + len("-->")
		case bytes.HasPrefix(rest, []byte("<?")):
			end := bytes.Index(rest, []byte("?>"))
			if end < 0 {
				out.Write(rest)
				return out.Bytes()
			}
			out.Write(rest[:end+len("?>")])
			i += end + len("?>")
		case bytes.HasPrefix(rest, []byte("<![CDATA[")):
			end := bytes.Index(rest, []byte("]]>"))
			if end < 0 {
				out.Write(rest)
				return out.Bytes()
			}
			out.WriteString("<?" + cdataTarget + " ")
			out.WriteString(base64.StdEncoding.EncodeToString(rest[len("<![CDATA["):end]))
			out.WriteString("?>")
			i += end + len("]]>")
		default:
			out.WriteByte(data[i])
			i++
		}
	}
	return out.Bytes()
}
