// Package completion filters schema- and XPath-derived suggestion lists
// by the text typed so far. Filtering is pure and allocation-light; it
// runs once per keystroke.
package completion

import "strings"

// Kind categorizes a completion item.
type Kind uint8

const (
	KindElement Kind = iota + 1
	KindAttribute
	KindAttributeValue
	KindXPathFunction
	KindXPathAxis
	KindSnippet
)

var kindName = map[Kind]string{
	KindElement:        "element",
	KindAttribute:      "attribute",
	KindAttributeValue: "attribute-value",
	KindXPathFunction:  "xpath-function",
	KindXPathAxis:      "xpath-axis",
	KindSnippet:        "snippet",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindName[k]; ok {
		return name
	}
	return "unknown"
}

// Item is a single suggestion: the label shown to the user, the text
// inserted on acceptance, and its kind. Items are plain values; equality
// is by content.
type Item struct {
	Label      string
	InsertText string
	Kind       Kind
}

// Filter keeps the candidates whose label or insert text starts with the
// typed prefix, compared case-insensitively. An empty prefix returns the
// candidate slice unchanged. The relative order of kept candidates is
// preserved; no scoring or deduplication happens here.
func Filter(candidates []Item, prefix string) []Item {
	if prefix == "" {
		return candidates
	}
	prefix = strings.ToLower(prefix)
	kept := make([]Item, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c.Label), prefix) ||
			strings.HasPrefix(strings.ToLower(c.InsertText), prefix) {
			kept = append(kept, c)
		}
	}
	return kept
}

// Engine holds the candidate set derived from the active schema and
// XPath context. The surrounding editor swaps the set on context changes
// and asks for completions per keystroke.
type Engine struct {
	candidates []Item
}

// NewEngine creates an engine over an initial candidate set.
func NewEngine(candidates []Item) *Engine {
	e := &Engine{}
	e.SetCandidates(candidates)
	return e
}

// SetCandidates replaces the candidate set. The slice is copied so later
// caller mutations cannot skew filtering.
func (e *Engine) SetCandidates(candidates []Item) {
	e.candidates = make([]Item, len(candidates))
	copy(e.candidates, candidates)
}

// Candidates returns a copy of the current candidate set.
func (e *Engine) Candidates() []Item {
	out := make([]Item, len(e.candidates))
	copy(out, e.candidates)
	return out
}

// Complete filters the held candidate set by the typed prefix. The
// empty-prefix result is a copy, so callers cannot reorder or rewrite the
// held set through it.
func (e *Engine) Complete(prefix string) []Item {
	if prefix == "" {
		return e.Candidates()
	}
	return Filter(e.candidates, prefix)
}
