// Package lsp adapts the editor core's diagnostics and completions to
// Language Server Protocol types, and runs a stdio server around them.
package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/karlkauc/xmledit/completion"
	"github.com/karlkauc/xmledit/validation"
)

// diagnosticSource tags published diagnostics in the client UI.
const diagnosticSource = "xmledit"

var severityMap = map[validation.Severity]protocol.DiagnosticSeverity{
	validation.SeverityInfo:    protocol.DiagnosticSeverityInformation,
	validation.SeverityWarning: protocol.DiagnosticSeverityWarning,
	validation.SeverityError:   protocol.DiagnosticSeverityError,
}

var kindMap = map[completion.Kind]protocol.CompletionItemKind{
	completion.KindElement:        protocol.CompletionItemKindStruct,
	completion.KindAttribute:      protocol.CompletionItemKindField,
	completion.KindAttributeValue: protocol.CompletionItemKindValue,
	completion.KindXPathFunction:  protocol.CompletionItemKindFunction,
	completion.KindXPathAxis:      protocol.CompletionItemKindKeyword,
	completion.KindSnippet:        protocol.CompletionItemKindSnippet,
}

// DiagnosticFor converts a translated validation error to an LSP
// diagnostic. The validator reports 1-based positions and LSP is 0-based;
// a missing position maps to the start of the document.
func DiagnosticFor(err validation.Error) protocol.Diagnostic {
	severity := severityMap[err.Severity]
	source := diagnosticSource
	pos := protocol.Position{
		Line:      zeroBased(err.Line),
		Character: zeroBased(err.Column),
	}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: &severity,
		Source:   &source,
		Message:  err.Message,
	}
}

// DiagnosticsFor converts a batch of validation errors. It always returns
// a non-nil slice; publishing an empty slice clears stale markers.
func DiagnosticsFor(errs []validation.Error) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))
	for _, err := range errs {
		diagnostics = append(diagnostics, DiagnosticFor(err))
	}
	return diagnostics
}

// CompletionItemFor converts a core completion item to its LSP shape.
func CompletionItemFor(item completion.Item) protocol.CompletionItem {
	insert := item.InsertText
	detail := item.Kind.String()
	out := protocol.CompletionItem{
		Label:      item.Label,
		InsertText: &insert,
		Detail:     &detail,
	}
	if kind, ok := kindMap[item.Kind]; ok {
		out.Kind = &kind
	}
	return out
}

// CompletionItemsFor converts a filtered candidate list, preserving order.
func CompletionItemsFor(items []completion.Item) []protocol.CompletionItem {
	out := make([]protocol.CompletionItem, 0, len(items))
	for _, item := range items {
		out = append(out, CompletionItemFor(item))
	}
	return out
}

func zeroBased(pos *int) protocol.UInteger {
	if pos == nil || *pos <= 1 {
		return 0
	}
	return protocol.UInteger(*pos - 1)
}
