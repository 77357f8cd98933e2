package lsp

import (
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/karlkauc/xmledit/completion"
	"github.com/karlkauc/xmledit/dom"
	"github.com/karlkauc/xmledit/validation"
)

const lsName = "xmledit"

var version = "0.1.0"

// Server wires the editor core into an LSP session: it keeps the text and
// decoded tree per open document, publishes decode diagnostics, and
// answers completion requests from a schema-fed engine.
type Server struct {
	handler *protocol.Handler
	engine  *completion.Engine
	texts   map[string]string
	trees   map[string]*dom.Element
	log     commonlog.Logger
}

// NewServer builds a stdio-ready server over the given completion engine.
func NewServer(engine *completion.Engine) *server.Server {
	ls := &Server{
		engine: engine,
		texts:  make(map[string]string),
		trees:  make(map[string]*dom.Element),
		log:    commonlog.GetLogger("xmledit.lsp"),
	}

	ls.handler = &protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentCompletion: ls.textDocumentCompletion,
	}

	return server.NewServer(ls.handler, lsName, false)
}

// Tree returns the last successfully decoded tree for a document URI.
func (ls *Server) Tree(uri string) *dom.Element {
	return ls.trees[uri]
}

func (ls *Server) initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"<", "/", "@"},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (ls *Server) initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	ls.log.Info("server initialized")
	return nil
}

func (ls *Server) shutdown(context *glsp.Context) error {
	ls.log.Info("server shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.updateDocument(context, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.updateDocument(context, uri, whole.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	delete(ls.texts, params.TextDocument.URI)
	delete(ls.trees, params.TextDocument.URI)
	return nil
}

func (ls *Server) textDocumentCompletion(context *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := params.TextDocument.URI
	prefix := prefixAt(ls.texts[uri], int(params.Position.Line), int(params.Position.Character))
	return CompletionItemsFor(ls.engine.Complete(prefix)), nil
}

// updateDocument re-decodes the document and publishes the outcome. A
// decode failure surfaces as a single translated diagnostic; success
// clears the markers.
func (ls *Server) updateDocument(context *glsp.Context, uri, text string) {
	ls.texts[uri] = text

	var errs []validation.Error
	tree, err := dom.DecodeBytes([]byte(text))
	if err != nil {
		ls.log.Infof("decode failed for %s: %v", uri, err)
		errs = append(errs, validation.Translate(validation.RawError{Message: err.Error()}))
	} else {
		ls.trees[uri] = tree
	}

	context.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: DiagnosticsFor(errs),
	})
}

// nameRunes are the characters a completion prefix may consist of: XML
// name characters plus the XPath step characters typed mid-expression.
const nameRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-.:"

// prefixAt extracts the token being typed at the given 0-based position.
func prefixAt(text string, line, character int) string {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	current := lines[line]
	if character > len(current) {
		character = len(current)
	}
	start := character
	for start > 0 && strings.ContainsRune(nameRunes, rune(current[start-1])) {
		start--
	}
	return current[start:character]
}
