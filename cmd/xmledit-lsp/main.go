package main

import (
	"log"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/karlkauc/xmledit/completion"
	"github.com/karlkauc/xmledit/lsp"
)

// baseCandidates is the schema-independent candidate set: the XPath axes
// and the core function library. Schema-derived element and attribute
// candidates are layered on top once a grammar is attached.
var baseCandidates = []completion.Item{
	{Label: "child", InsertText: "child::", Kind: completion.KindXPathAxis},
	{Label: "parent", InsertText: "parent::", Kind: completion.KindXPathAxis},
	{Label: "ancestor", InsertText: "ancestor::", Kind: completion.KindXPathAxis},
	{Label: "descendant", InsertText: "descendant::", Kind: completion.KindXPathAxis},
	{Label: "following-sibling", InsertText: "following-sibling::", Kind: completion.KindXPathAxis},
	{Label: "preceding-sibling", InsertText: "preceding-sibling::", Kind: completion.KindXPathAxis},
	{Label: "attribute", InsertText: "attribute::", Kind: completion.KindXPathAxis},
	{Label: "self", InsertText: "self::", Kind: completion.KindXPathAxis},
	{Label: "position", InsertText: "position()", Kind: completion.KindXPathFunction},
	{Label: "last", InsertText: "last()", Kind: completion.KindXPathFunction},
	{Label: "count", InsertText: "count()", Kind: completion.KindXPathFunction},
	{Label: "name", InsertText: "name()", Kind: completion.KindXPathFunction},
	{Label: "text", InsertText: "text()", Kind: completion.KindXPathFunction},
	{Label: "contains", InsertText: "contains()", Kind: completion.KindXPathFunction},
	{Label: "starts-with", InsertText: "starts-with()", Kind: completion.KindXPathFunction},
	{Label: "normalize-space", InsertText: "normalize-space()", Kind: completion.KindXPathFunction},
}

func main() {
	commonlog.Configure(1, nil)

	engine := completion.NewEngine(baseCandidates)
	srv := lsp.NewServer(engine)

	if err := srv.RunStdio(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
