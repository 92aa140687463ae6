// Package completion turns the fixed Clay helper catalog into ranked LSP
// completion items for cursors sitting inside an open expression.
//
// The engine is pure: the result depends only on the catalog and the text of
// the current line. It never filters by what the user has typed so far; the
// client's own fuzzy matcher narrows the list.
package completion

import (
	"fmt"

	"github.com/claytmpl/clayls/pkg/clay"
	"github.com/claytmpl/clayls/pkg/lsp/protocol"
)

// Engine produces suggestions from the helper catalog.
type Engine struct {
	catalog []clay.HelperDefinition
}

func NewEngine() *Engine {
	return &Engine{catalog: clay.Catalog}
}

// Provide returns one item per catalog entry when the cursor at character in
// lineText sits inside an open expression, and nil otherwise. The returned
// order follows the catalog; SortText enforces the common-before-normal
// tiering on clients that sort.
func (e *Engine) Provide(lineText string, character int) []protocol.CompletionItem {
	cctx := NewContext(lineText, character)
	if !cctx.InsideExpression() {
		return nil
	}

	items := make([]protocol.CompletionItem, 0, len(e.catalog))
	for i, def := range e.catalog {
		items = append(items, protocol.CompletionItem{
			Label:  def.Name,
			Kind:   protocol.CompletionItemKindFunction,
			Detail: def.Signature,
			Documentation: &protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: def.Documentation,
			},
			SortText:         sortText(def, i),
			InsertText:       def.Snippet,
			InsertTextFormat: protocol.InsertTextFormatSnippet,
		})
	}

	return items
}

// sortText ranks common helpers strictly before the rest; within a tier the
// catalog's declared order wins, not the alphabet.
func sortText(def clay.HelperDefinition, index int) string {
	tier := 1
	if def.Common {
		tier = 0
	}
	return fmt.Sprintf("%d_%02d", tier, index)
}
