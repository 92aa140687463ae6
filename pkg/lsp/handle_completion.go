package lsp

import (
	"context"
	"slices"

	"github.com/claytmpl/clayls/pkg/clay"
	"github.com/claytmpl/clayls/pkg/lsp/protocol"
	"github.com/claytmpl/clayls/pkg/position"
	"github.com/rs/zerolog"
)

// emptyCompletionList is the uniform "not applicable" completion result.
func emptyCompletionList() *protocol.CompletionList {
	return &protocol.CompletionList{Items: []protocol.CompletionItem{}}
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	logger := zerolog.Ctx(ctx)

	doc, ok := s.documents.GetOpen(params.TextDocument.URI)
	if !ok {
		logger.Debug().Str("uri", string(params.TextDocument.URI)).Msg("completion for unknown document")
		return emptyCompletionList(), nil
	}

	// Suggestions only apply to documents already classified as Clay.
	if !clay.IsDerivedTag(string(doc.LanguageID)) {
		return emptyCompletionList(), nil
	}

	// When a trigger character is reported it must be one we registered;
	// anything else means the client is completing for another reason.
	if params.Context != nil &&
		params.Context.TriggerKind == protocol.CompletionTriggerCharacter &&
		!slices.Contains(clay.TriggerCharacters, params.Context.TriggerCharacter) {
		return emptyCompletionList(), nil
	}

	lineText, ok := position.LineAt(doc.Content, int(params.Position.Line))
	if !ok {
		return emptyCompletionList(), nil
	}

	items := s.engine.Provide(lineText, int(params.Position.Character))
	if items == nil {
		return emptyCompletionList(), nil
	}

	logger.Debug().
		Str("uri", string(params.TextDocument.URI)).
		Int("items", len(items)).
		Msg("completion items produced")

	return &protocol.CompletionList{Items: items}, nil
}
