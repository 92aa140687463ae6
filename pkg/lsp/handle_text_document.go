package lsp

import (
	"context"

	"github.com/claytmpl/clayls/pkg/classify"
	"github.com/claytmpl/clayls/pkg/lsp/protocol"
	"github.com/claytmpl/clayls/pkg/position"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("uri", string(params.TextDocument.URI)).Msg("document opened")

	doc := &Document{
		URI:        string(params.TextDocument.URI),
		LanguageID: params.TextDocument.LanguageID,
		Version:    params.TextDocument.Version,
		Content:    params.TextDocument.Text,
	}

	s.documents.Store(params.TextDocument.URI, doc)

	return s.evaluateDocument(ctx, doc)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("uri", string(params.TextDocument.URI)).Msg("document changed")

	if len(params.ContentChanges) == 0 {
		return nil
	}

	doc, ok := s.documents.GetOpen(params.TextDocument.URI)
	if !ok {
		return errors.Errorf("document not found: %s", params.TextDocument.URI)
	}

	doc.Version = params.TextDocument.Version
	firstLineTouched := false
	for _, change := range params.ContentChanges {
		if change.Range == nil {
			// Full-content replacement, line 0 is always affected.
			doc.Content = change.Text
			firstLineTouched = true
			continue
		}

		if classify.TouchesFirstLine(int(change.Range.Start.Line), int(change.Range.End.Line)) {
			firstLineTouched = true
		}

		start := position.FromLineAndColumn(int(change.Range.Start.Line), int(change.Range.Start.Character), doc.Content)
		end := position.FromLineAndColumn(int(change.Range.End.Line), int(change.Range.End.Character), doc.Content)
		doc.Content = position.Splice(doc.Content, start, end, change.Text)
	}

	s.documents.Store(params.TextDocument.URI, doc)

	// Edits elsewhere in the document must not re-run classification on
	// every keystroke.
	if !firstLineTouched {
		return nil
	}

	return s.evaluateDocument(ctx, doc)
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("uri", string(params.TextDocument.URI)).Msg("document saved")

	doc, ok := s.documents.GetOpen(params.TextDocument.URI)
	if !ok {
		return errors.Errorf("document not found: %s", params.TextDocument.URI)
	}

	if params.Text != nil {
		doc.Content = *params.Text
		s.documents.Store(params.TextDocument.URI, doc)
	}

	return s.evaluateDocument(ctx, doc)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	zerolog.Ctx(ctx).Debug().Str("uri", string(params.TextDocument.URI)).Msg("document closed")

	s.documents.Delete(params.TextDocument.URI)
	return nil
}

// evaluateDocument runs the classifier over the current document state.
func (s *Server) evaluateDocument(ctx context.Context, doc *Document) error {
	return s.classifier.Evaluate(ctx, classify.Snapshot{
		URI:        doc.URI,
		LanguageID: string(doc.LanguageID),
		Lines:      doc.Lines(),
	}, s)
}

// SetDocumentLanguage implements classify.Host. The relabel request goes to
// the editor; when it succeeds, the stored document is updated so repeated
// triggers see the derived identifier. Editor refusal propagates unchanged.
func (s *Server) SetDocumentLanguage(ctx context.Context, uri string, languageID string) error {
	if s.callbackClient == nil {
		zerolog.Ctx(ctx).Warn().Str("uri", uri).Msg("no callback client, skipping relabel")
		return nil
	}

	err := s.callbackClient.SetDocumentLanguage(ctx, &protocol.SetDocumentLanguageParams{
		URI:        protocol.DocumentURI(uri),
		LanguageID: protocol.LanguageKind(languageID),
	})
	if err != nil {
		return errors.Errorf("relabeling %s to %s: %w", uri, languageID, err)
	}

	if doc, ok := s.documents.GetOpen(protocol.DocumentURI(uri)); ok {
		doc.LanguageID = protocol.LanguageKind(languageID)
		s.documents.Store(protocol.DocumentURI(uri), doc)
	}

	return nil
}

// ShowMessage implements classify.Host.
func (s *Server) ShowMessage(ctx context.Context, message string) error {
	if s.callbackClient == nil {
		zerolog.Ctx(ctx).Warn().Msg("no callback client, skipping notification")
		return nil
	}

	return s.callbackClient.ShowMessage(ctx, &protocol.ShowMessageParams{
		Type:    protocol.Info,
		Message: message,
	})
}
