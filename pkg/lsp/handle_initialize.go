package lsp

import (
	"context"

	"github.com/claytmpl/clayls/pkg/clay"
	"github.com/claytmpl/clayls/pkg/lsp/protocol"
	"github.com/rs/zerolog"
)

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("server_id", s.id).Msg("initializing server")

	s.clientCapabilities = params.Capabilities
	if params.ClientInfo != nil {
		logger.Debug().
			Str("client_name", params.ClientInfo.Name).
			Str("client_version", params.ClientInfo.Version).
			Msg("received client info")
	}

	s.serverCapabilities = protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: true,
			Change:    protocol.SyncIncremental,
			Save:      &protocol.SaveOptions{IncludeText: true},
		},
		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: clay.TriggerCharacters,
		},
	}

	return &protocol.InitializeResult{
		Capabilities: s.serverCapabilities,
		ServerInfo: &protocol.ServerInfo{
			Name: "clayls",
		},
	}, nil
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	zerolog.Ctx(ctx).Debug().Msg("server initialized")

	// Documents already open in the editor are deliberately not scanned
	// here: classification is purely event-triggered, never a bulk sweep.
	return nil
}
