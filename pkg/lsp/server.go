// Package lsp implements the clayls language server: document lifecycle
// handling that feeds the Clay classifier, and completion requests answered
// from the helper catalog.
package lsp

import (
	"context"

	"github.com/claytmpl/clayls/pkg/classify"
	"github.com/claytmpl/clayls/pkg/completion"
	"github.com/claytmpl/clayls/pkg/lsp/protocol"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Server is a single LSP session.
type Server struct {
	id string

	documents  *DocumentManager
	classifier *classify.Classifier
	engine     *completion.Engine

	clientCapabilities protocol.ClientCapabilities
	serverCapabilities protocol.ServerCapabilities

	// client for server→client pushes, set once the transport is up.
	callbackClient protocol.Client
}

var _ protocol.Server = (*Server)(nil)

func NewServer(ctx context.Context) *Server {
	server := &Server{
		id:         uuid.NewString(),
		documents:  NewDocumentManager(afero.NewOsFs()),
		classifier: classify.New(),
		engine:     completion.NewEngine(),
	}

	zerolog.Ctx(ctx).Debug().Str("server_id", server.id).Msg("server created")

	return server
}

func (s *Server) SetCallbackClient(client protocol.Client) {
	s.callbackClient = client
}

func (s *Server) Documents() *DocumentManager {
	return s.documents
}

func (s *Server) Shutdown(ctx context.Context) error {
	zerolog.Ctx(ctx).Debug().Str("server_id", s.id).Msg("shutdown requested")
	return nil
}

func (s *Server) Exit(ctx context.Context) error {
	return nil
}

func (s *Server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil // Not implemented yet
}
