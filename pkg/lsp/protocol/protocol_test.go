package protocol_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claytmpl/clayls/pkg/lsp/protocol"
)

// fakeServer records what the dispatch layer delivers to it.
type fakeServer struct {
	initialized bool
	opened      []protocol.DocumentURI
	shutdowns   int
}

var _ protocol.Server = (*fakeServer)(nil)

func (s *fakeServer) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			CompletionProvider: &protocol.CompletionOptions{TriggerCharacters: []string{"{"}},
		},
		ServerInfo: &protocol.ServerInfo{Name: "fake"},
	}, nil
}

func (s *fakeServer) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	s.initialized = true
	return nil
}

func (s *fakeServer) Shutdown(ctx context.Context) error {
	s.shutdowns++
	return nil
}

func (s *fakeServer) Exit(ctx context.Context) error { return nil }

func (s *fakeServer) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (s *fakeServer) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.opened = append(s.opened, params.TextDocument.URI)
	return nil
}

func (s *fakeServer) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	return nil
}

func (s *fakeServer) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	return nil
}

func (s *fakeServer) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (s *fakeServer) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	return &protocol.CompletionList{
		Items: []protocol.CompletionItem{{Label: "pascalCase"}},
	}, nil
}

func startInstance(t *testing.T, srv protocol.Server, copts *jrpc2.ClientOptions) *jrpc2.Client {
	t.Helper()

	serverReads, clientWrites := io.Pipe()
	clientReads, serverWrites := io.Pipe()

	instance := protocol.NewServerInstance(context.Background(), srv, &jrpc2.ServerOptions{Concurrency: 1})
	instance.StartAndDetach(channel.LSP(serverReads, serverWrites))

	client := jrpc2.NewClient(channel.LSP(clientReads, clientWrites), copts)
	t.Cleanup(func() {
		_ = client.Close()
		_ = clientWrites.Close()
		_ = serverWrites.Close()
	})
	return client
}

func TestDispatchRoundTrip(t *testing.T) {
	srv := &fakeServer{}
	client := startInstance(t, srv, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var initResult protocol.InitializeResult
	rsp, err := client.Call(ctx, "initialize", &protocol.InitializeParams{})
	require.NoError(t, err)
	require.NoError(t, rsp.UnmarshalResult(&initResult))
	assert.Equal(t, "fake", initResult.ServerInfo.Name)
	assert.Equal(t, []string{"{"}, initResult.Capabilities.CompletionProvider.TriggerCharacters)

	require.NoError(t, client.Notify(ctx, "initialized", &protocol.InitializedParams{}))
	require.NoError(t, client.Notify(ctx, "textDocument/didOpen", &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: "file:///a.js"},
	}))

	// A cancel for an id that is no longer in flight is absorbed quietly.
	require.NoError(t, client.Notify(ctx, "$/cancelRequest", &protocol.CancelParams{ID: 1}))

	var list protocol.CompletionList
	rsp, err = client.Call(ctx, "textDocument/completion", &protocol.CompletionParams{})
	require.NoError(t, err)
	require.NoError(t, rsp.UnmarshalResult(&list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "pascalCase", list.Items[0].Label)

	_, err = client.Call(ctx, "shutdown", nil)
	require.NoError(t, err)

	// Notifications are asynchronous; the shutdown response orders after
	// them on a single-handler server.
	assert.True(t, srv.initialized)
	assert.Equal(t, []protocol.DocumentURI{"file:///a.js"}, srv.opened)
	assert.Equal(t, 1, srv.shutdowns)
}

func TestDispatchUnknownMethod(t *testing.T) {
	client := startInstance(t, &fakeServer{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Call(ctx, "textDocument/hover", nil)
	require.Error(t, err)

	var rpcErr *jrpc2.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, jrpc2.MethodNotFound, rpcErr.Code)
}

func TestRequestCancelledErrorCode(t *testing.T) {
	assert.Equal(t, jrpc2.Code(-32800), protocol.RequestCancelledError.Code)
}
