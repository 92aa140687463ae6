package protocol

import (
	"context"
	"io"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/handler"
)

// RequestCancelledError is returned for requests whose context was already
// cancelled when the handler ran.
var RequestCancelledError = &jrpc2.Error{Code: -32800, Message: "JSON RPC cancelled"}

// Server is the set of client→server methods clayls answers.
type Server interface {
	Initialize(context.Context, *InitializeParams) (*InitializeResult, error)
	Initialized(context.Context, *InitializedParams) error
	Shutdown(context.Context) error
	Exit(context.Context) error
	SetTrace(context.Context, *SetTraceParams) error
	DidOpen(context.Context, *DidOpenTextDocumentParams) error
	DidChange(context.Context, *DidChangeTextDocumentParams) error
	DidSave(context.Context, *DidSaveTextDocumentParams) error
	DidClose(context.Context, *DidCloseTextDocumentParams) error
	Completion(context.Context, *CompletionParams) (*CompletionList, error)
}

// Client is the set of server→client methods clayls sends. ShowMessage and
// LogMessage are notifications; SetDocumentLanguage is a callback request so
// the editor's refusal comes back as an error.
type Client interface {
	ShowMessage(ctx context.Context, params *ShowMessageParams) error
	LogMessage(ctx context.Context, params *LogMessageParams) error
	SetDocumentLanguage(ctx context.Context, params *SetDocumentLanguageParams) error
}

func buildServerDispatchMap(server Server) handler.Map {
	return handler.Map{
		"initialize":              createHandler(server.Initialize),
		"initialized":             createEmptyResultHandler(server.Initialized),
		"shutdown":                createEmptyHandler(server.Shutdown),
		"exit":                    createEmptyHandler(server.Exit),
		"$/setTrace":              createEmptyResultHandler(server.SetTrace),
		"$/cancelRequest":         createCancelHandler(),
		"textDocument/didOpen":    createEmptyResultHandler(server.DidOpen),
		"textDocument/didChange":  createEmptyResultHandler(server.DidChange),
		"textDocument/didSave":    createEmptyResultHandler(server.DidSave),
		"textDocument/didClose":   createEmptyResultHandler(server.DidClose),
		"textDocument/completion": createHandler(server.Completion),
	}
}

func newParseError(err error) *jrpc2.Error {
	return &jrpc2.Error{
		Code:    -32700, // Parse error
		Message: err.Error(),
	}
}

func createHandler[T any, O any](method func(ctx context.Context, params *T) (O, error)) handler.Func {
	return handler.New(func(ctx context.Context, r *jrpc2.Request) (interface{}, error) {
		ctx = ApplyRequestToZerolog(ctx, r)
		if ctx.Err() != nil {
			return nil, RequestCancelledError
		}
		var params T
		if err := r.UnmarshalParams(&params); err != nil {
			return nil, newParseError(err)
		}
		return method(ctx, &params)
	})
}

func createEmptyResultHandler[T any](method func(ctx context.Context, params *T) error) handler.Func {
	return handler.New(func(ctx context.Context, r *jrpc2.Request) (interface{}, error) {
		ctx = ApplyRequestToZerolog(ctx, r)
		if ctx.Err() != nil {
			return nil, RequestCancelledError
		}
		var params T
		if err := r.UnmarshalParams(&params); err != nil {
			return nil, newParseError(err)
		}
		return nil, method(ctx, &params)
	})
}

func createEmptyHandler(method func(ctx context.Context) error) handler.Func {
	return handler.New(func(ctx context.Context, r *jrpc2.Request) (interface{}, error) {
		ctx = ApplyRequestToZerolog(ctx, r)
		return nil, method(ctx)
	})
}

// createCancelHandler absorbs $/cancelRequest. The server runs one handler
// at a time, so there is never in-flight work to cancel; the notification is
// acknowledged and dropped.
func createCancelHandler() handler.Func {
	return handler.New(func(ctx context.Context, r *jrpc2.Request) (interface{}, error) {
		var params CancelParams
		if err := r.UnmarshalParams(&params); err != nil {
			return nil, newParseError(err)
		}
		return nil, nil
	})
}

// CallbackClient implements Client on top of a running jrpc2 server with
// AllowPush enabled.
type CallbackClient struct {
	server *jrpc2.Server
}

var _ Client = (*CallbackClient)(nil)

func NewCallbackClient(server *jrpc2.Server) *CallbackClient {
	return &CallbackClient{server: server}
}

func (c *CallbackClient) ShowMessage(ctx context.Context, params *ShowMessageParams) error {
	return c.server.Notify(ctx, "window/showMessage", params)
}

func (c *CallbackClient) LogMessage(ctx context.Context, params *LogMessageParams) error {
	return c.server.Notify(ctx, "window/logMessage", params)
}

func (c *CallbackClient) SetDocumentLanguage(ctx context.Context, params *SetDocumentLanguageParams) error {
	_, err := c.server.Callback(ctx, "clay/setDocumentLanguage", params)
	return err
}

// ServerInstance ties a Server implementation to a jrpc2 server and its
// transport.
type ServerInstance struct {
	ctx      context.Context
	server   *jrpc2.Server
	callback *CallbackClient
}

// NewServerInstance builds the jrpc2 server for srv. opts may be nil;
// AllowPush is always forced on so the callback client works, and handler
// contexts inherit ctx (carrying the process logger).
func NewServerInstance(ctx context.Context, srv Server, opts *jrpc2.ServerOptions) *ServerInstance {
	if opts == nil {
		opts = &jrpc2.ServerOptions{}
	}
	opts.AllowPush = true
	if opts.NewContext == nil {
		opts.NewContext = func() context.Context { return ctx }
	}

	instance := jrpc2.NewServer(buildServerDispatchMap(srv), opts)

	return &ServerInstance{
		ctx:      ctx,
		server:   instance,
		callback: NewCallbackClient(instance),
	}
}

// Instance exposes the underlying jrpc2 server.
func (me *ServerInstance) Instance() *jrpc2.Server {
	return me.server
}

// ForwardingClient returns the Client used for server→client pushes.
func (me *ServerInstance) ForwardingClient() Client {
	return me.callback
}

// StartAndWait serves LSP-framed JSON-RPC on the given streams until the
// connection closes.
func (me *ServerInstance) StartAndWait(reader io.Reader, writer io.Writer) error {
	wc, ok := writer.(io.WriteCloser)
	if !ok {
		wc = nopWriteCloser{writer}
	}
	ch := channel.LSP(reader, wc)
	me.server.Start(ch)
	return me.server.Wait()
}

// StartAndDetach starts serving on ch and returns without waiting.
func (me *ServerInstance) StartAndDetach(ch channel.Channel) *jrpc2.Server {
	return me.server.Start(ch)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
