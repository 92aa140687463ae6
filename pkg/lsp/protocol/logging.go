package protocol

import (
	"context"

	"github.com/creachadair/jrpc2"
	"github.com/rs/zerolog"
)

// ApplyRequestToZerolog stamps the request method and id onto the context
// logger so every log line inside a handler carries them.
func ApplyRequestToZerolog(ctx context.Context, req *jrpc2.Request) context.Context {
	return zerolog.Ctx(ctx).With().
		Str("rpc_method", req.Method()).
		Str("rpc_id", req.ID()).
		Logger().WithContext(ctx)
}

// ZerologRPCLogger logs every request and response through the context
// logger. Used as jrpc2.ServerOptions.RPCLog.
type ZerologRPCLogger struct{}

var _ jrpc2.RPCLogger = ZerologRPCLogger{}

func (ZerologRPCLogger) LogRequest(ctx context.Context, req *jrpc2.Request) {
	zerolog.Ctx(ctx).Debug().
		Str("rpc_method", req.Method()).
		Str("rpc_id", req.ID()).
		Str("rpc_params", req.ParamString()).
		Msg("client request")
}

func (ZerologRPCLogger) LogResponse(ctx context.Context, res *jrpc2.Response) {
	zerolog.Ctx(ctx).Debug().
		Str("rpc_id", res.ID()).
		Str("rpc_result", res.ResultString()).
		Msg("server response")
}
