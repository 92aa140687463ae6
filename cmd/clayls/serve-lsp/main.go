package serve_lsp

import (
	"context"
	"io"
	"os"

	"github.com/creachadair/jrpc2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/claytmpl/clayls/pkg/config"
	"github.com/claytmpl/clayls/pkg/debug"
	"github.com/claytmpl/clayls/pkg/lsp"
	"github.com/claytmpl/clayls/pkg/lsp/protocol"
)

type Handler struct {
	configPath string
	logLevel   string
}

func NewServeLSPCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "serve-lsp",
		Short: "start the language server on stdin/stdout",
	}

	cmd.Flags().StringVar(&me.configPath, "config", "clayls.toml", "path to the server config file")
	cmd.Flags().StringVar(&me.logLevel, "log-level", "", "override the configured log level")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context) (err error) {
	cfg, err := config.Load(me.configPath)
	if err != nil {
		return err
	}
	if me.logLevel != "" {
		cfg.LogLevel = me.logLevel
	}

	ctx, cleanup, err := applyLogger(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, cleanup())
	}()

	server := lsp.NewServer(ctx)

	opts := &jrpc2.ServerOptions{
		RPCLog:      protocol.ZerologRPCLogger{},
		Concurrency: 1,
	}

	instance := protocol.NewServerInstance(ctx, server, opts)
	server.SetCallbackClient(instance.ForwardingClient())

	zerolog.Ctx(ctx).Info().Msg("starting language server")

	// The editor owns stdin/stdout for the lifetime of the session.
	if err := instance.StartAndWait(os.Stdin, os.Stdout); err != nil {
		return errors.Errorf("error running language server: %w", err)
	}

	return nil
}

// applyLogger builds the process logger per cfg and stores it on the
// context. The returned cleanup closes the log file, if any.
func applyLogger(ctx context.Context, cfg *config.Config) (context.Context, func() error, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return ctx, nil, errors.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var out io.Writer = os.Stderr
	cleanup := func() error { return nil }

	if cfg.LogFile != "" {
		file, ferr := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if ferr != nil {
			return ctx, nil, errors.Errorf("opening log file %s: %w", cfg.LogFile, ferr)
		}
		out = file
		cleanup = file.Close
	}

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}

	logger := zerolog.New(out).With().
		Str("component", "lsp-server").
		Logger().
		Level(level).
		Hook(debug.CustomTimeHook{}).
		Hook(debug.CustomCallerHook{WithColor: cfg.Pretty})

	return logger.WithContext(ctx), cleanup, nil
}
