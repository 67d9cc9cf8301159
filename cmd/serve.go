package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/maxential-thinking/internal/adapters/mcp"
	"github.com/bnema/maxential-thinking/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(wire wireFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the thinking tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(wire, func(app *app) error {
				return runServe(cmd, app)
			})
		},
	}
}

// runServe owns stdout for the JSON-RPC stream; everything human-readable goes to stderr.
func runServe(cmd *cobra.Command, app *app) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcp.NewServer(app.dispatcher, version.Version)

	storagePath := ""
	if app.store != nil {
		storagePath = app.store.Path()
	}
	app.logger.Info("mcp server starting",
		zap.String("version", version.Version),
		zap.Bool("persistence", app.engine.PersistenceEnabled()),
		zap.String("backend", string(app.cfg.Backend)),
		zap.String("storage_path", storagePath),
	)
	if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "MAXential Thinking MCP Server v%s running on stdio\n", version.Version); err != nil {
		return err
	}

	err := mcp.Serve(ctx, server, cmd.InOrStdin(), cmd.OutOrStdout(), app.logger)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		app.logger.Info("mcp server stopped")
		return nil
	}
	return fmt.Errorf("serve mcp: %w", err)
}
