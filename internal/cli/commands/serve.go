package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hexmap-dev/hexmap/graph"
	"github.com/hexmap-dev/hexmap/internal/cli/config"
	"github.com/hexmap-dev/hexmap/internal/manifest"
	"github.com/hexmap-dev/hexmap/internal/rpc"
	"github.com/hexmap-dev/hexmap/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve graph queries over HTTP or JSON-RPC",
		Long: `Start a query server over the architecture graph.

By default this serves HTTP on the configured address. With --stdio
it instead speaks JSON-RPC over stdin/stdout, for editors and agents;
--rpc-addr serves the same JSON-RPC protocol over TCP.

The graph is built once at startup. POST /rebuild (or the
graph/rebuild method) re-reads the manifest and atomically swaps in a
fresh snapshot; in-flight queries keep the snapshot they started
with.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "HTTP listen address (default from hexmap.yml)")
	cmd.Flags().Bool("stdio", false, "serve JSON-RPC over stdin/stdout instead of HTTP")
	cmd.Flags().String("rpc-addr", "", "serve JSON-RPC over TCP on this address instead of HTTP")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	manifestPath, _ := cmd.Flags().GetString("manifest")
	if manifestPath == "" {
		manifestPath = cfg.Manifest
	}

	// Re-read the manifest on every rebuild so edits are picked up
	// without restarting. A load failure keeps the current snapshot.
	source := func() ([]graph.Entry, error) {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return nil, err
		}
		return m.Entries(), nil
	}

	// The initial build fails fast on an unreadable manifest.
	holder, err := server.NewHolder(source)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	opts := validationOptions(cfg)

	if stdio, _ := cmd.Flags().GetBool("stdio"); stdio {
		// Logs would corrupt the protocol stream on stdout.
		return rpc.NewServer(holder, opts, zap.NewNop()).RunStdio(ctx)
	}
	if rpcAddr, _ := cmd.Flags().GetString("rpc-addr"); rpcAddr != "" {
		return rpc.NewServer(holder, opts, logger).RunTCP(ctx, rpcAddr)
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr()
	}

	srv := server.New(server.Config{Addr: addr, Validation: opts}, holder, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	}
}
