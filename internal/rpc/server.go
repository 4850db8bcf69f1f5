// Package rpc serves graph queries as JSON-RPC 2.0 over stdio or a TCP
// listener, for editor and agent tooling that speaks a line-oriented
// protocol rather than HTTP.
package rpc

import (
	"context"
	"io"
	"net"
	"os"

	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"

	"github.com/hexmap-dev/hexmap/internal/server"
	"github.com/hexmap-dev/hexmap/validate"
)

// Server answers graph queries over a JSON-RPC connection.
type Server struct {
	holder *server.Holder
	logger *zap.Logger
	opts   validate.Options
}

// NewServer creates an RPC server around a snapshot holder.
func NewServer(holder *server.Holder, opts validate.Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{holder: holder, logger: logger, opts: opts}
}

// RunStdio serves a single connection over stdin/stdout and blocks until
// the client sends shutdown or the context is cancelled.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.serveConn(ctx, stdrwc{})
}

// RunTCP accepts connections on addr, serving each until it closes.
func (s *Server) RunTCP(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()
	s.logger.Info("rpc listening", zap.String("addr", addr))

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go func() {
			if err := s.serveConn(ctx, conn); err != nil && ctx.Err() == nil {
				s.logger.Warn("rpc connection ended", zap.Error(err))
			}
		}()
	}
}

// serveConn runs the JSON-RPC loop over one transport. The cancel is
// per-connection: shutdown from one client ends that client's loop only.
func (s *Server) serveConn(ctx context.Context, rwc io.ReadWriteCloser) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream := jsonrpc2.NewStream(rwc)
	conn := jsonrpc2.NewConn(stream)
	conn.Go(ctx, s.handler(cancel))

	select {
	case <-ctx.Done():
	case <-conn.Done():
	}
	return conn.Close()
}

// stdrwc adapts stdin/stdout to io.ReadWriteCloser.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
