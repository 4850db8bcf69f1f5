package rpc

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"

	"github.com/hexmap-dev/hexmap/graph"
	"github.com/hexmap-dev/hexmap/internal/server"
	"github.com/hexmap-dev/hexmap/validate"
)

// testConn wires a server and a client over an in-memory pipe and returns
// the client connection for issuing calls.
func testConn(t *testing.T, entries []graph.Entry) jsonrpc2.Conn {
	t.Helper()

	holder, err := server.NewHolder(func() ([]graph.Entry, error) { return entries, nil })
	require.NoError(t, err)
	srv := NewServer(holder, validate.Options{}, nil)
	return clientFor(t, srv)
}

// clientFor opens one in-memory connection against srv and returns the
// client side.
func clientFor(t *testing.T, srv *Server) jsonrpc2.Conn {
	t.Helper()

	serverSide, clientSide := net.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go srv.serveConn(ctx, serverSide)

	client := jsonrpc2.NewConn(jsonrpc2.NewStream(clientSide))
	client.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	t.Cleanup(func() { client.Close() })

	return client
}

var rpcEntries = []graph.Entry{
	{TypeName: "User", Layer: graph.LayerDomain, Role: graph.RoleEntity},
	{TypeName: "UserRepository", Layer: graph.LayerPort, Role: graph.RoleRepository,
		Dependencies: []string{"User"}},
	{TypeName: "PgUserRepository", Layer: graph.LayerAdapter, Role: graph.RoleAdapter,
		Dependencies: []string{"UserRepository"}},
}

func callCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSummaryCall(t *testing.T) {
	client := testConn(t, rpcEntries)

	var result summaryResult
	_, err := client.Call(callCtx(t), MethodSummary, nil, &result)
	require.NoError(t, err)

	assert.Equal(t, 3, result.NodeCount)
	assert.Equal(t, 2, result.EdgeCount)
	assert.Equal(t, 1, result.NodesPerLayer["Port"])
}

func TestNodesCall_LayerFilter(t *testing.T) {
	client := testConn(t, rpcEntries)

	var nodes []graph.Node
	_, err := client.Call(callCtx(t), MethodNodes, nodesParams{Layer: "Adapter"}, &nodes)
	require.NoError(t, err)

	require.Len(t, nodes, 1)
	assert.Equal(t, "PgUserRepository", nodes[0].TypeName)
}

func TestNodesCall_UnknownLayer(t *testing.T) {
	client := testConn(t, rpcEntries)

	var nodes []graph.Node
	_, err := client.Call(callCtx(t), MethodNodes, nodesParams{Layer: "Mezzanine"}, &nodes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mezzanine")
}

func TestEdgesCall(t *testing.T) {
	client := testConn(t, rpcEntries)

	var edges []graph.Edge
	_, err := client.Call(callCtx(t), MethodEdges, edgesParams{From: "UserRepository"}, &edges)
	require.NoError(t, err)

	require.Len(t, edges, 1)
	assert.Equal(t, graph.NodeIDFromName("User"), edges[0].To)
}

func TestFindingsCall(t *testing.T) {
	client := testConn(t, []graph.Entry{
		{TypeName: "OrderMapper", Layer: graph.LayerAdapter, Role: graph.RoleAdapter},
		{TypeName: "Order", Layer: graph.LayerDomain, Role: graph.RoleAggregate,
			Dependencies: []string{"OrderMapper"}},
	})

	var findings []graph.Finding
	_, err := client.Call(callCtx(t), MethodFindings, nil, &findings)
	require.NoError(t, err)

	var violations int
	for _, f := range findings {
		if f.Severity == graph.SeverityViolation {
			violations++
		}
	}
	assert.Equal(t, 1, violations)
}

func TestExportCall(t *testing.T) {
	client := testConn(t, rpcEntries)

	var result exportResult
	_, err := client.Call(callCtx(t), MethodExport, exportParams{Format: "dot"}, &result)
	require.NoError(t, err)

	assert.Equal(t, "dot", result.Format)
	assert.Contains(t, result.Content, "digraph")

	_, err = client.Call(callCtx(t), MethodExport, exportParams{Format: "pdf"}, &result)
	require.Error(t, err)
}

func TestRebuildCall(t *testing.T) {
	entries := append([]graph.Entry{}, rpcEntries...)
	holder, err := server.NewHolder(func() ([]graph.Entry, error) { return entries, nil })
	require.NoError(t, err)
	client := clientFor(t, NewServer(holder, validate.Options{}, nil))

	entries = append(entries, graph.Entry{
		TypeName: "AuditLog", Layer: graph.LayerInfrastructure, Role: graph.RoleService,
	})

	var result map[string]int
	_, err = client.Call(callCtx(t), MethodRebuild, nil, &result)
	require.NoError(t, err)
	assert.Equal(t, 4, result["node_count"])
}

func TestRebuildCall_SourceFailure(t *testing.T) {
	fail := false
	holder, err := server.NewHolder(func() ([]graph.Entry, error) {
		if fail {
			return nil, errors.New("manifest unreadable")
		}
		return rpcEntries, nil
	})
	require.NoError(t, err)
	client := clientFor(t, NewServer(holder, validate.Options{}, nil))

	fail = true
	var result map[string]int
	_, err = client.Call(callCtx(t), MethodRebuild, nil, &result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest unreadable")

	// The valid graph survives the failed rebuild.
	var summary summaryResult
	_, err = client.Call(callCtx(t), MethodSummary, nil, &summary)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.NodeCount)
}

func TestShutdownAffectsOnlySender(t *testing.T) {
	holder, err := server.NewHolder(func() ([]graph.Entry, error) { return rpcEntries, nil })
	require.NoError(t, err)
	srv := NewServer(holder, validate.Options{}, nil)

	first := clientFor(t, srv)
	second := clientFor(t, srv)

	// Both connections serve queries concurrently.
	var wg sync.WaitGroup
	for _, client := range []jsonrpc2.Conn{first, second} {
		wg.Add(1)
		go func(c jsonrpc2.Conn) {
			defer wg.Done()
			var result summaryResult
			_, err := c.Call(callCtx(t), MethodSummary, nil, &result)
			assert.NoError(t, err)
		}(client)
	}
	wg.Wait()

	_, err = first.Call(callCtx(t), MethodShutdown, nil, nil)
	require.NoError(t, err)

	// The second connection keeps serving after the first shuts down.
	var result summaryResult
	_, err = second.Call(callCtx(t), MethodSummary, nil, &result)
	require.NoError(t, err)
	assert.Equal(t, 3, result.NodeCount)
}

func TestUnknownMethod(t *testing.T) {
	client := testConn(t, rpcEntries)

	var result any
	_, err := client.Call(callCtx(t), "graph/unknown", nil, &result)
	require.Error(t, err)
}
