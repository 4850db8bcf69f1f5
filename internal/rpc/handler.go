package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"

	"github.com/hexmap-dev/hexmap/export"
	"github.com/hexmap-dev/hexmap/graph"
	"github.com/hexmap-dev/hexmap/validate"
)

// Method names understood by the server.
const (
	MethodSummary  = "graph/summary"
	MethodNodes    = "graph/nodes"
	MethodEdges    = "graph/edges"
	MethodFindings = "graph/findings"
	MethodExport   = "graph/export"
	MethodRebuild  = "graph/rebuild"
	MethodShutdown = "shutdown"
)

// nodesParams filters the graph/nodes result. Both fields optional.
type nodesParams struct {
	Layer string `json:"layer,omitempty"`
	Role  string `json:"role,omitempty"`
}

// edgesParams scopes graph/edges to one endpoint by type name.
type edgesParams struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// exportParams selects the graph/export format.
type exportParams struct {
	Format string `json:"format"`
}

// summaryResult mirrors the HTTP summary payload.
type summaryResult struct {
	NodeCount     int            `json:"node_count"`
	EdgeCount     int            `json:"edge_count"`
	NodesPerLayer map[string]int `json:"nodes_per_layer"`
	BuildFindings int            `json:"build_findings"`
}

// exportResult carries rendered export text.
type exportResult struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}

func (s *Server) handler(cancel context.CancelFunc) jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.logger.Debug("rpc request", zap.String("method", req.Method()))

		switch req.Method() {
		case MethodSummary:
			return reply(ctx, s.summary(), nil)
		case MethodNodes:
			return s.nodes(ctx, reply, req)
		case MethodEdges:
			return s.edges(ctx, reply, req)
		case MethodFindings:
			return s.findings(ctx, reply)
		case MethodExport:
			return s.export(ctx, reply, req)
		case MethodRebuild:
			return s.rebuild(ctx, reply)
		case MethodShutdown:
			err := reply(ctx, nil, nil)
			cancel()
			return err
		default:
			return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
		}
	}
}

func (s *Server) summary() summaryResult {
	snap := s.holder.Current()

	perLayer := make(map[string]int)
	for _, layer := range graph.Layers() {
		perLayer[layer.String()] = len(snap.Graph.NodesByLayer(layer))
	}
	return summaryResult{
		NodeCount:     snap.Graph.NodeCount(),
		EdgeCount:     snap.Graph.EdgeCount(),
		NodesPerLayer: perLayer,
		BuildFindings: len(snap.Findings),
	}
}

func (s *Server) nodes(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params nodesParams
	if len(req.Params()) > 0 {
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, invalidParams(err))
		}
	}

	g := s.holder.Current().Graph
	var nodes []graph.Node
	switch {
	case params.Layer != "":
		layer, ok := graph.ParseLayer(params.Layer)
		if !ok {
			return reply(ctx, nil, invalidParams(fmt.Errorf("unknown layer %q", params.Layer)))
		}
		nodes = g.NodesByLayer(layer)
	case params.Role != "":
		role, ok := graph.ParseRole(params.Role)
		if !ok {
			return reply(ctx, nil, invalidParams(fmt.Errorf("unknown role %q", params.Role)))
		}
		nodes = g.NodesByRole(role)
	default:
		nodes = g.Nodes()
	}
	if nodes == nil {
		nodes = []graph.Node{}
	}
	return reply(ctx, nodes, nil)
}

func (s *Server) edges(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params edgesParams
	if len(req.Params()) > 0 {
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, invalidParams(err))
		}
	}

	g := s.holder.Current().Graph
	var edges []graph.Edge
	switch {
	case params.From != "":
		edges = g.EdgesFrom(graph.NodeIDFromName(params.From))
	case params.To != "":
		edges = g.EdgesTo(graph.NodeIDFromName(params.To))
	default:
		edges = g.Edges()
	}
	if edges == nil {
		edges = []graph.Edge{}
	}
	return reply(ctx, edges, nil)
}

func (s *Server) findings(ctx context.Context, reply jsonrpc2.Replier) error {
	snap := s.holder.Current()
	findings := validate.Run(snap.Graph, validate.AllRules(s.opts), snap.Findings, s.opts)
	if findings == nil {
		findings = []graph.Finding{}
	}
	return reply(ctx, findings, nil)
}

func (s *Server) export(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params exportParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, invalidParams(err))
	}

	exporter, err := export.ForFormat(params.Format)
	if err != nil {
		return reply(ctx, nil, invalidParams(err))
	}
	out, err := exporter.Export(s.holder.Current().Graph)
	if err != nil {
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InternalError, Message: err.Error()})
	}
	return reply(ctx, exportResult{Format: exporter.Format(), Content: string(out)}, nil)
}

func (s *Server) rebuild(ctx context.Context, reply jsonrpc2.Replier) error {
	snap, err := s.holder.Rebuild()
	if err != nil {
		s.logger.Warn("rebuild failed", zap.Error(err))
		return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InternalError, Message: err.Error()})
	}
	s.logger.Info("graph rebuilt over rpc")
	return reply(ctx, map[string]int{
		"node_count":     snap.Graph.NodeCount(),
		"edge_count":     snap.Graph.EdgeCount(),
		"build_findings": len(snap.Findings),
	}, nil)
}

func invalidParams(err error) error {
	return &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()}
}
