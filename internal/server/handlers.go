package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hexmap-dev/hexmap/export"
	"github.com/hexmap-dev/hexmap/graph"
	"github.com/hexmap-dev/hexmap/validate"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// summaryResponse describes the current snapshot.
type summaryResponse struct {
	NodeCount     int            `json:"node_count"`
	EdgeCount     int            `json:"edge_count"`
	NodesPerLayer map[string]int `json:"nodes_per_layer"`
	BuildFindings int            `json:"build_findings"`
	BuiltAt       string         `json:"built_at"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response: " + err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snap := s.holder.Current()

	perLayer := make(map[string]int)
	for _, layer := range graph.Layers() {
		perLayer[layer.String()] = len(snap.Graph.NodesByLayer(layer))
	}

	s.writeJSON(w, http.StatusOK, summaryResponse{
		NodeCount:     snap.Graph.NodeCount(),
		EdgeCount:     snap.Graph.EdgeCount(),
		NodesPerLayer: perLayer,
		BuildFindings: len(snap.Findings),
		BuiltAt:       snap.BuiltAt.Format("2006-01-02T15:04:05Z"),
	})
}

// handleNodes lists nodes, optionally filtered by ?layer= and ?role=.
func (s *Server) handleNodes(w http.ResponseWriter, r *http.Request) {
	snap := s.holder.Current()
	g := snap.Graph

	var nodes []graph.Node
	switch {
	case r.URL.Query().Get("layer") != "":
		layer, ok := graph.ParseLayer(r.URL.Query().Get("layer"))
		if !ok {
			s.writeError(w, http.StatusBadRequest, "unknown layer: "+r.URL.Query().Get("layer"))
			return
		}
		nodes = g.NodesByLayer(layer)
	case r.URL.Query().Get("role") != "":
		role, ok := graph.ParseRole(r.URL.Query().Get("role"))
		if !ok {
			s.writeError(w, http.StatusBadRequest, "unknown role: "+r.URL.Query().Get("role"))
			return
		}
		nodes = g.NodesByRole(role)
	default:
		nodes = g.Nodes()
	}

	if nodes == nil {
		nodes = []graph.Node{}
	}
	s.writeJSON(w, http.StatusOK, nodes)
}

// handleEdges lists edges, optionally scoped with ?from= or ?to= (type
// names).
func (s *Server) handleEdges(w http.ResponseWriter, r *http.Request) {
	snap := s.holder.Current()
	g := snap.Graph

	var edges []graph.Edge
	switch {
	case r.URL.Query().Get("from") != "":
		edges = g.EdgesFrom(graph.NodeIDFromName(r.URL.Query().Get("from")))
	case r.URL.Query().Get("to") != "":
		edges = g.EdgesTo(graph.NodeIDFromName(r.URL.Query().Get("to")))
	default:
		edges = g.Edges()
	}

	if edges == nil {
		edges = []graph.Edge{}
	}
	s.writeJSON(w, http.StatusOK, edges)
}

// handleFindings returns build findings plus the full validation rule run.
func (s *Server) handleFindings(w http.ResponseWriter, r *http.Request) {
	snap := s.holder.Current()

	findings := validate.Run(
		snap.Graph, validate.AllRules(s.opts), snap.Findings, s.opts)
	if findings == nil {
		findings = []graph.Finding{}
	}
	s.writeJSON(w, http.StatusOK, findings)
}

// handleExport renders the current graph in the requested text format.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	exporter, err := export.ForFormat(format)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	out, err := exporter.Export(s.holder.Current().Graph)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	contentType := "text/plain; charset=utf-8"
	if exporter.Format() == "json" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

// handleRebuild re-enumerates the entry source and swaps in a fresh
// snapshot. Rebuilds happen only through this explicit call. A failing
// source leaves the current snapshot in place and reports the failure.
func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	snap, err := s.holder.Rebuild()
	if err != nil {
		s.logger.Error("rebuild failed: " + err.Error())
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.logger.Info("graph rebuilt")

	s.writeJSON(w, http.StatusOK, map[string]int{
		"node_count":     snap.Graph.NodeCount(),
		"edge_count":     snap.Graph.EdgeCount(),
		"build_findings": len(snap.Findings),
	})
}
