package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hexmap-dev/hexmap/graph"
	"github.com/hexmap-dev/hexmap/validate"
)

func testServer(t *testing.T, entries []graph.Entry) (*Server, *Holder) {
	t.Helper()
	holder, err := NewHolder(func() ([]graph.Entry, error) { return entries, nil })
	require.NoError(t, err)
	srv := New(Config{Validation: validate.Options{}}, holder, zap.NewNop())
	return srv, holder
}

func doRequest(t *testing.T, srv *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

var shopEntries = []graph.Entry{
	{TypeName: "User", Layer: graph.LayerDomain, Role: graph.RoleEntity},
	{TypeName: "UserRepository", Layer: graph.LayerPort, Role: graph.RoleRepository,
		Dependencies: []string{"User"}},
	{TypeName: "PgUserRepository", Layer: graph.LayerAdapter, Role: graph.RoleAdapter,
		Dependencies: []string{"UserRepository"}},
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t, shopEntries)
	rec := doRequest(t, srv, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSummary(t *testing.T) {
	srv, _ := testServer(t, shopEntries)
	rec := doRequest(t, srv, http.MethodGet, "/graph")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.NodeCount)
	assert.Equal(t, 2, resp.EdgeCount)
	assert.Equal(t, 1, resp.NodesPerLayer["Domain"])
	assert.Equal(t, 0, resp.NodesPerLayer["Infrastructure"])
}

func TestNodes_LayerFilter(t *testing.T) {
	srv, _ := testServer(t, shopEntries)

	rec := doRequest(t, srv, http.MethodGet, "/graph/nodes?layer=Port")
	require.Equal(t, http.StatusOK, rec.Code)

	var nodes []graph.Node
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, "UserRepository", nodes[0].TypeName)

	rec = doRequest(t, srv, http.MethodGet, "/graph/nodes?layer=Mezzanine")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNodes_RoleFilterAndEmptyResult(t *testing.T) {
	srv, _ := testServer(t, shopEntries)

	rec := doRequest(t, srv, http.MethodGet, "/graph/nodes?role=Directive")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestEdges_FromFilter(t *testing.T) {
	srv, _ := testServer(t, shopEntries)

	rec := doRequest(t, srv, http.MethodGet, "/graph/edges?from=PgUserRepository")
	require.Equal(t, http.StatusOK, rec.Code)

	var edges []graph.Edge
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &edges))
	require.Len(t, edges, 1)
	assert.Equal(t, graph.NodeIDFromName("UserRepository"), edges[0].To)
}

func TestFindings(t *testing.T) {
	srv, _ := testServer(t, []graph.Entry{
		{TypeName: "OrderMapper", Layer: graph.LayerAdapter, Role: graph.RoleAdapter},
		{TypeName: "Order", Layer: graph.LayerDomain, Role: graph.RoleAggregate,
			Dependencies: []string{"OrderMapper"}},
	})

	rec := doRequest(t, srv, http.MethodGet, "/graph/findings")
	require.Equal(t, http.StatusOK, rec.Code)

	var findings []graph.Finding
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &findings))

	var violations int
	for _, f := range findings {
		if f.Severity == graph.SeverityViolation {
			violations++
		}
	}
	assert.Equal(t, 1, violations, "Order -> OrderMapper must be the only violation")
}

func TestExport(t *testing.T) {
	srv, _ := testServer(t, shopEntries)

	rec := doRequest(t, srv, http.MethodGet, "/export/mermaid")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "graph TD")

	rec = doRequest(t, srv, http.MethodGet, "/export/pdf")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRebuild(t *testing.T) {
	entries := append([]graph.Entry{}, shopEntries...)
	holder, err := NewHolder(func() ([]graph.Entry, error) { return entries, nil })
	require.NoError(t, err)
	srv := New(Config{}, holder, zap.NewNop())

	before := holder.Current()

	entries = append(entries, graph.Entry{
		TypeName: "AuditLog", Layer: graph.LayerInfrastructure, Role: graph.RoleService,
	})

	rec := doRequest(t, srv, http.MethodPost, "/rebuild")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp["node_count"])

	// The previous snapshot is untouched; readers holding it are safe.
	assert.Equal(t, 3, before.Graph.NodeCount())
	assert.Equal(t, 4, holder.Current().Graph.NodeCount())
}

func TestRebuild_SourceFailureKeepsSnapshot(t *testing.T) {
	fail := false
	holder, err := NewHolder(func() ([]graph.Entry, error) {
		if fail {
			return nil, errors.New("manifest unreadable")
		}
		return shopEntries, nil
	})
	require.NoError(t, err)
	srv := New(Config{}, holder, zap.NewNop())

	fail = true
	rec := doRequest(t, srv, http.MethodPost, "/rebuild")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "manifest unreadable")

	// The valid graph survives the failed rebuild.
	assert.Equal(t, 3, holder.Current().Graph.NodeCount())

	rec = doRequest(t, srv, http.MethodGet, "/graph/nodes")
	require.Equal(t, http.StatusOK, rec.Code)
	var nodes []graph.Node
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes))
	assert.Len(t, nodes, 3)
}

func TestNewHolder_SourceFailure(t *testing.T) {
	_, err := NewHolder(func() ([]graph.Entry, error) {
		return nil, errors.New("manifest unreadable")
	})
	require.Error(t, err)
}
