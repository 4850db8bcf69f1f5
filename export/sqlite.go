package export

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hexmap-dev/hexmap/graph"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS nodes (
	id          TEXT PRIMARY KEY,
	type_name   TEXT NOT NULL,
	layer       TEXT NOT NULL,
	role        TEXT NOT NULL,
	module_path TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS edges (
	from_id  TEXT NOT NULL REFERENCES nodes(id),
	to_id    TEXT NOT NULL REFERENCES nodes(id),
	relation TEXT NOT NULL
);
DELETE FROM edges;
DELETE FROM nodes;
`

// WriteSQLite writes a snapshot of the graph to a SQLite database at path,
// replacing any previous snapshot in the file. The snapshot is an export
// artifact for downstream tooling; the engine itself never reads it back
// and keeps no state between rebuilds.
func WriteSQLite(g *graph.Graph, path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return &Error{Format: "sqlite", Err: fmt.Errorf("open %s: %w", path, err)}
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return &Error{Format: "sqlite", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(sqliteSchema); err != nil {
		return &Error{Format: "sqlite", Err: fmt.Errorf("create schema: %w", err)}
	}

	insertNode, err := tx.Prepare(
		"INSERT INTO nodes (id, type_name, layer, role, module_path) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return &Error{Format: "sqlite", Err: err}
	}
	defer insertNode.Close()

	for _, n := range sortedNodes(g) {
		if _, err := insertNode.Exec(
			n.ID.String(), n.TypeName, n.Layer.String(), n.Role.String(), n.ModulePath,
		); err != nil {
			return &Error{Format: "sqlite", Err: fmt.Errorf("insert node %s: %w", n.TypeName, err)}
		}
	}

	insertEdge, err := tx.Prepare(
		"INSERT INTO edges (from_id, to_id, relation) VALUES (?, ?, ?)")
	if err != nil {
		return &Error{Format: "sqlite", Err: err}
	}
	defer insertEdge.Close()

	for _, e := range g.Edges() {
		if _, err := insertEdge.Exec(
			e.From.String(), e.To.String(), string(e.Relation),
		); err != nil {
			return &Error{Format: "sqlite", Err: fmt.Errorf("insert edge: %w", err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &Error{Format: "sqlite", Err: err}
	}
	return nil
}
