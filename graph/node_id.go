package graph

import (
	"encoding/binary"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// NodeID is a stable identifier for a graph node, derived deterministically
// from a component's fully-qualified type name. Two entries with the same
// type name always resolve to the same NodeID, across processes and builds.
type NodeID uint64

// NodeIDFromName derives the NodeID for a type name. The ID is the first
// eight bytes of the BLAKE2b-256 digest of the name, so it is stable across
// platforms and Go versions (unlike maphash or any seeded hash).
func NodeIDFromName(name string) NodeID {
	sum := blake2b.Sum256([]byte(name))
	return NodeID(binary.BigEndian.Uint64(sum[:8]))
}

// String renders the ID as an unsigned decimal, matching its JSON form.
func (id NodeID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
