// Package core defines the weighted undirected graph container that every
// selfsim generator populates, together with the canonical edge Pair type
// and the two construction paths of the container contract:
//
//   - NewGraph(name, vertices, weights) — from an explicit vertex set and a
//     canonical-pair → weight mapping (the generator path);
//   - NewGraphFromSource(name, src, defaultWeight) — from a streamed
//     (u, v) pair source with an explicit constant default weight (the
//     dataset path).
//
// All graphs are undirected, loop-free and positively weighted. Vertices
// are identified by positive int64 values; generators produce the dense
// range 1..V, while stream construction accepts arbitrary positive IDs.
//
// All read APIs take the graph's RWMutex internally, so a constructed
// Graph may be shared across goroutines. The container itself is
// append-only at construction time and immutable afterwards: no removal
// operations exist.
//
// Errors:
//
//	ErrEmptyGraphName  - graph name is the empty string.
//	ErrBadVertexID     - vertex identifier is not positive.
//	ErrSelfLoop        - edge endpoints coincide.
//	ErrBadWeight       - edge weight is not positive.
//	ErrUnknownEndpoint - edge references a vertex outside the vertex set.
//	ErrVertexNotFound  - queried vertex does not exist.
//	ErrEdgeNotFound    - queried edge does not exist.
//	ErrNilSource       - stream construction received a nil source.
package core
