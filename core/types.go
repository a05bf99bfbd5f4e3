// Package core: central types for the selfsim graph container.
//
// This file declares Pair, Edge, Graph and the package sentinel errors.
// Construction lives in construct.go; read accessors live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyGraphName indicates that a constructor received an empty name.
	ErrEmptyGraphName = errors.New("core: graph name is empty")

	// ErrBadVertexID indicates a vertex identifier that is not positive.
	ErrBadVertexID = errors.New("core: vertex ID must be positive")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrUnknownEndpoint indicates an edge endpoint outside the vertex set.
	ErrUnknownEndpoint = errors.New("core: edge endpoint not in vertex set")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNilSource indicates stream construction without a pair source.
	ErrNilSource = errors.New("core: nil pair source")
)

// Pair is a canonical unordered vertex pair: U is always the smaller
// endpoint. A valid Pair never joins a vertex to itself, so a Pair is a
// unique map key per undirected edge.
//
// Construct pairs only through NewPair; the zero Pair is invalid.
type Pair struct {
	// U is the smaller endpoint identifier.
	U int64

	// V is the larger endpoint identifier.
	V int64
}

// NewPair canonicalizes (u, v) into a Pair with the smaller endpoint first.
// Returns ErrBadVertexID if either endpoint is not positive, and
// ErrSelfLoop if the endpoints coincide.
// Complexity: O(1).
func NewPair(u, v int64) (Pair, error) {
	// Validate domain first: identifiers are positive by contract.
	if u < 1 || v < 1 {
		return Pair{}, ErrBadVertexID
	}
	// Self-pairs are rejected for every construction path.
	if u == v {
		return Pair{}, ErrSelfLoop
	}
	// Canonical order: smaller endpoint first.
	if u > v {
		u, v = v, u
	}

	return Pair{U: u, V: v}, nil
}

// Edge is a read-only view of one undirected weighted edge, reported with
// canonical endpoint order (U < V) and a positive weight.
type Edge struct {
	// U is the smaller endpoint identifier.
	U int64

	// V is the larger endpoint identifier.
	V int64

	// Weight is the positive edge weight.
	Weight int64
}

// Graph is the in-memory weighted undirected graph container.
//
// A Graph is fully built by one of the constructors in construct.go and is
// immutable afterwards; mu guards the maps only because read accessors may
// be called concurrently while another goroutine still holds the value.
type Graph struct {
	mu sync.RWMutex

	// name identifies the graph; generators derive it from their parameters.
	name string

	// vertices is the vertex set.
	vertices map[int64]struct{}

	// weights maps each canonical pair to its positive weight.
	weights map[Pair]int64

	// adjacency mirrors weights in both directions for neighbor queries:
	// adjacency[u][v] exists iff the canonical pair {u,v} is an edge.
	adjacency map[int64]map[int64]struct{}
}
