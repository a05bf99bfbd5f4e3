// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// scaffold.go — the graph-under-construction shared by every family.
//
// Contract:
//   • One scaffold is owned exclusively by one generator invocation and is
//     discarded after the final handoff to core; nothing is shared across
//     calls, including concurrent ones.
//   • Vertex IDs are dense 1..vertexCount, allocated monotonically, never
//     reused, never renumbered.
//   • Edges are stored under canonical unordered pairs with weight 1; a
//     duplicate insertion is a no-op (Koch triangles overlap by design).
//   • order records first-insertion order so that per-round frontier
//     iteration over "all edges so far" is deterministic without sorting.
//   • No removal operation exists; the scaffold only grows.
//   • Thread-unsafe by design: generators are single-threaded and the
//     scaffold never escapes its invocation.

package generate

import (
	"fmt"

	"github.com/katalvlaran/selfsim/core"
)

// scaffold accumulates vertices and weight-1 edges for one construction.
type scaffold struct {
	// vertexCount is the highest allocated vertex ID (IDs are 1..vertexCount).
	vertexCount int64

	// weights holds the canonical pair → weight map handed to core.
	weights map[core.Pair]int64

	// order lists each pair once, in first-insertion order.
	order []core.Pair
}

// newScaffold returns an empty scaffold with its edge capacity hinted by
// the family's closed-form edge count (exact for every family).
func newScaffold(eHint int64) *scaffold {
	return &scaffold{
		weights: make(map[core.Pair]int64, clampHint(eHint)),
		order:   make([]core.Pair, 0, clampHint(eHint)),
	}
}

// clampHint converts a closed-form count into a map/slice capacity hint,
// bounded so a huge (but pre-validated) projection cannot distort make.
func clampHint(h int64) int {
	const maxHint = 1 << 26
	if h < 0 {
		return 0
	}
	if h > maxHint {
		return maxHint
	}

	return int(h)
}

// allocVertex returns a fresh, never-before-used vertex identifier.
// Complexity: O(1).
func (s *scaffold) allocVertex() int64 {
	s.vertexCount++

	return s.vertexCount
}

// allocSpan allocates n consecutive fresh identifiers at once and returns
// the last one. Used by the Hanoi family, whose shifted copies address the
// new vertices arithmetically rather than one by one.
// Complexity: O(1).
func (s *scaffold) allocSpan(n int64) int64 {
	s.vertexCount += n

	return s.vertexCount
}

// addEdge inserts the canonical pair {u,v} with weight 1. Re-inserting an
// existing pair is a no-op. A self-pair is a generator defect, not caller
// input, and panics per the package error policy.
// Complexity: O(1) amortized.
func (s *scaffold) addEdge(u, v int64) {
	p, err := core.NewPair(u, v)
	if err != nil {
		panic(fmt.Sprintf("generate: scaffold.addEdge(%d,%d): %v", u, v, err))
	}
	if _, dup := s.weights[p]; dup {
		return
	}
	s.weights[p] = genWeight
	s.order = append(s.order, p)
}

// edgeSnapshot returns the edges inserted so far, in insertion order, as a
// capacity-clamped reslice: appends during the round cannot disturb it.
// Complexity: O(1).
func (s *scaffold) edgeSnapshot() []core.Pair {
	return s.order[:len(s.order):len(s.order)]
}

// counts reports the current vertex and edge totals.
func (s *scaffold) counts() (v, e int64) {
	return s.vertexCount, int64(len(s.weights))
}

// graph verifies the scaffold against the family's closed-form counts and
// hands the accumulated structure to the core container exactly once.
// A mismatch or container rejection wraps ErrConstructFailed: both signal
// a generator defect rather than bad caller input.
// Complexity: O(V + E) time and space.
func (s *scaffold) graph(method, name string, wantV, wantE int64) (*core.Graph, error) {
	gotV, gotE := s.counts()
	if gotV != wantV || gotE != wantE {
		return nil, fmt.Errorf("%s: built %d vertices / %d edges, closed form says %d / %d: %w",
			method, gotV, gotE, wantV, wantE, ErrConstructFailed)
	}

	// Materialize the dense vertex range 1..vertexCount.
	vertices := make([]int64, gotV)
	var id int64
	for id = 1; id <= gotV; id++ {
		vertices[id-1] = id
	}

	g, err := core.NewGraph(name, vertices, s.weights)
	if err != nil {
		return nil, fmt.Errorf("%s: container rejected scaffold: %v: %w", method, err, ErrConstructFailed)
	}

	return g, nil
}

// triangle is a frontier unit for the triangle-subdivision families
// (Koch, Apollonian). Corner order is the deterministic creation order.
type triangle struct {
	a, b, c int64
}
