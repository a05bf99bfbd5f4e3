// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// counts.go — closed-form vertex/edge counts with checked arithmetic.
//
// Contract:
//   • Every XxxCounts function validates its parameters exactly like the
//     matching entry point, then evaluates the published formula in
//     checked int64 arithmetic, returning ErrOverflow instead of wrapping.
//   • Entry points call their Counts function BEFORE allocating anything,
//     so an infeasible generation fails cleanly with no partial state.
//   • The formulas:
//       Pseudofractal(m,g):  V = 3((2m+1)^g + 1)/2        E = 3(2m+1)^g
//       EdgeCorona(q,g):     M = (q+1)(q+2)/2
//                            V = (q+2) + qM(M^g−1)/(M−1)  E = M^{g+1}   (q ≥ 1)
//                            V = 2, E = 1 for every g when q = 0
//       Koch(g):             V = 2·4^g + 1                E = 3·4^g
//       CayleyTree(b,g):     V = 1 + b((b−1)^g − 1)/(b−2) E = V − 1     (b ≥ 3)
//                            V = 1 + 2g                   E = V − 1     (b = 2)
//       ExtendedHanoi(g):    V = 4·3^{g−1}                E = 2·3^g     (g ≥ 2)
//                            V = 3, E = 3 for g ∈ {0, 1}
//       Apollonian(g):       V = 2·3^g + 2                E = 6·3^g

package generate

import (
	"fmt"
	"math"
)

// addChecked adds two non-negative int64 values, reporting overflow.
func addChecked(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}

	return a + b, true
}

// mulChecked multiplies two non-negative int64 values, reporting overflow.
func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}

	return a * b, true
}

// powChecked raises a non-negative base to a non-negative exponent,
// reporting overflow. powChecked(0, 0) follows the combinatorial
// convention and returns 1.
func powChecked(base int64, exp int) (int64, bool) {
	var (
		out = int64(1)
		ok  bool
	)
	for i := 0; i < exp; i++ {
		if out, ok = mulChecked(out, base); !ok {
			return 0, false
		}
	}

	return out, true
}

// overflowErr wraps ErrOverflow with entry-point context.
func overflowErr(method string, g int) error {
	return fmt.Errorf("%s: counts for generation %d exceed int64: %w", method, g, ErrOverflow)
}

// PseudofractalCounts returns the closed-form vertex and edge counts of
// the extended pseudofractal network for branching m and generation g.
// Errors: ErrInvalidParameter (m < 1 or g < 0), ErrOverflow.
// Complexity: O(g) time, O(1) space.
func PseudofractalCounts(m, g int) (v, e int64, err error) {
	if err = validateMin(MethodPseudofractal, "branching m", m, MinBranching); err != nil {
		return 0, 0, err
	}
	if err = validateGeneration(MethodPseudofractal, g); err != nil {
		return 0, 0, err
	}

	// t = (2m+1)^g is the edge multiplier after g rounds.
	t, ok := powChecked(int64(2*m+1), g)
	if !ok {
		return 0, 0, overflowErr(MethodPseudofractal, g)
	}
	if e, ok = mulChecked(3, t); !ok {
		return 0, 0, overflowErr(MethodPseudofractal, g)
	}
	// V = (3t + 3)/2; the numerator is always even since t is odd.
	if v, ok = addChecked(e, 3); !ok {
		return 0, 0, overflowErr(MethodPseudofractal, g)
	}
	v /= 2

	return v, e, nil
}

// EdgeCoronaCounts returns the closed-form vertex and edge counts of the
// edge-corona clique network for clique order q and generation g. The
// q = 0 family is degenerate: the base K_2 never grows.
// Errors: ErrInvalidParameter (q < 0 or g < 0), ErrOverflow.
// Complexity: O(g) time, O(1) space.
func EdgeCoronaCounts(q, g int) (v, e int64, err error) {
	if err = validateMin(MethodEdgeCorona, "clique order q", q, MinCliqueOrder); err != nil {
		return 0, 0, err
	}
	if err = validateGeneration(MethodEdgeCorona, g); err != nil {
		return 0, 0, err
	}
	if q == 0 {
		return 2, 1, nil
	}

	// M = (q+1)(q+2)/2 is both the base edge count and the per-round
	// edge multiplier; the coincidence makes E = M^{g+1}.
	qq := int64(q)
	m := (qq + 1) * (qq + 2) / 2

	mg, ok := powChecked(m, g)
	if !ok {
		return 0, 0, overflowErr(MethodEdgeCorona, g)
	}
	if e, ok = mulChecked(m, mg); !ok {
		return 0, 0, overflowErr(MethodEdgeCorona, g)
	}

	// V = (q+2) + q·M·(M^g − 1)/(M − 1): q new vertices per edge per
	// round, summed over the geometric edge history.
	num, ok := mulChecked(qq, m)
	if !ok {
		return 0, 0, overflowErr(MethodEdgeCorona, g)
	}
	if num, ok = mulChecked(num, mg-1); !ok {
		return 0, 0, overflowErr(MethodEdgeCorona, g)
	}
	if v, ok = addChecked(qq+2, num/(m-1)); !ok {
		return 0, 0, overflowErr(MethodEdgeCorona, g)
	}

	return v, e, nil
}

// KochCounts returns the closed-form vertex and edge counts of the Koch
// network for generation g.
// Errors: ErrInvalidParameter (g < 0), ErrOverflow.
// Complexity: O(g) time, O(1) space.
func KochCounts(g int) (v, e int64, err error) {
	if err = validateGeneration(MethodKoch, g); err != nil {
		return 0, 0, err
	}

	t, ok := powChecked(4, g)
	if !ok {
		return 0, 0, overflowErr(MethodKoch, g)
	}
	if e, ok = mulChecked(3, t); !ok {
		return 0, 0, overflowErr(MethodKoch, g)
	}
	if v, ok = mulChecked(2, t); !ok {
		return 0, 0, overflowErr(MethodKoch, g)
	}
	if v, ok = addChecked(v, 1); !ok {
		return 0, 0, overflowErr(MethodKoch, g)
	}

	return v, e, nil
}

// CayleyTreeCounts returns the closed-form vertex and edge counts of the
// b-ary Cayley tree for degree b and generation g. Generation 0 is a lone
// root; E = V − 1 always (the graph is a tree).
// Errors: ErrInvalidParameter (b < 2 or g < 0), ErrOverflow.
// Complexity: O(g) time, O(1) space.
func CayleyTreeCounts(b, g int) (v, e int64, err error) {
	if err = validateMin(MethodCayleyTree, "degree b", b, MinCayleyDegree); err != nil {
		return 0, 0, err
	}
	if err = validateGeneration(MethodCayleyTree, g); err != nil {
		return 0, 0, err
	}

	if b == MinCayleyDegree {
		// b = 2 degenerates to a path: 2 leaves forever.
		v = 1 + 2*int64(g)

		return v, v - 1, nil
	}

	// t = (b−1)^g counts the final-generation leaves per root branch.
	t, ok := powChecked(int64(b-1), g)
	if !ok {
		return 0, 0, overflowErr(MethodCayleyTree, g)
	}
	// V = 1 + b(t − 1)/(b − 2); t ≡ 1 (mod b−2) keeps the division exact.
	num, ok := mulChecked(int64(b), t-1)
	if !ok {
		return 0, 0, overflowErr(MethodCayleyTree, g)
	}
	if v, ok = addChecked(1, num/int64(b-2)); !ok {
		return 0, 0, overflowErr(MethodCayleyTree, g)
	}

	return v, v - 1, nil
}

// ExtendedHanoiCounts returns the closed-form vertex and edge counts of
// the extended Hanoi graph for generation g. Generations 0 and 1 are the
// base triangle; from generation 2 on the graph is 3-regular with
// V = 4·3^{g−1} and E = 2·3^g.
// Errors: ErrInvalidParameter (g < 0), ErrOverflow.
// Complexity: O(g) time, O(1) space.
func ExtendedHanoiCounts(g int) (v, e int64, err error) {
	if err = validateGeneration(MethodExtendedHanoi, g); err != nil {
		return 0, 0, err
	}
	if g < 2 {
		return triangleOrder, triangleOrder, nil
	}

	t, ok := powChecked(3, g-1)
	if !ok {
		return 0, 0, overflowErr(MethodExtendedHanoi, g)
	}
	if v, ok = mulChecked(4, t); !ok {
		return 0, 0, overflowErr(MethodExtendedHanoi, g)
	}
	if e, ok = mulChecked(6, t); !ok {
		return 0, 0, overflowErr(MethodExtendedHanoi, g)
	}

	return v, e, nil
}

// ApollonianCounts returns the closed-form vertex and edge counts of the
// Apollonian network for generation g.
// Errors: ErrInvalidParameter (g < 0), ErrOverflow.
// Complexity: O(g) time, O(1) space.
func ApollonianCounts(g int) (v, e int64, err error) {
	if err = validateGeneration(MethodApollonian, g); err != nil {
		return 0, 0, err
	}

	t, ok := powChecked(3, g)
	if !ok {
		return 0, 0, overflowErr(MethodApollonian, g)
	}
	if e, ok = mulChecked(6, t); !ok {
		return 0, 0, overflowErr(MethodApollonian, g)
	}
	if v, ok = mulChecked(2, t); !ok {
		return 0, 0, overflowErr(MethodApollonian, g)
	}
	if v, ok = addChecked(v, 2); !ok {
		return 0, 0, overflowErr(MethodApollonian, g)
	}

	return v, e, nil
}
