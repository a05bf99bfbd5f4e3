// Package generate defines shared constants used by the family
// generators, ensuring consistent validation bounds, method tags, and
// graph naming across all entry points.
package generate

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the entry-point name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPseudofractal is the canonical name of the Pseudofractal entry point.
	MethodPseudofractal = "Pseudofractal"
	// MethodRestrictedPseudofractal is the canonical name of the RestrictedPseudofractal entry point.
	MethodRestrictedPseudofractal = "RestrictedPseudofractal"
	// MethodEdgeCorona is the canonical name of the EdgeCorona entry point.
	MethodEdgeCorona = "EdgeCorona"
	// MethodKoch is the canonical name of the Koch entry point.
	MethodKoch = "Koch"
	// MethodCayleyTree is the canonical name of the CayleyTree entry point.
	MethodCayleyTree = "CayleyTree"
	// MethodTernaryCayleyTree is the canonical name of the TernaryCayleyTree entry point.
	MethodTernaryCayleyTree = "TernaryCayleyTree"
	// MethodExtendedHanoi is the canonical name of the ExtendedHanoi entry point.
	MethodExtendedHanoi = "ExtendedHanoi"
	// MethodApollonian is the canonical name of the Apollonian entry point.
	MethodApollonian = "Apollonian"
)

//-----------------------------------------------------------------------------
// Family tags
//   embedded in deterministic graph names, e.g. "pseudofractal(m=2,g=3)".
//-----------------------------------------------------------------------------

const (
	// TagPseudofractal tags extended pseudofractal graphs.
	TagPseudofractal = "pseudofractal"
	// TagEdgeCorona tags edge-corona clique graphs.
	TagEdgeCorona = "edge_corona"
	// TagKoch tags Koch network graphs.
	TagKoch = "koch"
	// TagCayleyTree tags b-ary Cayley tree graphs.
	TagCayleyTree = "cayley_tree"
	// TagExtendedHanoi tags extended Hanoi graphs.
	TagExtendedHanoi = "hanoi"
	// TagApollonian tags Apollonian network graphs.
	TagApollonian = "apollonian"
)

//-----------------------------------------------------------------------------
// Parameter Minima
//-----------------------------------------------------------------------------

// MinGeneration is the smallest valid generation index. Generation 0 is
// the base case: no expansion round runs.
const MinGeneration = 0

// MinBranching is the smallest valid pseudofractal branching parameter m.
// Each edge must spawn at least one vertex per round, otherwise the family
// degenerates to its base case.
const MinBranching = 1

// MinCliqueOrder is the smallest valid edge-corona clique order q.
// q = 0 is permitted and degenerate: the base K_2 never grows.
const MinCliqueOrder = 0

// MinCayleyDegree is the smallest valid Cayley tree degree b.
// b = 2 yields a path; b = 1 cannot branch and is rejected.
const MinCayleyDegree = 2

//-----------------------------------------------------------------------------
// Base-case sizes (generation 0 structures)
//-----------------------------------------------------------------------------

// triangleOrder is the vertex count of the base triangle shared by the
// pseudofractal, Koch and extended Hanoi families.
const triangleOrder = 3

// apollonianBaseOrder is the vertex count of the Apollonian base K4.
const apollonianBaseOrder = 4

// genWeight is the weight of every generated edge. The weight dimension
// exists only because the container is weighted; all families emit 1.
const genWeight int64 = 1
