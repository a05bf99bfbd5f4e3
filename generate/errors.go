// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// errors.go — sentinel errors for the generate package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Entry points attach context via fmt.Errorf("%s: ...: %w", methodTag, ..., ErrX).
//   • Generators MUST NOT panic at runtime; the only panics in this
//     package guard internal scaffold invariants that indicate programmer
//     error (a generator emitting a self-pair), never bad caller input.

package generate

import "errors"

// ErrInvalidParameter indicates a family parameter outside its documented
// domain: a negative generation index, branching m < 1, clique order
// q < 0, or tree degree b < 2. Reported before any allocation; no partial
// graph is ever returned.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject input */ }.
var ErrInvalidParameter = errors.New("generate: parameter outside documented domain")

// ErrOverflow indicates that the projected vertex or edge count for the
// requested generation does not fit in int64. The projection uses the
// closed-form formulas, so the error is reported before construction
// begins rather than discovered mid-expansion.
// Usage: if errors.Is(err, ErrOverflow) { /* lower g or the branching parameter */ }.
var ErrOverflow = errors.New("generate: projected size overflows int64")

// ErrConstructFailed indicates that the finished scaffold disagreed with
// the family's closed-form counts or was rejected by the core container.
// This is a defensive check; it signals a defect in the generator itself,
// not in the caller's parameters.
// Usage: if errors.Is(err, ErrConstructFailed) { /* report a bug */ }.
var ErrConstructFailed = errors.New("generate: construction failed")
