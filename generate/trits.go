// SPDX-License-Identifier: MIT
// Package: selfsim/generate
//
// trits.go — explicit base-3 digit-sequence addressing.
//
// The extended Hanoi construction identifies vertices by base-3 digit
// strings whose length is tied to the expansion round. Addresses are kept
// as explicit digit sequences (most significant trit first) with direct
// value↔sequence conversion, never as text: the addressing invariant is
// the sequence length, and string concatenation would only obscure it.

package generate

// trit is one base-3 digit (0, 1 or 2).
type trit uint8

// tritBase is the radix of a trit sequence.
const tritBase = 3

// tritSeq is a base-3 digit sequence, most significant digit first. A
// sequence of length k addresses the value range [0, 3^k).
type tritSeq []trit

// value converts the digit sequence to its integer value.
// Complexity: O(len(seq)).
func (seq tritSeq) value() int64 {
	var v int64
	for _, d := range seq {
		v = v*tritBase + int64(d)
	}

	return v
}

// tritsOf converts v into its width-digit sequence, the inverse of value
// for 0 ≤ v < 3^width.
// Complexity: O(width).
func tritsOf(v int64, width int) tritSeq {
	seq := make(tritSeq, width)
	for i := width - 1; i >= 0; i-- {
		seq[i] = trit(v % tritBase)
		v /= tritBase
	}

	return seq
}

// tritRepeat returns the sequence of k repetitions of digit d.
// Complexity: O(k).
func tritRepeat(d trit, k int) tritSeq {
	seq := make(tritSeq, k)
	for i := range seq {
		seq[i] = d
	}

	return seq
}

// then returns seq followed by tail as a fresh sequence.
// Complexity: O(len(seq) + len(tail)).
func (seq tritSeq) then(tail tritSeq) tritSeq {
	out := make(tritSeq, 0, len(seq)+len(tail))
	out = append(out, seq...)
	out = append(out, tail...)

	return out
}
