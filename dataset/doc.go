// Package dataset retrieves real-world graph datasets and exposes them as
// streams of (u, v) integer pairs feeding the core container — the same
// sink the generators populate, so analytic and empirical graphs flow
// through one contract.
//
// Two archive conventions are supported:
//
//   - KONECT: a .tar.bz2 archive whose payload is the out.* member, a
//     %-commented whitespace-delimited edge list;
//   - SNAP: a .gz-compressed #-commented tab-delimited edge list.
//
// Sources come from a built-in registry or from a TOML catalog of
// [[dataset]] tables (name/url/format). Fetch downloads and decompresses
// into a plain edge-list file; Scanner streams its pairs; Load builds the
// core graph with a constant default weight of 1.
//
// The package performs I/O and logs through charmbracelet/log; it
// implements no retry policy — a failed fetch is reported as-is and no
// partial graph is ever constructed.
package dataset
