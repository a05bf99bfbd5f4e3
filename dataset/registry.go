// SPDX-License-Identifier: MIT
// Package: selfsim/dataset
//
// registry.go — the catalog of downloadable dataset sources.
//
// Contract:
//   • Built-in entries cover a handful of small, well-known datasets.
//   • A TOML catalog ([[dataset]] tables) extends or overrides them;
//     file entries win on name collision.
//   • Lookup is case-sensitive and returns ErrUnknownDataset for misses.

package dataset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// Sentinel errors for registry handling.
var (
	// ErrUnknownDataset indicates a Lookup miss.
	ErrUnknownDataset = errors.New("dataset: unknown dataset")

	// ErrBadSource indicates a registry entry with a missing field or an
	// unrecognized format.
	ErrBadSource = errors.New("dataset: invalid source entry")
)

// Archive format tags accepted in Source.Format.
const (
	// FormatKONECT marks a KONECT-style .tar.bz2 archive.
	FormatKONECT = "konect"

	// FormatSNAP marks a SNAP-style .gz edge list.
	FormatSNAP = "snap"
)

// Source describes one downloadable dataset.
type Source struct {
	// Name is the registry key, e.g. "moreno_zebra".
	Name string `toml:"name"`

	// URL is the archive location.
	URL string `toml:"url"`

	// Format is FormatKONECT or FormatSNAP.
	Format string `toml:"format"`
}

// validate checks the entry is complete and its format recognized.
func (s Source) validate() error {
	if s.Name == "" || s.URL == "" {
		return fmt.Errorf("name=%q url=%q: %w", s.Name, s.URL, ErrBadSource)
	}
	if s.Format != FormatKONECT && s.Format != FormatSNAP {
		return fmt.Errorf("%s: format %q: %w", s.Name, s.Format, ErrBadSource)
	}

	return nil
}

// Registry maps dataset names to sources.
type Registry struct {
	sources map[string]Source
}

// builtinSources is the default catalog: small public datasets that keep
// downloads and spectral checks fast.
var builtinSources = []Source{
	{Name: "moreno_zebra", URL: "http://konect.cc/files/download.tsv.moreno_zebra.tar.bz2", Format: FormatKONECT},
	{Name: "ucidata-zachary", URL: "http://konect.cc/files/download.tsv.ucidata-zachary.tar.bz2", Format: FormatKONECT},
	{Name: "arenas-jazz", URL: "http://konect.cc/files/download.tsv.arenas-jazz.tar.bz2", Format: FormatKONECT},
	{Name: "ca-GrQc", URL: "https://snap.stanford.edu/data/ca-GrQc.txt.gz", Format: FormatSNAP},
	{Name: "facebook_combined", URL: "https://snap.stanford.edu/data/facebook_combined.txt.gz", Format: FormatSNAP},
}

// BuiltinRegistry returns a registry holding only the built-in catalog.
// Complexity: O(len(builtinSources)).
func BuiltinRegistry() *Registry {
	r := &Registry{sources: make(map[string]Source, len(builtinSources))}
	for _, s := range builtinSources {
		r.sources[s.Name] = s
	}

	return r
}

// LoadRegistry reads a TOML catalog and layers it over the built-in
// entries (file entries win on collision).
//
// Catalog shape:
//
//	[[dataset]]
//	name   = "moreno_zebra"
//	url    = "http://konect.cc/files/download.tsv.moreno_zebra.tar.bz2"
//	format = "konect"
//
// Errors: TOML decode errors, ErrBadSource for incomplete entries.
// Complexity: O(entries).
func LoadRegistry(path string) (*Registry, error) {
	var file struct {
		Dataset []Source `toml:"dataset"`
	}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("dataset: decode registry %s: %w", path, err)
	}

	r := BuiltinRegistry()
	for _, s := range file.Dataset {
		if err := s.validate(); err != nil {
			return nil, err
		}
		r.sources[s.Name] = s
	}

	return r, nil
}

// Lookup returns the source registered under name.
// Errors: ErrUnknownDataset.
// Complexity: O(1).
func (r *Registry) Lookup(name string) (Source, error) {
	s, ok := r.sources[name]
	if !ok {
		return Source{}, fmt.Errorf("%s: %w", name, ErrUnknownDataset)
	}

	return s, nil
}

// Names returns all registered dataset names in ascending order.
// Complexity: O(n log n).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for n := range r.sources {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
