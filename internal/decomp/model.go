// Package decomp holds the in-memory ordination data shown by the viewer: a
// decomposition model (sample coordinates plus metadata) and the mutable
// per-sample presentation state that attribute controllers edit.
package decomp

import (
	"fmt"
	"slices"
)

// Model is an immutable set of sample coordinates with per-sample metadata.
type Model struct {
	Name             string
	IDs              []string
	Coords           [][]float32
	PercentExplained []float32
	Headers          []string
	Metadata         [][]string
}

// NewModel validates and returns a model. Every sample needs at least three
// coordinates and one metadata row whose first column is the sample ID.
func NewModel(name string, ids []string, coords [][]float32, pctExplained []float32, headers []string, metadata [][]string) (*Model, error) {
	if len(ids) != len(coords) {
		return nil, fmt.Errorf("decomp %q: %d ids but %d coordinate rows", name, len(ids), len(coords))
	}
	for i, c := range coords {
		if len(c) < 3 {
			return nil, fmt.Errorf("decomp %q: sample %q has %d coordinates, need at least 3", name, ids[i], len(c))
		}
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("decomp %q: no metadata headers", name)
	}
	byID := make(map[string][]string, len(metadata))
	for _, row := range metadata {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("decomp %q: metadata row has %d columns, want %d", name, len(row), len(headers))
		}
		byID[row[0]] = row
	}
	ordered := make([][]string, len(ids))
	for i, id := range ids {
		row, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("decomp %q: no metadata for sample %q", name, id)
		}
		ordered[i] = row
	}
	return &Model{
		Name:             name,
		IDs:              ids,
		Coords:           coords,
		PercentExplained: pctExplained,
		Headers:          headers,
		Metadata:         ordered,
	}, nil
}

// Len returns the number of samples.
func (m *Model) Len() int { return len(m.IDs) }

// HeaderIndex returns the column of header, or -1.
func (m *Model) HeaderIndex(header string) int {
	return slices.Index(m.Headers, header)
}

// Categories returns the sorted distinct values of a metadata column.
func (m *Model) Categories(header string) []string {
	col := m.HeaderIndex(header)
	if col < 0 {
		return nil
	}
	var out []string
	for _, row := range m.Metadata {
		if !slices.Contains(out, row[col]) {
			out = append(out, row[col])
		}
	}
	slices.Sort(out)
	return out
}
