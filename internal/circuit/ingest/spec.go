// Package ingest turns wire-format circuit descriptions into domain
// circuits. The builder role belongs to callers of the engine; this is
// the builder used by the HTTP API and the CLI.
package ingest

import (
	"encoding/json"
	"fmt"
)

// CircuitSpec is the JSON description of a circuit as sent by clients.
// Nodes are implied by the terminal ids; connecting two components to
// the same node id is how series/parallel topology is expressed.
type CircuitSpec struct {
	Components []ComponentSpec `json:"components"`
}

// ComponentSpec is one element of a CircuitSpec. For a source, From is
// the positive terminal and To the negative one. A switch with no
// "closed" field is open.
type ComponentSpec struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	EMF    float64 `json:"emf,omitempty"`
	Ohms   float64 `json:"ohms,omitempty"`
	Closed bool    `json:"closed,omitempty"`
}

// ParseJSON decodes a CircuitSpec from raw JSON bytes.
func ParseJSON(data []byte) (*CircuitSpec, error) {
	var spec CircuitSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("ingest: decode circuit spec: %w", err)
	}
	return &spec, nil
}
