package validation

import (
	"fmt"
	"strings"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
)

// shortCircuitThreshold is the total path resistance under which a
// zero-resistance path across a source counts as a short.
const shortCircuitThreshold = 0.1

type shortCircuit struct{}

func (shortCircuit) Name() string { return "short_circuit" }

// Check looks, per source, for a path from the positive to the negative
// terminal made only of zero-resistance conducting components (wires
// and closed switches). Such a path puts the source's full EMF across
// effectively nothing.
func (shortCircuit) Check(c *domain.Circuit) []Finding {
	var findings []Finding
	for _, src := range c.Sources() {
		visited := map[*domain.Node]bool{}
		var path []*domain.Component
		if findZeroResistancePath(src.A, src.B, visited, &path) {
			var total float64
			ids := make([]string, 0, len(path))
			for _, comp := range path {
				ohms, _ := comp.Resistance()
				total += ohms
				ids = append(ids, comp.ID)
			}
			if total < shortCircuitThreshold {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Message: fmt.Sprintf("short circuit across source %s via %s",
						src.ID, strings.Join(ids, ", ")),
					Components: ids,
				})
			}
		}
	}
	return findings
}

// findZeroResistancePath is a depth-first search from n to target over
// wires and closed switches only; sources are zero resistance too but
// are never part of a short path. path accumulates the components of
// the current attempt and is unwound on dead ends.
func findZeroResistancePath(n, target *domain.Node, visited map[*domain.Node]bool, path *[]*domain.Component) bool {
	if n == target {
		return true
	}
	visited[n] = true
	for _, comp := range n.Components {
		if comp.Kind == domain.KindSource {
			continue
		}
		ohms, conducting := comp.Resistance()
		if !conducting || ohms > 0 {
			continue
		}
		other := comp.Other(n)
		if other == nil || visited[other] {
			continue
		}
		*path = append(*path, comp)
		if findZeroResistancePath(other, target, visited, path) {
			return true
		}
		*path = (*path)[:len(*path)-1]
	}
	return false
}
