package validation

import (
	"fmt"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
)

// completenessThreshold is the minimum fraction of nodes that must be
// reachable from the source before the circuit counts as connected.
// Below 1.0 so that parts isolated only behind an open switch do not
// fail the whole circuit.
const completenessThreshold = 0.8

type completeness struct{}

func (completeness) Name() string { return "completeness" }

// Check walks the circuit breadth-first from the source's positive
// terminal, crossing only conducting components (open switches block).
// If too few nodes are reached it errors, and additionally flags every
// component both of whose terminals lie outside the reached set.
func (completeness) Check(c *domain.Circuit) []Finding {
	src := c.FirstSource()
	if src == nil || len(c.Nodes) == 0 {
		return nil
	}

	reached := map[*domain.Node]bool{src.A: true}
	queue := []*domain.Node{src.A}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, comp := range n.Components {
			if _, conducting := comp.Resistance(); !conducting {
				continue
			}
			other := comp.Other(n)
			if other != nil && !reached[other] {
				reached[other] = true
				queue = append(queue, other)
			}
		}
	}

	fraction := float64(len(reached)) / float64(len(c.Nodes))
	if fraction >= completenessThreshold {
		return nil
	}

	findings := []Finding{{
		Severity: SeverityError,
		Message: fmt.Sprintf("circuit is incomplete: only %d of %d nodes are connected to the source",
			len(reached), len(c.Nodes)),
	}}
	for _, comp := range c.Components {
		if !reached[comp.A] && !reached[comp.B] {
			findings = append(findings, Finding{
				Severity:   SeverityError,
				Message:    fmt.Sprintf("component %s is not connected to the main circuit", comp.ID),
				Components: []string{comp.ID},
			})
		}
	}
	return findings
}

type floatingComponents struct{}

func (floatingComponents) Name() string { return "floating_components" }

// Check warns about components that touch nothing else on either
// terminal.
func (floatingComponents) Check(c *domain.Circuit) []Finding {
	var findings []Finding
	for _, comp := range c.Components {
		if comp.A.Degree() < 2 && comp.B.Degree() < 2 {
			findings = append(findings, Finding{
				Severity:   SeverityWarning,
				Message:    fmt.Sprintf("component %s is floating: neither terminal connects to anything else", comp.ID),
				Components: []string{comp.ID},
			})
		}
	}
	return findings
}
