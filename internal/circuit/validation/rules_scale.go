package validation

import (
	"fmt"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
)

const (
	// maxComponents is a usability ceiling, not an electrical limit;
	// beyond it the lab view becomes unreadable.
	maxComponents = 20
	// maxNodeDegree caps how many components can pile onto one junction
	// before the layout degrades.
	maxNodeDegree = 4
)

type scaleHeuristics struct{}

func (scaleHeuristics) Name() string { return "scale_heuristics" }

func (scaleHeuristics) Check(c *domain.Circuit) []Finding {
	var findings []Finding
	if len(c.Components) > maxComponents {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("circuit has %d components; more than %d is hard to follow",
				len(c.Components), maxComponents),
		})
	}
	for _, n := range c.NodeOrder() {
		if n.Degree() > maxNodeDegree {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Message: fmt.Sprintf("node %s has %d connections; more than %d is hard to follow",
					n.ID, n.Degree(), maxNodeDegree),
			})
		}
	}
	return findings
}
