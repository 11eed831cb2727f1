package probe

import (
	"testing"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureVoltage_UnsolvedReadsZero(t *testing.T) {
	c := domain.NewCircuit()
	_, err := c.AddResistor("R1", "a", "b", 3)
	require.NoError(t, err)

	p := New(nil)
	assert.Zero(t, p.MeasureVoltage(c.Nodes["a"], c.Nodes["b"]))
	assert.Zero(t, p.MeasureVoltage(nil, c.Nodes["b"]))
}

func TestMeasure_AfterSolve(t *testing.T) {
	c := domain.NewCircuit()
	_, err := c.AddSource("V1", "p", "n", 6)
	require.NoError(t, err)
	r1, err := c.AddResistor("R1", "p", "m", 3)
	require.NoError(t, err)
	_, err = c.AddResistor("R2", "m", "n", 3)
	require.NoError(t, err)

	_, err = solver.New(nil).Solve(c)
	require.NoError(t, err)

	p := New(nil)
	assert.InDelta(t, 3.0, p.MeasureVoltage(c.Nodes["p"], c.Nodes["m"]), 1e-2)
	assert.InDelta(t, -3.0, p.MeasureVoltage(c.Nodes["m"], c.Nodes["p"]), 1e-2)
	assert.InDelta(t, 6.0, p.MeasureVoltage(c.Nodes["p"], c.Nodes["n"]), 1e-2)
	assert.InDelta(t, 1.0, p.MeasureCurrent(r1), 1e-2)
	assert.Zero(t, p.MeasureCurrent(nil))
}
