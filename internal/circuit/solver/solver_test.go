package solver

import (
	"testing"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_SeriesResistors(t *testing.T) {
	// 6V source, two 3 ohm resistors in series: 1A everywhere, 3V drop
	// on each resistor.
	c := domain.NewCircuit()
	src, err := c.AddSource("V1", "p", "n", 6)
	require.NoError(t, err)
	r1, err := c.AddResistor("R1", "p", "m", 3)
	require.NoError(t, err)
	r2, err := c.AddResistor("R2", "m", "n", 3)
	require.NoError(t, err)

	sol, err := New(nil).Solve(c)
	require.NoError(t, err)
	assert.True(t, sol.Converged)

	assert.InDelta(t, 1.0, src.Current, 1e-2)
	assert.InDelta(t, 1.0, r1.Current, 1e-2)
	assert.InDelta(t, 1.0, r2.Current, 1e-2)
	assert.InDelta(t, 3.0, r1.VoltageDrop, 1e-2)
	assert.InDelta(t, 3.0, r2.VoltageDrop, 1e-2)
	assert.InDelta(t, 6.0, src.VoltageDrop, 1e-9)
	assert.InDelta(t, 3.0, c.Nodes["m"].Voltage, 1e-2)
}

func TestSolve_ParallelResistors(t *testing.T) {
	// 6V source, 3 ohm and 6 ohm in parallel across it.
	c := domain.NewCircuit()
	src, err := c.AddSource("V1", "p", "n", 6)
	require.NoError(t, err)
	r3, err := c.AddResistor("R3", "p", "n", 3)
	require.NoError(t, err)
	r6, err := c.AddResistor("R6", "p", "n", 6)
	require.NoError(t, err)

	sol, err := New(nil).Solve(c)
	require.NoError(t, err)
	assert.True(t, sol.Converged)

	assert.InDelta(t, 3.0, src.Current, 1e-2)
	assert.InDelta(t, 2.0, r3.Current, 1e-2)
	assert.InDelta(t, 1.0, r6.Current, 1e-2)
	assert.InDelta(t, 6.0, r3.VoltageDrop, 1e-2)
	assert.InDelta(t, 6.0, r6.VoltageDrop, 1e-2)
}

func TestSolve_SeriesParallelNetwork(t *testing.T) {
	// 12V source, R1=2 in series with (R2=4 || R3=6), then R4=2.
	c := domain.NewCircuit()
	src, err := c.AddSource("V1", "p", "n", 12)
	require.NoError(t, err)
	r1, err := c.AddResistor("R1", "p", "a", 2)
	require.NoError(t, err)
	r2, err := c.AddResistor("R2", "a", "b", 4)
	require.NoError(t, err)
	r3, err := c.AddResistor("R3", "a", "b", 6)
	require.NoError(t, err)
	r4, err := c.AddResistor("R4", "b", "n", 2)
	require.NoError(t, err)

	sol, err := New(nil).Solve(c)
	require.NoError(t, err)
	assert.True(t, sol.Converged)

	assert.InDelta(t, 1.875, src.Current, 1e-2)
	assert.InDelta(t, 1.875, r1.Current, 1e-2)
	assert.InDelta(t, 1.875, r4.Current, 1e-2)
	assert.InDelta(t, 3.75, r1.VoltageDrop, 1e-2)
	assert.InDelta(t, 3.75, r4.VoltageDrop, 1e-2)
	assert.InDelta(t, 1.125, r2.Current, 1e-2)
	assert.InDelta(t, 4.5, r2.VoltageDrop, 1e-2)
	assert.InDelta(t, 0.75, r3.Current, 1e-2)
	assert.InDelta(t, 4.5, r3.VoltageDrop, 1e-2)
}

func TestSolve_OpenSwitchIsolatesBranch(t *testing.T) {
	// 12V source; R1=4 -> open switch -> R2=2 on one branch, R3=6
	// directly across the source on the other. The blocked branch
	// carries nothing, R3 is unaffected.
	c := domain.NewCircuit()
	src, err := c.AddSource("V1", "p", "n", 12)
	require.NoError(t, err)
	r1, err := c.AddResistor("R1", "p", "a", 4)
	require.NoError(t, err)
	sw, err := c.AddSwitch("S1", "a", "b", false)
	require.NoError(t, err)
	r2, err := c.AddResistor("R2", "b", "n", 2)
	require.NoError(t, err)
	r3, err := c.AddResistor("R3", "p", "n", 6)
	require.NoError(t, err)

	sol, err := New(nil).Solve(c)
	require.NoError(t, err)
	assert.True(t, sol.Converged)

	assert.InDelta(t, 0, r1.Current, 1e-3)
	assert.InDelta(t, 0, r2.Current, 1e-3)
	assert.InDelta(t, 0, sw.Current, 1e-9)
	assert.InDelta(t, 0, sw.VoltageDrop, 1e-9)
	assert.InDelta(t, 2.0, r3.Current, 1e-2)
	assert.InDelta(t, 12.0, r3.VoltageDrop, 1e-2)
	assert.InDelta(t, 2.0, src.Current, 1e-2)
}

func TestSolve_WireBorrowsNeighborCurrent(t *testing.T) {
	// A wire has no resistance, so its current cannot come from Ohm's
	// law; it copies the current of the first finite-resistance
	// component sharing one of its terminals.
	c := domain.NewCircuit()
	_, err := c.AddSource("V1", "p", "n", 6)
	require.NoError(t, err)
	r3, err := c.AddResistor("R3", "p", "n", 3)
	require.NoError(t, err)
	w1, err := c.AddWire("W1", "p", "n")
	require.NoError(t, err)

	sol, err := New(nil).Solve(c)
	require.NoError(t, err)
	assert.True(t, sol.Converged)

	assert.InDelta(t, 2.0, r3.Current, 1e-2)
	assert.InDelta(t, r3.Current, w1.Current, 1e-9)
	assert.InDelta(t, 0, w1.VoltageDrop, 1e-9)
}

func TestSolve_MissingSource(t *testing.T) {
	c := domain.NewCircuit()
	r1, err := c.AddResistor("R1", "a", "b", 3)
	require.NoError(t, err)

	sol, err := New(nil).Solve(c)
	require.NoError(t, err)
	assert.False(t, sol.Converged)
	assert.Zero(t, sol.Iterations)
	require.Len(t, sol.Diagnostics, 1)
	assert.Contains(t, sol.Diagnostics[0], "no power source")

	assert.Zero(t, r1.Current)
	assert.Zero(t, r1.VoltageDrop)
	assert.Zero(t, c.Nodes["a"].Voltage)
	assert.Zero(t, c.Nodes["b"].Voltage)
}

func TestSolve_Idempotent(t *testing.T) {
	c := domain.NewCircuit()
	_, err := c.AddSource("V1", "p", "n", 12)
	require.NoError(t, err)
	_, err = c.AddResistor("R1", "p", "a", 2)
	require.NoError(t, err)
	_, err = c.AddResistor("R2", "a", "b", 4)
	require.NoError(t, err)
	_, err = c.AddResistor("R3", "a", "b", 6)
	require.NoError(t, err)
	_, err = c.AddResistor("R4", "b", "n", 2)
	require.NoError(t, err)

	s := New(nil)
	_, err = s.Solve(c)
	require.NoError(t, err)

	first := map[string]float64{}
	for id, n := range c.Nodes {
		first[id] = n.Voltage
	}
	firstCurrents := map[string]float64{}
	for _, comp := range c.Components {
		firstCurrents[comp.ID] = comp.Current
	}

	_, err = s.Solve(c)
	require.NoError(t, err)

	for id, n := range c.Nodes {
		assert.InDelta(t, first[id], n.Voltage, 1e-3, "node %s", id)
	}
	for _, comp := range c.Components {
		assert.InDelta(t, firstCurrents[comp.ID], comp.Current, 1e-3, "component %s", comp.ID)
	}
}

func TestSolve_CurrentConservation(t *testing.T) {
	c := domain.NewCircuit()
	src, err := c.AddSource("V1", "p", "n", 6)
	require.NoError(t, err)
	_, err = c.AddResistor("R1", "p", "n", 3)
	require.NoError(t, err)
	_, err = c.AddResistor("R2", "p", "n", 6)
	require.NoError(t, err)

	sol, err := New(nil).Solve(c)
	require.NoError(t, err)

	var negSum float64
	for _, comp := range src.B.Components {
		if comp != src {
			negSum += comp.Current
		}
	}
	assert.InDelta(t, src.Current, negSum, 1e-2)
	for _, d := range sol.Diagnostics {
		assert.NotContains(t, d, "conservation")
	}
}

func TestSolve_NilCircuit(t *testing.T) {
	_, err := New(nil).Solve(nil)
	require.Error(t, err)
}
