package validation

import (
	"strings"
	"testing"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSeriesCircuit(t *testing.T) *domain.Circuit {
	t.Helper()
	c := domain.NewCircuit()
	_, err := c.AddSource("V1", "p", "n", 6)
	require.NoError(t, err)
	_, err = c.AddResistor("R1", "p", "m", 3)
	require.NoError(t, err)
	_, err = c.AddResistor("R2", "m", "n", 3)
	require.NoError(t, err)
	return c
}

func TestValidate_CleanCircuit(t *testing.T) {
	report, err := New(nil).Validate(validSeriesCircuit(t))
	require.NoError(t, err)
	assert.True(t, report.IsValid())
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestValidate_MissingSource(t *testing.T) {
	c := domain.NewCircuit()
	_, err := c.AddResistor("R1", "a", "b", 3)
	require.NoError(t, err)
	_, err = c.AddResistor("R2", "b", "a", 6)
	require.NoError(t, err)

	report, err := New(nil).Validate(c)
	require.NoError(t, err)
	assert.False(t, report.IsValid())
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "circuit must contain a power source", report.Errors[0])
}

func TestValidate_MultipleSourcesWarn(t *testing.T) {
	c := validSeriesCircuit(t)
	_, err := c.AddSource("V2", "p", "n", 9)
	require.NoError(t, err)

	report, err := New(nil).Validate(c)
	require.NoError(t, err)
	assert.True(t, report.IsValid())
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "2 power sources")
}

func TestValidate_NoResistiveLoad(t *testing.T) {
	c := domain.NewCircuit()
	_, err := c.AddSource("V1", "p", "n", 6)
	require.NoError(t, err)
	_, err = c.AddWire("W1", "p", "n")
	require.NoError(t, err)

	report, err := New(nil).Validate(c)
	require.NoError(t, err)
	assert.Contains(t, report.Warnings, "no resistive components; risk of unbounded current")
}

func TestValidate_ShortCircuitAcrossSource(t *testing.T) {
	c := validSeriesCircuit(t)
	_, err := c.AddWire("W1", "p", "n")
	require.NoError(t, err)

	report, err := New(nil).Validate(c)
	require.NoError(t, err)

	var found bool
	for _, w := range report.Warnings {
		if containsAll(w, "short circuit", "V1", "W1") {
			found = true
		}
	}
	assert.True(t, found, "expected a short circuit warning naming W1, got %v", report.Warnings)
}

func TestValidate_ShortThroughClosedSwitch(t *testing.T) {
	c := validSeriesCircuit(t)
	_, err := c.AddSwitch("S1", "p", "x", true)
	require.NoError(t, err)
	_, err = c.AddWire("W1", "x", "n")
	require.NoError(t, err)

	report, err := New(nil).Validate(c)
	require.NoError(t, err)

	var found bool
	for _, w := range report.Warnings {
		if containsAll(w, "short circuit", "S1", "W1") {
			found = true
		}
	}
	assert.True(t, found, "expected short path S1 -> W1, got %v", report.Warnings)
}

func TestValidate_OpenSwitchIsNotAShort(t *testing.T) {
	c := validSeriesCircuit(t)
	_, err := c.AddSwitch("S1", "p", "x", false)
	require.NoError(t, err)
	_, err = c.AddWire("W1", "x", "n")
	require.NoError(t, err)

	report, err := New(nil).Validate(c)
	require.NoError(t, err)
	for _, w := range report.Warnings {
		assert.NotContains(t, w, "short circuit")
	}
}

func TestValidate_DisconnectedComponent(t *testing.T) {
	c := validSeriesCircuit(t)
	// R3 floats on its own pair of nodes; 3 of 5 nodes reachable.
	_, err := c.AddResistor("R3", "x", "y", 5)
	require.NoError(t, err)

	report, err := New(nil).Validate(c)
	require.NoError(t, err)
	assert.False(t, report.IsValid())

	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "incomplete")
	assert.Contains(t, report.Errors[1], "R3 is not connected to the main circuit")
	// And it is floating too: nothing touches either terminal.
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "R3 is floating")
}

func TestValidate_OpenSwitchIsolationTolerated(t *testing.T) {
	// One node (q) sits behind an open switch: 4 of 5 nodes reached,
	// exactly at the completeness threshold, so no error.
	c := domain.NewCircuit()
	_, err := c.AddSource("V1", "p", "n", 6)
	require.NoError(t, err)
	_, err = c.AddResistor("R1", "p", "a", 3)
	require.NoError(t, err)
	_, err = c.AddResistor("R2", "a", "b", 3)
	require.NoError(t, err)
	_, err = c.AddResistor("R3", "b", "n", 3)
	require.NoError(t, err)
	_, err = c.AddSwitch("S1", "b", "q", false)
	require.NoError(t, err)

	report, err := New(nil).Validate(c)
	require.NoError(t, err)
	assert.True(t, report.IsValid(), "errors: %v", report.Errors)
}

func TestValidate_ScaleHeuristics(t *testing.T) {
	c := domain.NewCircuit()
	_, err := c.AddSource("V1", "p", "n", 6)
	require.NoError(t, err)
	// 5 resistors on the same pair of nodes pushes both terminals past
	// the degree limit; 21+ components trips the count limit.
	for i := 0; i < 24; i++ {
		id := "R" + string(rune('A'+i))
		_, err = c.AddResistor(id, "p", "n", 3)
		require.NoError(t, err)
	}

	report, err := New(nil).Validate(c)
	require.NoError(t, err)

	var countWarn, degreeWarn bool
	for _, w := range report.Warnings {
		if containsAll(w, "components", "hard to follow") {
			countWarn = true
		}
		if containsAll(w, "connections", "hard to follow") {
			degreeWarn = true
		}
	}
	assert.True(t, countWarn, "component count warning")
	assert.True(t, degreeWarn, "node degree warning")
}

func TestValidate_SummaryOrdering(t *testing.T) {
	c := domain.NewCircuit()
	_, err := c.AddResistor("R1", "a", "b", 3)
	require.NoError(t, err)

	report, err := New(nil).Validate(c)
	require.NoError(t, err)

	summary := report.Summary()
	assert.Contains(t, summary, "1 error(s)")
	assert.Contains(t, summary, "circuit must contain a power source")
}

func TestValidate_NilCircuit(t *testing.T) {
	_, err := New(nil).Validate(nil)
	require.Error(t, err)
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
