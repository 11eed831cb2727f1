package cmd

import (
	"fmt"
	"os"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/ingest"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/netlist"
)

// loadSpec reads a circuit from a netlist file, or from the API's JSON
// format when --json is set.
func loadSpec(filename string) (*ingest.CircuitSpec, error) {
	if jsonFile {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filename, err)
		}
		return ingest.ParseJSON(data)
	}

	parser, err := netlist.NewParser()
	if err != nil {
		return nil, err
	}
	file, err := parser.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	return netlist.ToSpec(file)
}
