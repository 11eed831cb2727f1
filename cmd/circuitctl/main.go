package main

import "github.com/CircuitLab-25-26J-339/circuit-sim-backend/cmd/circuitctl/cmd"

func main() {
	cmd.Execute()
}
