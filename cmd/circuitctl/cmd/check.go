package cmd

import (
	"fmt"
	"os"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/service"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <circuit-file>",
	Short: "Validate a circuit and print the report",
	Long: `Run the topology checks over a circuit file and print the report.
Exits non-zero when the circuit has validation errors.

Examples:
  circuitctl check series.cir
  circuitctl check --json circuit.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(args[0])
	if err != nil {
		return err
	}

	svc := service.NewCircuitService(nil, nil)
	report, err := svc.Validate(spec)
	if err != nil {
		return err
	}

	fmt.Print(report.Summary())
	if !report.IsValid() {
		os.Exit(1)
	}
	return nil
}
