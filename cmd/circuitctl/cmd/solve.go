package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/service"
	"github.com/spf13/cobra"
)

var gate bool

var solveCmd = &cobra.Command{
	Use:   "solve <circuit-file>",
	Short: "Solve a circuit and print node voltages and component currents",
	Long: `Validate and solve a circuit file, then print the solved readings.

Examples:
  circuitctl solve series.cir
  circuitctl solve --gate parallel.cir     # skip solving when validation errors
  circuitctl solve -v --json circuit.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().BoolVar(&gate, "gate", false,
		"refuse to solve a circuit with validation errors")
}

func runSolve(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(args[0])
	if err != nil {
		return err
	}

	svc := service.NewCircuitService(nil, nil)
	result, err := svc.Analyze(context.Background(), spec, "cli", gate)
	if err != nil {
		return err
	}

	if verbose || !result.Report.IsValid() || len(result.Report.Warnings) > 0 {
		fmt.Print(result.Summary)
	}
	if result.Status == domain.StatusInvalid {
		fmt.Println("circuit is invalid; not solved (drop --gate to solve anyway)")
		os.Exit(1)
	}

	if result.Solution != nil {
		for _, d := range result.Solution.Diagnostics {
			fmt.Printf("note: %s\n", d)
		}
		if verbose {
			fmt.Printf("converged=%v after %d pass(es)\n",
				result.Solution.Converged, result.Solution.Iterations)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NODE\tVOLTAGE")
	for _, n := range result.Nodes {
		fmt.Fprintf(w, "%s\t%.3fV\n", n.ID, n.Voltage)
	}
	fmt.Fprintln(w, "\nCOMPONENT\tKIND\tCURRENT\tDROP")
	for _, comp := range result.Components {
		fmt.Fprintf(w, "%s\t%s\t%.3fA\t%.3fV\n", comp.ID, comp.Kind, comp.Current, comp.VoltageDrop)
	}
	return w.Flush()
}
