package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	jsonFile bool
)

var rootCmd = &cobra.Command{
	Use:   "circuitctl",
	Short: "DC circuit validator and solver",
	Long: `Validate and solve DC resistive circuits from netlist or JSON files.

Examples:
  circuitctl check series.cir                 # validate a netlist
  circuitctl solve series.cir                 # solve and print readings
  circuitctl solve --json circuit.json        # same, from the API's JSON format
  circuitctl solve --gate series.cir          # refuse to solve an invalid circuit`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonFile, "json", false, "input is the API's JSON circuit format instead of a netlist")
}
