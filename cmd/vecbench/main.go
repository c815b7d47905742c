// vecbench exercises the paged vector against a plain slice baseline across
// the workloads that matter for a paged layout: sequential append, random
// access, iteration and erase churn.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	elems    int
	pageSize int
	runs     int
)

var rootCmd = &cobra.Command{
	Use:   "vecbench",
	Short: "Benchmark the paged vector against a slice baseline",
	Long: `vecbench runs timed workloads against vec.Vector and an equivalent
plain slice, reporting wall time per run. It is a driver for eyeballing
relative cost, not a substitute for go test -bench.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().IntVar(&elems, "elems", 1_000_000, "elements per run")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page", 1024, "vector page size")
	rootCmd.PersistentFlags().IntVar(&runs, "runs", 3, "timed runs per workload")

	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(accessCmd)
	rootCmd.AddCommand(iterateCmd)
	rootCmd.AddCommand(churnCmd)
	rootCmd.AddCommand(allCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
