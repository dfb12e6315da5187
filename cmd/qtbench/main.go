// qtbench runs the quadtree workload benchmark: sequential load, box
// queries, nearest probes and a concurrent churn phase.
//
// Run: go run ./cmd/qtbench/ --bench.sites 1000000
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wesen/quadkit/internal/benchrun"
)

var rootCmd = &cobra.Command{
	Use:          "qtbench",
	Short:        "Benchmark quadtree load, query, nearest and churn phases",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(os.Stderr)
		cfg := benchrun.FromViper()
		if cfg.Verbose {
			logger.SetLevel(log.DebugLevel)
		}

		r := benchrun.NewRunner(cfg, logger)
		results, err := r.Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("run %s\n", r.ID())
		for _, res := range results {
			fmt.Println(res)
		}
		return nil
	},
}

func init() {
	benchrun.RegisterFlags(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
