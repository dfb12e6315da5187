// Package benchrun drives quadtree workload measurements for qtbench:
// a sequential load, box-query and nearest-probe phases over the loaded
// tree, and a concurrent churn phase with readers and writers sharing
// one handle.
package benchrun

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgSites    = "bench.sites"
	cfgCapacity = "bench.capacity"
	cfgQueries  = "bench.queries"
	cfgBoxFrac  = "bench.box_fraction"
	cfgSeed     = "bench.seed"
	cfgReaders  = "bench.readers"
	cfgWriters  = "bench.writers"
	cfgChurn    = "bench.churn"
	cfgVerbose  = "bench.verbose"
)

// Config collects the parameters of one benchmark run.
type Config struct {
	Sites    int
	Capacity int
	Queries  int
	BoxFrac  float64
	Seed     uint64
	Readers  int
	Writers  int
	Churn    time.Duration
	Verbose  bool
}

// RegisterFlags registers the benchmark flags with the provided
// command and binds them into viper.
func RegisterFlags(cmd *cobra.Command) {
	if !cmd.Flags().Parsed() {
		cmd.Flags().Int(cfgSites, 100_000, "Number of sites to load")
		cmd.Flags().Int(cfgCapacity, 16, "Per-leaf split threshold")
		cmd.Flags().Int(cfgQueries, 10_000, "Number of box queries and nearest probes")
		cmd.Flags().Float64(cfgBoxFrac, 0.1, "Query box edge as a fraction of the domain edge")
		cmd.Flags().Uint64(cfgSeed, 1, "PRNG seed")
		cmd.Flags().Int(cfgReaders, 4, "Concurrent readers during the churn phase")
		cmd.Flags().Int(cfgWriters, 2, "Concurrent writers during the churn phase")
		cmd.Flags().Duration(cfgChurn, 2*time.Second, "Length of the concurrent churn phase")
		cmd.Flags().Bool(cfgVerbose, false, "Log per-phase debug detail")
	}

	for _, v := range []string{
		cfgSites,
		cfgCapacity,
		cfgQueries,
		cfgBoxFrac,
		cfgSeed,
		cfgReaders,
		cfgWriters,
		cfgChurn,
		cfgVerbose,
	} {
		viper.BindPFlag(v, cmd.Flags().Lookup(v)) // nolint: errcheck
	}
}

// FromViper reads the benchmark configuration from viper.
func FromViper() Config {
	return Config{
		Sites:    viper.GetInt(cfgSites),
		Capacity: viper.GetInt(cfgCapacity),
		Queries:  viper.GetInt(cfgQueries),
		BoxFrac:  viper.GetFloat64(cfgBoxFrac),
		Seed:     viper.GetUint64(cfgSeed),
		Readers:  viper.GetInt(cfgReaders),
		Writers:  viper.GetInt(cfgWriters),
		Churn:    viper.GetDuration(cfgChurn),
		Verbose:  viper.GetBool(cfgVerbose),
	}
}
