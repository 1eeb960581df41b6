package main

import (
	"github.com/spf13/cobra"
)

var benchCfg workloadConfig

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchCfg.N, "n", 100_000, "Number of keys")
	cmd.Flags().StringVar(&benchCfg.Keys, "keys", "str", "Key kind: str or int")
	cmd.Flags().StringVar(&benchCfg.Hasher, "hasher", "", "Hasher: djb, murmur, xx, fold, fnvfold (str); wang, murmur (int)")
	cmd.Flags().BoolVar(&benchCfg.Shrink, "shrink", false, "Allow the table to shrink during removal")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time an insert, lookup and remove workload",
		Long: `The bench command fills a table with --n keys, looks each one up, then
removes them all, and reports the time per operation along with the table's
final shape and the peak memory charged to it.

Example:
  hashctl bench --n 1000000
  hashctl bench --keys int --hasher murmur --shrink
  hashctl bench --hasher xx --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(benchCfg)
		},
	}
}

func runBench(cfg workloadConfig) error {
	printVerbose("Running %d %s keys\n", cfg.N, cfg.Keys)

	res, err := runWorkload(cfg, false)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("Workload: %s keys, hasher %s, n=%s\n", res.Keys, hasherName(res.Hasher), formatNumber(int64(res.N)))
	printInfo("  insert: %v (%s/op)\n", res.Insert, perOp(res.Insert, res.N))
	printInfo("  lookup: %v (%s/op)\n", res.Lookup, perOp(res.Lookup, res.N))
	printInfo("  remove: %v (%s/op)\n", res.Remove, perOp(res.Remove, res.N))
	printInfo("  peak memory: %s\n", formatBytes(res.PeakBytes))
	printInfo("  final table: %s\n", res.Table)
	printInfo("  grows=%d shrinks=%d\n", res.Table.Grows, res.Table.Shrinks)
	if res.Misses > 0 {
		printInfo("  misses: %d\n", res.Misses)
	}
	return nil
}

func hasherName(name string) string {
	if name == "" {
		return "default"
	}
	return name
}
