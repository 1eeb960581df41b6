package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var inspectCfg workloadConfig

func init() {
	cmd := newInspectCmd()
	cmd.Flags().IntVar(&inspectCfg.N, "n", 10_000, "Number of keys")
	cmd.Flags().StringVar(&inspectCfg.Keys, "keys", "str", "Key kind: str or int")
	cmd.Flags().StringVar(&inspectCfg.Hasher, "hasher", "", "Hasher (see bench)")
	rootCmd.AddCommand(cmd)
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show how keys spread across buckets",
		Long: `The inspect command fills a table with --n keys and prints its chain-length
histogram, load factor and pool usage.

Example:
  hashctl inspect --n 50000
  hashctl inspect --keys int --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(inspectCfg)
		},
	}
}

func runInspect(cfg workloadConfig) error {
	res, err := runWorkload(cfg, true)
	if err != nil {
		return err
	}
	st := res.Table

	if jsonOut {
		return printJSON(st)
	}

	printInfo("\nTable: %s\n", st.Tag)
	printInfo("%s\n\n", strings.Repeat("=", 40))
	printInfo("  Entries:     %s\n", formatNumber(int64(st.Len)))
	printInfo("  Buckets:     %s (size %d, grow above %d)\n", formatNumber(int64(st.Buckets)), st.SizeIndex, st.GrowLimit)
	printInfo("  Used:        %s (%.1f%%)\n", formatNumber(int64(st.UsedBuckets)), percent(st.UsedBuckets, st.Buckets))
	printInfo("  Load factor: %.3f\n", st.LoadFactor)
	printInfo("  Pool:        %s\n\n", st.Pool)

	printInfo("Chain lengths:\n")
	for n, count := range st.ChainHistogram {
		if count == 0 {
			continue
		}
		bar := strings.Repeat("#", int(percent(count, st.Buckets)/2))
		printInfo("  %3d: %10s %s\n", n, formatNumber(int64(count)), bar)
	}
	return nil
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}
