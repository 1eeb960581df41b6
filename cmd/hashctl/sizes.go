package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/hashkit/ghash"
)

func init() {
	rootCmd.AddCommand(newSizesCmd())
}

func newSizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "Print the bucket-count sequence",
		Long: `The sizes command prints every bucket count a table can take, with the
entry counts at which a table of that size grows and shrinks.

Example:
  hashctl sizes
  hashctl sizes --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSizes()
		},
	}
}

func runSizes() error {
	sizes := ghash.Sizes()
	if jsonOut {
		return printJSON(sizes)
	}

	printInfo("%5s  %12s  %12s  %12s\n", "index", "buckets", "grow above", "shrink below")
	for _, s := range sizes {
		printInfo("%5d  %12s  %12s  %12s\n", s.Index,
			formatNumber(int64(s.Buckets)), formatNumber(int64(s.GrowLimit)), formatNumber(int64(s.ShrinkLimit)))
	}
	return nil
}
