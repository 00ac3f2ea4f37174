package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vartree/shape"
)

var depthCmd = &cobra.Command{
	Use:   "depth [flags]",
	Short: "Compare balanced and chain tree depth across set sizes",
	Long:  `Depth builds both tree shapes for every set size up to --max and prints their depths side by side`,
	Args:  cobra.NoArgs,
	RunE:  runDepth,
}

func init() {
	depthCmd.Flags().Int("max", 64, "largest set size to build")
}

type depthRow struct {
	n        int
	balanced int
	chain    int
}

func runDepth(cmd *cobra.Command, _ []string) error {
	maxN, err := cmd.Flags().GetInt("max")
	if err != nil {
		return fmt.Errorf("failed to get max flag: %w", err)
	}
	if maxN < 1 {
		return fmt.Errorf("--max must be at least 1, got %d", maxN)
	}

	rows := make([]depthRow, maxN)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for n := 1; n <= maxN; n++ {
		n := n
		g.Go(func() error {
			balanced, err := shape.Build(n)
			if err != nil {
				return err
			}
			chain, err := shape.BuildChain(n)
			if err != nil {
				return err
			}
			rows[n-1] = depthRow{n: n, balanced: balanced.Depth(), chain: chain.Depth()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	header := color.New(color.Bold)
	if !useColor(cmd, os.Stdout) {
		header.DisableColor()
	}
	header.Printf("%8s %10s %8s\n", "N", "balanced", "chain")
	for _, r := range rows {
		fmt.Printf("%8d %10d %8d\n", r.n, r.balanced, r.chain)
	}
	return nil
}
