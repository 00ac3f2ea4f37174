package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vartree/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "vartree",
	Short: "Variant storage layout inspector and toolchain",
	Long:  `vartree builds balanced storage trees for closed alternative sets and inspects their layout`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(depthCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
