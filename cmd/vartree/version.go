package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vartree/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Printf("vartree %s\n", version.Version)
	if show, _ := cmd.Flags().GetBool("hash"); show && version.GitCommit != "" {
		fmt.Printf("commit: %s\n", version.GitCommit)
	}
	if show, _ := cmd.Flags().GetBool("date"); show && version.BuildDate != "" {
		fmt.Printf("built:  %s\n", version.BuildDate)
	}
	return nil
}
