package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pubsummary/pkg/contracts"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			info := contracts.GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "summarize version %s\n", info.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", info.GitCommit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", info.BuildTime)
			fmt.Fprintf(cmd.OutOrStdout(), "  go:     %s %s/%s\n", info.GoVersion, info.OS, info.Architecture)
		},
	}
}
