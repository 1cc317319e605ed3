package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varex83/acs-lab-1/internal/report"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the toolchain the binary was built with",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), report.SystemInfo())
		},
	}
}
