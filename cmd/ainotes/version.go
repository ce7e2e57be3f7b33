package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ainotes/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of ainotes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ainotes %s\n", app.BuildVersion())
		},
	}
}
