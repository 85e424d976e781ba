package main

import (
	"os"

	"github.com/spf13/cobra"

	"IndicatorScope/internal/shell"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the available analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return shell.WriteKinds(os.Stdout)
	},
}
