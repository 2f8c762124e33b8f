package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/hangman"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hangman",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hangman version %s\n", strings.TrimSpace(hangman.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
