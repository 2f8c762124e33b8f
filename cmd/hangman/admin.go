package main

import (
	"github.com/aretw0/hangman/internal/cli"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Add word/clue pairs to the word store",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd)
		if err != nil {
			return err
		}
		opts.JSON, _ = cmd.Flags().GetBool("json")
		return cli.Execute(opts, cli.RunAdmin)
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
}
