package main

import (
	"context"

	"github.com/aretw0/hangman/internal/cli"
	"github.com/aretw0/hangman/internal/config"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Inspect the word store",
}

var wordsListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List the valid word/clue entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd)
		if err != nil {
			return err
		}
		return cli.ListWords(context.Background(), opts)
	},
}

var wordsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the Redis word list with the entries of a word file",
	Long: `Loads the word file (--from, or the configured words path), keeps the valid
entries and writes them to the Redis list in one transaction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd)
		if err != nil {
			return err
		}
		from, _ := cmd.Flags().GetString("from")
		if !cmd.Flags().Changed("store") {
			opts.Config.Store = config.StoreRedis
		}
		return cli.SeedWords(context.Background(), opts, from)
	},
}

func init() {
	wordsSeedCmd.Flags().String("from", "", "Word file to read (default: the configured words path)")
	wordsCmd.AddCommand(wordsSeedCmd)
	wordsCmd.AddCommand(wordsListCmd)
	rootCmd.AddCommand(wordsCmd)
}
