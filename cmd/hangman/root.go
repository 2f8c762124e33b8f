package main

import (
	"fmt"
	"os"

	"github.com/aretw0/hangman/internal/cli"
	"github.com/aretw0/hangman/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman is a console word-guessing game",
	Long: `Guess the hidden word one letter at a time before the gallows is complete.
Words and clues come from a comma-delimited file, a built-in list or Redis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default hangman.yaml if present)")
	rootCmd.PersistentFlags().String("words", "", "Path of the word file (file store)")
	rootCmd.PersistentFlags().String("store", "", "Word store: file, memory or redis")
	rootCmd.PersistentFlags().String("redis-url", "", "Redis URL (redis store)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

// loadConfig reads the config file and environment, then applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("words") {
		cfg.Words, _ = flags.GetString("words")
	}
	if flags.Changed("store") {
		cfg.Store, _ = flags.GetString("store")
	}
	if flags.Changed("redis-url") {
		cfg.RedisURL, _ = flags.GetString("redis-url")
	}
	return cfg, nil
}

func runOptions(cmd *cobra.Command) (cli.RunOptions, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cli.RunOptions{}, err
	}
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.RunOptions{
		Config: cfg,
		Debug:  debug,
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}, nil
}
