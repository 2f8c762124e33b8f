package main

import (
	"github.com/aretw0/hangman/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play rounds until you choose to exit",
	Long: `Starts an interactive game. Each round picks a random word; you lose it after
max-wrong wrong guesses. With --admin a menu lets you add words before playing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		opts.JSON, _ = flags.GetBool("json")
		if noClue, _ := flags.GetBool("no-clue"); noClue {
			opts.Config.ShowClue = false
		}
		if admin, _ := flags.GetBool("admin"); admin {
			opts.Config.EnableAdmin = true
		}
		if flags.Changed("max-wrong") {
			opts.Config.MaxWrong, _ = flags.GetInt("max-wrong")
		}
		if flags.Changed("seed") {
			opts.Config.Seed, _ = flags.GetInt64("seed")
		}
		if flags.Changed("metrics-addr") {
			opts.Config.MetricsAddr, _ = flags.GetString("metrics-addr")
		}

		return cli.Execute(opts, cli.RunPlay)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	for _, c := range []*cobra.Command{playCmd, rootCmd} {
		c.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
		c.Flags().Bool("no-clue", false, "Do not show the clue of each word")
		c.Flags().Bool("admin", false, "Show the mode menu with word management")
		c.Flags().Int("max-wrong", 0, "Wrong guesses allowed per round (default 3)")
		c.Flags().Int64("seed", 0, "Seed for the word picker (0 = time based)")
		c.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	}

	// 'play' is the default when no command is given.
	rootCmd.RunE = playCmd.RunE
}
