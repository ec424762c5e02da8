package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "verbtrainer",
		Short:         "Spanish verb conjugation trainer",
		Long:          "verbtrainer quizzes Spanish verb conjugations by tense group, in the terminal (play) or as a Telegram bot (serve).",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/verbtrainer/config.toml)")

	load := newAppLoader(&configPath)

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(load),
		newServeCmd(load),
		newWebhookCmd(load),
		newTokenCmd(load),
		newCorpusCmd(load),
	)

	return rootCmd
}
