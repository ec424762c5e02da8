package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/verbtrainer/internal/config"
	"github.com/spf13/cobra"
)

func newTokenCmd(load appLoader) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Keep the bot token in pass or the secrets directory",
	}
	cmd.PersistentFlags().StringVar(&ref, "ref", "", "secret key (default telegram.token_ref or "+config.DefaultTokenRef+")")

	cmd.AddCommand(
		newTokenSetCmd(load, &ref),
		newTokenDeleteCmd(load, &ref),
	)

	return cmd
}

func tokenRef(app *app, flagValue string) string {
	if ref := strings.TrimSpace(flagValue); ref != "" {
		return ref
	}
	if app.cfg.Telegram.TokenRef != "" {
		return app.cfg.Telegram.TokenRef
	}
	return config.DefaultTokenRef
}

func newTokenSetCmd(load appLoader, ref *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Read a bot token from stdin and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}

			token, err := readToken(cmd)
			if err != nil {
				return err
			}

			store, err := app.secretStore()
			if err != nil {
				return fmt.Errorf("wire secret store: %w", err)
			}
			key := tokenRef(app, *ref)
			if err := store.Put(cmd.Context(), key, token); err != nil {
				return fmt.Errorf("store bot token: %w", err)
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "token stored under %s\n", key); err != nil {
				return err
			}
			if app.cfg.Telegram.TokenRef != key {
				_, err = fmt.Fprintf(out, "set telegram.token_ref = %q to use it\n", key)
			}
			return err
		},
	}
}

func readToken(cmd *cobra.Command) (string, error) {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		return "", errors.New("no token on stdin")
	}

	token := strings.TrimSpace(scanner.Text())
	if token == "" {
		return "", errors.New("no token on stdin")
	}
	return token, nil
}

func newTokenDeleteCmd(load appLoader, ref *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove the stored bot token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}

			store, err := app.secretStore()
			if err != nil {
				return fmt.Errorf("wire secret store: %w", err)
			}
			key := tokenRef(app, *ref)
			if err := store.Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("delete bot token: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "token removed from %s\n", key)
			return err
		},
	}
}
