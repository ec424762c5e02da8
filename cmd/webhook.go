package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/verbtrainer/internal/adapters/telegram"
	"github.com/spf13/cobra"
)

func newWebhookCmd(load appLoader) *cobra.Command {
	webhookCmd := &cobra.Command{
		Use:   "webhook",
		Short: "Manage the Telegram webhook registration",
	}

	webhookCmd.AddCommand(
		newWebhookSetCmd(load),
		newWebhookInfoCmd(load),
		newWebhookDeleteCmd(load),
	)

	return webhookCmd
}

func newWebhookSetCmd(load appLoader) *cobra.Command {
	var webhookURL string
	var dropPending bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Point Telegram at this bot's webhook URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}
			client, err := app.newTelegramClient(cmd.Context())
			if err != nil {
				return err
			}

			target := strings.TrimSpace(webhookURL)
			if target == "" {
				target = app.cfg.Telegram.WebhookURL
			}
			if target == "" {
				return errors.New("webhook url is required (--url or telegram.webhook_url)")
			}

			req := telegram.SetWebhookRequest{
				URL:                target,
				SecretToken:        app.cfg.Telegram.WebhookSecret,
				AllowedUpdates:     telegram.AllowedUpdates,
				DropPendingUpdates: dropPending,
			}
			err = runAPICallSpinner(cmd.Context(), cmd.ErrOrStderr(), "Registering webhook...", func(ctx context.Context) error {
				return client.SetWebhook(ctx, req)
			})
			if err != nil {
				return fmt.Errorf("set webhook: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "webhook set: %s\n", target)
			return err
		},
	}
	cmd.Flags().StringVar(&webhookURL, "url", "", "public HTTPS URL of the webhook endpoint")
	cmd.Flags().BoolVar(&dropPending, "drop-pending", false, "discard updates queued while no webhook was set")

	return cmd
}

func newWebhookInfoCmd(load appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the current webhook registration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}
			client, err := app.newTelegramClient(cmd.Context())
			if err != nil {
				return err
			}

			var info telegram.WebhookInfo
			err = runAPICallSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching webhook info...", func(ctx context.Context) error {
				var callErr error
				info, callErr = client.GetWebhookInfo(ctx)
				return callErr
			})
			if err != nil {
				return fmt.Errorf("get webhook info: %w", err)
			}

			return writeWebhookInfo(cmd, info)
		},
	}
}

func writeWebhookInfo(cmd *cobra.Command, info telegram.WebhookInfo) error {
	url := info.URL
	if url == "" {
		url = "(none, polling mode)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "url: %s\n", url)
	fmt.Fprintf(&b, "pending updates: %d\n", info.PendingUpdateCount)
	if info.MaxConnections > 0 {
		fmt.Fprintf(&b, "max connections: %d\n", info.MaxConnections)
	}
	if info.LastErrorMessage != "" {
		at := time.Unix(info.LastErrorDate, 0).UTC().Format(time.RFC3339)
		fmt.Fprintf(&b, "last error: %s (%s)\n", info.LastErrorMessage, at)
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}

func newWebhookDeleteCmd(load appLoader) *cobra.Command {
	var dropPending bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the webhook so the bot can poll",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}
			client, err := app.newTelegramClient(cmd.Context())
			if err != nil {
				return err
			}

			err = runAPICallSpinner(cmd.Context(), cmd.ErrOrStderr(), "Removing webhook...", func(ctx context.Context) error {
				return client.DeleteWebhook(ctx, dropPending)
			})
			if err != nil {
				return fmt.Errorf("delete webhook: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "webhook deleted")
			return err
		},
	}
	cmd.Flags().BoolVar(&dropPending, "drop-pending", false, "discard queued updates")

	return cmd
}
