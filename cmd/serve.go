package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/verbtrainer/internal/adapters/telegram"
	"github.com/bnema/verbtrainer/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(load appLoader) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		Long:  "Runs the bot by long polling (default) or as a webhook HTTP server, until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}
			if mode != "" {
				app.cfg.Telegram.Mode = mode
			}
			if app.cfg.Telegram.Mode != config.ModePolling && app.cfg.Telegram.Mode != config.ModeWebhook {
				return fmt.Errorf("unknown mode %q", app.cfg.Telegram.Mode)
			}

			client, err := app.newTelegramClient(cmd.Context())
			if err != nil {
				return err
			}
			corpus, err := app.loadCorpus(cmd.Context())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			me, err := client.GetMe(ctx)
			if err != nil {
				return fmt.Errorf("verify bot token: %w", err)
			}

			bot := telegram.NewBot(app.newPracticeService(corpus), client, telegram.BotConfig{
				RatePerSecond: app.cfg.Telegram.RatePerSecond,
				Logger:        app.logger,
			})
			defer func() { _ = bot.Close() }()

			app.logger.Info("starting bot",
				"username", me.Username,
				"mode", app.cfg.Telegram.Mode,
				"verbs", corpus.Len())

			if app.cfg.Telegram.Mode == config.ModeWebhook {
				return serveWebhook(ctx, app, client, bot)
			}

			poller := telegram.NewPoller(client, bot, telegram.PollerConfig{
				Timeout: app.cfg.Telegram.PollTimeout,
				Logger:  app.logger,
			})
			if err := poller.Run(ctx); err != nil {
				return err
			}
			app.logger.Info("bot stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "polling or webhook (overrides telegram.mode)")

	return cmd
}

func serveWebhook(ctx context.Context, app *app, client *telegram.Client, bot *telegram.Bot) error {
	if app.cfg.Telegram.WebhookURL != "" {
		if err := client.SetWebhook(ctx, telegram.SetWebhookRequest{
			URL:            app.cfg.Telegram.WebhookURL,
			SecretToken:    app.cfg.Telegram.WebhookSecret,
			AllowedUpdates: telegram.AllowedUpdates,
		}); err != nil {
			return fmt.Errorf("register webhook: %w", err)
		}
		app.logger.Info("webhook registered", "url", app.cfg.Telegram.WebhookURL)
	}

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr: app.cfg.Telegram.Listen,
		Handler: telegram.NewWebhookRouter(bot, telegram.WebhookConfig{
			Secret: app.cfg.Telegram.WebhookSecret,
			Logger: app.logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("listening for webhook updates", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("webhook server: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("received signal, shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown webhook server: %w", err)
	}
	app.logger.Info("bot stopped")
	return nil
}
