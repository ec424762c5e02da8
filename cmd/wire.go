package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	corpusfile "github.com/bnema/verbtrainer/internal/adapters/corpus/file"
	"github.com/bnema/verbtrainer/internal/adapters/secrets/chain"
	filestore "github.com/bnema/verbtrainer/internal/adapters/secrets/file"
	passstore "github.com/bnema/verbtrainer/internal/adapters/secrets/pass"
	"github.com/bnema/verbtrainer/internal/adapters/session/memory"
	"github.com/bnema/verbtrainer/internal/adapters/telegram"
	"github.com/bnema/verbtrainer/internal/application"
	"github.com/bnema/verbtrainer/internal/config"
	"github.com/bnema/verbtrainer/internal/domain"
	"github.com/bnema/verbtrainer/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	cfg        config.Config
	logger     *slog.Logger
	catalog    domain.Catalog
	clock      ports.Clock
	random     ports.Random
	httpClient *http.Client
}

// appLoader wires the app once the persistent flags are parsed.
type appLoader func(cmd *cobra.Command) (*app, error)

func newAppLoader(configPath *string) appLoader {
	return func(cmd *cobra.Command) (*app, error) {
		return wireApp(*configPath, cmd.ErrOrStderr())
	}
}

func wireApp(configPath string, logOutput io.Writer) (*app, error) {
	cfg, err := config.Load(viper.New(), configPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return &app{
		cfg:        cfg,
		logger:     newLogger(logOutput, cfg.Log),
		catalog:    domain.DefaultCatalog(),
		clock:      ports.SystemClock{},
		random:     ports.SystemRandom{},
		httpClient: http.DefaultClient,
	}, nil
}

func (a *app) corpusSource() (ports.CorpusSource, error) {
	if a.cfg.Corpus.Verbs == "" {
		return corpusfile.Default(), nil
	}

	source, err := corpusfile.NewSource(a.cfg.Corpus.Verbs, a.cfg.Corpus.Translations)
	if err != nil {
		return nil, fmt.Errorf("wire corpus source: %w", err)
	}
	return source, nil
}

func (a *app) loadCorpus(ctx context.Context) (*domain.Corpus, error) {
	source, err := a.corpusSource()
	if err != nil {
		return nil, err
	}

	corpus, err := corpusfile.LoadCorpus(ctx, source, a.catalog)
	if err != nil {
		return nil, fmt.Errorf("load verb corpus: %w", err)
	}
	return corpus, nil
}

func (a *app) newPracticeService(corpus *domain.Corpus) *application.PracticeService {
	store := memory.NewStore(a.clock)
	selector := application.NewChallengeSelector(a.random, a.clock)
	return application.NewPracticeService(corpus, store, selector, a.clock, a.logger)
}

func (a *app) secretStore() (ports.SecretStore, error) {
	dir := a.cfg.Secrets.Dir
	if dir == "" {
		var err error
		dir, err = config.SecretsDir()
		if err != nil {
			return nil, err
		}
	}

	switch a.cfg.Secrets.Backend {
	case config.SecretsPass:
		return passstore.NewStore(passstore.DefaultPrefix), nil
	case config.SecretsFile:
		return filestore.NewStore(dir), nil
	default:
		return chain.NewPassFirstWithFileFallback(dir)
	}
}

// botToken prefers an inline token and otherwise reads telegram.token_ref
// from the secret store.
func (a *app) botToken(ctx context.Context) (string, error) {
	if a.cfg.Telegram.Token != "" {
		return a.cfg.Telegram.Token, nil
	}

	store, err := a.secretStore()
	if err != nil {
		return "", fmt.Errorf("wire secret store: %w", err)
	}
	token, err := store.Get(ctx, a.cfg.Telegram.TokenRef)
	if errors.Is(err, ports.ErrSecretNotFound) {
		return "", fmt.Errorf("%w: no secret stored under %q", config.ErrMissingToken, a.cfg.Telegram.TokenRef)
	}
	if err != nil {
		return "", fmt.Errorf("read bot token: %w", err)
	}
	return token, nil
}

func (a *app) newTelegramClient(ctx context.Context) (*telegram.Client, error) {
	if err := a.cfg.ValidateTelegram(); err != nil {
		return nil, err
	}
	token, err := a.botToken(ctx)
	if err != nil {
		return nil, err
	}

	client, err := telegram.NewClient(telegram.ClientConfig{
		APIURL:     a.cfg.Telegram.APIURL,
		Token:      token,
		HTTPClient: a.httpClient,
		Logger:     a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("wire telegram client: %w", err)
	}
	return client, nil
}
