package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = "verbtrainer"
	envPrefix  = "VERBTRAINER"

	ModePolling = "polling"
	ModeWebhook = "webhook"

	DefaultAPIURL      = "https://api.telegram.org"
	DefaultListen      = ":8080"
	DefaultPollTimeout = 30 * time.Second
	DefaultRatePerSec  = 2

	SecretsAuto = "auto"
	SecretsPass = "pass"
	SecretsFile = "file"
)

// DefaultTokenRef is the secret store key used by `verbtrainer token set`.
const DefaultTokenRef = "telegram/token"

var ErrMissingToken = errors.New("telegram bot token is not configured (set TELEGRAM_BOT_TOKEN, telegram.token or telegram.token_ref)")

type Config struct {
	Telegram TelegramConfig
	Corpus   CorpusConfig
	Secrets  SecretsConfig
	Log      LogConfig
	// File is the config file that was read, empty when none was found.
	File string
}

type TelegramConfig struct {
	Token         string
	TokenRef      string // secret store key, read when Token is empty
	APIURL        string
	Mode          string
	WebhookURL    string
	WebhookSecret string
	Listen        string
	PollTimeout   time.Duration
	RatePerSecond int
}

// CorpusConfig points at verb and translation files. Both empty means the
// bundled corpus.
type CorpusConfig struct {
	Verbs        string
	Translations string
}

// SecretsConfig selects where telegram.token_ref is looked up. Dir defaults
// to SecretsDir().
type SecretsConfig struct {
	Backend string
	Dir     string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads config.toml and the environment into a Config. An explicit path
// must exist; otherwise a missing file just leaves the defaults in place.
func Load(v *viper.Viper, explicitPath string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("telegram.token", envPrefix+"_TELEGRAM_TOKEN", "TELEGRAM_BOT_TOKEN"); err != nil {
		return Config{}, fmt.Errorf("bind token env: %w", err)
	}

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Telegram: TelegramConfig{
			Token:         strings.TrimSpace(v.GetString("telegram.token")),
			TokenRef:      strings.TrimSpace(v.GetString("telegram.token_ref")),
			APIURL:        strings.TrimRight(v.GetString("telegram.api_url"), "/"),
			Mode:          strings.ToLower(strings.TrimSpace(v.GetString("telegram.mode"))),
			WebhookURL:    v.GetString("telegram.webhook_url"),
			WebhookSecret: v.GetString("telegram.webhook_secret"),
			Listen:        v.GetString("telegram.listen"),
			PollTimeout:   v.GetDuration("telegram.poll_timeout"),
			RatePerSecond: v.GetInt("telegram.rate_per_second"),
		},
		Corpus: CorpusConfig{
			Verbs:        v.GetString("corpus.verbs"),
			Translations: v.GetString("corpus.translations"),
		},
		Secrets: SecretsConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString("secrets.backend"))),
			Dir:     strings.TrimSpace(v.GetString("secrets.dir")),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		File: v.ConfigFileUsed(),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ValidateTelegram checks what serving or calling the Bot API needs on top of
// what Load already accepts.
func (c Config) ValidateTelegram() error {
	if c.Telegram.Token == "" && c.Telegram.TokenRef == "" {
		return ErrMissingToken
	}
	if c.Telegram.Mode == ModeWebhook && c.Telegram.Listen == "" {
		return errors.New("telegram.listen is required in webhook mode")
	}

	return nil
}

func (c Config) validate() error {
	var problems []error

	switch c.Telegram.Mode {
	case ModePolling, ModeWebhook:
	default:
		problems = append(problems, fmt.Errorf("telegram.mode must be %q or %q, got %q", ModePolling, ModeWebhook, c.Telegram.Mode))
	}
	if c.Telegram.PollTimeout < 0 {
		problems = append(problems, errors.New("telegram.poll_timeout must not be negative"))
	}
	if c.Telegram.RatePerSecond < 0 {
		problems = append(problems, errors.New("telegram.rate_per_second must not be negative"))
	}
	if c.Corpus.Translations != "" && c.Corpus.Verbs == "" {
		problems = append(problems, errors.New("corpus.translations requires corpus.verbs"))
	}

	switch c.Secrets.Backend {
	case SecretsAuto, SecretsPass, SecretsFile:
	default:
		problems = append(problems, fmt.Errorf("secrets.backend must be %q, %q or %q, got %q", SecretsAuto, SecretsPass, SecretsFile, c.Secrets.Backend))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		problems = append(problems, fmt.Errorf("log.format must be \"text\" or \"json\", got %q", c.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(problems...))
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.token_ref", "")
	v.SetDefault("telegram.api_url", DefaultAPIURL)
	v.SetDefault("telegram.mode", ModePolling)
	v.SetDefault("telegram.webhook_url", "")
	v.SetDefault("telegram.webhook_secret", "")
	v.SetDefault("telegram.listen", DefaultListen)
	v.SetDefault("telegram.poll_timeout", DefaultPollTimeout)
	v.SetDefault("telegram.rate_per_second", DefaultRatePerSec)
	v.SetDefault("corpus.verbs", "")
	v.SetDefault("corpus.translations", "")
	v.SetDefault("secrets.backend", SecretsAuto)
	v.SetDefault("secrets.dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// SecretsDir is where the file secret store keeps entries when pass is not
// available.
func SecretsDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configDir, "secrets"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", configDir, "secrets"), nil
}

func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, configDir))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", configDir))
	}
	return dirs
}
