package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Sentiment backends.
const (
	SentimentHTTP = "http"
	SentimentNone = "none"
)

type Grammar struct {
	URL      string `mapstructure:"url" yaml:"url"`
	Language string `mapstructure:"language" yaml:"language"`
}

type Sentiment struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	URL     string `mapstructure:"url" yaml:"url"`
}

type Embedding struct {
	URL   string `mapstructure:"url" yaml:"url"`
	Model string `mapstructure:"model" yaml:"model"`
}

type Services struct {
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Grammar   Grammar       `mapstructure:"grammar" yaml:"grammar"`
	Sentiment Sentiment     `mapstructure:"sentiment" yaml:"sentiment"`
	Embedding Embedding     `mapstructure:"embedding" yaml:"embedding"`
}

type Root struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`
	Server struct {
		Addr         string `mapstructure:"addr" yaml:"addr"`
		MaxBodyBytes int64  `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
	} `mapstructure:"server" yaml:"server"`
	Services Services `mapstructure:"services" yaml:"services"`
	Watch    struct {
		Workers   int    `mapstructure:"workers" yaml:"workers"`
		Extension string `mapstructure:"extension" yaml:"extension"`
	} `mapstructure:"watch" yaml:"watch"`

	// File is the config file that was read, empty when running on
	// defaults and environment only.
	File string `mapstructure:"-" yaml:"-"`
}

// EnvPrefix prefixes every environment override, e.g.
// SPEECHSCORE_SERVICES_GRAMMAR_URL.
const EnvPrefix = "SPEECHSCORE"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("services.timeout", 60*time.Second)
	v.SetDefault("services.grammar.url", "")
	v.SetDefault("services.grammar.language", "en-US")
	v.SetDefault("services.sentiment.backend", SentimentHTTP)
	v.SetDefault("services.sentiment.url", "")
	v.SetDefault("services.embedding.url", "")
	v.SetDefault("services.embedding.model", "all-MiniLM-L6-v2")
	v.SetDefault("watch.workers", 2)
	v.SetDefault("watch.extension", ".txt")
}

// SearchPaths lists the directories probed for config.yaml when no explicit
// file is given. CONFIG_ENV selects the per-environment directory.
func SearchPaths() []string {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return []string{
		filepath.Join("config", env),
		".",
		filepath.Join(xdg.ConfigHome, "speechscore"),
	}
}

// Load reads configuration from path, or from the first config.yaml found
// in SearchPaths when path is empty. A missing file is not an error in the
// search case; defaults and environment overrides still apply.
func Load(path string) (*Root, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		for _, p := range SearchPaths() {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c *Root) Validate() error {
	if c.Server.Addr == "" {
		return ErrNoServerAddr
	}
	if c.Services.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	switch c.Services.Sentiment.Backend {
	case SentimentHTTP, SentimentNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSentimentBackend, c.Services.Sentiment.Backend)
	}
	if c.Watch.Workers <= 0 {
		return ErrInvalidWorkers
	}
	return nil
}
