package configs

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Firestore struct {
		ProjectID string `koanf:"project_id"`
		// Service-account credential: inline JSON takes precedence over a
		// file path; with neither, Application Default Credentials apply.
		CredentialsJSON string `koanf:"credentials_json"`
		CredentialsFile string `koanf:"credentials_file"`
	} `koanf:"firestore"`

	Telegram struct {
		BotToken string        `koanf:"bot_token"`
		ChatID   string        `koanf:"chat_id"`
		Timeout  time.Duration `koanf:"timeout"`
	} `koanf:"telegram"`

	// Redis is optional: when addr is set, order numbers come from an
	// atomic INCR and survive restarts.
	Redis struct {
		Addr        string `koanf:"addr"`
		Password    string `koanf:"password"`
		SequenceKey string `koanf:"sequence_key"`
	} `koanf:"redis"`

	// Rabbit is optional: when url is set, notifications go through a
	// durable queue instead of directly to Telegram.
	Rabbit struct {
		URL string `koanf:"url"`
	} `koanf:"rabbitmq"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env overlay (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix ZAMA_, nested with __)
	// e.g. ZAMA_TELEGRAM__BOT_TOKEN, ZAMA_FIRESTORE__PROJECT_ID
	if err := k.Load(env.Provider("ZAMA_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "ZAMA_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}

	// Legacy deployment variable, kept so existing environments keep working.
	if cfg.Firestore.CredentialsJSON == "" {
		cfg.Firestore.CredentialsJSON = os.Getenv("FIREBASE_CREDENTIALS")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Firestore.ProjectID == "" {
		return fmt.Errorf("firestore.project_id required")
	}
	if c.Telegram.BotToken == "" || c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id required")
	}
	return nil
}
