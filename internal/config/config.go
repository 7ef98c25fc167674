// Package config loads service configuration from an optional
// config.yaml, environment variables, and an optional .env file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend names for the classifier seam.
const (
	ClassifierHuggingFace = "huggingface"
	ClassifierLexicon     = "lexicon"
)

// Config holds everything the binary needs to wire the service.
type Config struct {
	Addr              string
	DBPath            string
	LogMode           string
	ClassifierBackend string
	HFToken           string
	HFBaseURL         string
	ClassifyTimeout   time.Duration
}

const (
	keyAddr              = "addr"
	keyDBPath            = "db_path"
	keyLogMode           = "log_mode"
	keyClassifierBackend = "classifier_backend"
	keyHFToken           = "hf_api_token"
	keyHFBaseURL         = "hf_base_url"
	keyClassifyTimeout   = "classify_timeout"
)

// Load reads configuration. Environment variables use the MINDMATE_
// prefix (e.g. MINDMATE_HF_API_TOKEN) and override file values; a
// missing config file is not an error.
func Load(configDir string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(keyAddr, ":8000")
	v.SetDefault(keyDBPath, "mindmate.db")
	v.SetDefault(keyLogMode, "dev")
	v.SetDefault(keyClassifierBackend, ClassifierLexicon)
	v.SetDefault(keyHFBaseURL, "")
	v.SetDefault(keyClassifyTimeout, "15s")

	v.SetEnvPrefix("MINDMATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Addr:              v.GetString(keyAddr),
		DBPath:            v.GetString(keyDBPath),
		LogMode:           v.GetString(keyLogMode),
		ClassifierBackend: v.GetString(keyClassifierBackend),
		HFToken:           v.GetString(keyHFToken),
		HFBaseURL:         v.GetString(keyHFBaseURL),
		ClassifyTimeout:   v.GetDuration(keyClassifyTimeout),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.ClassifierBackend {
	case ClassifierHuggingFace, ClassifierLexicon:
	default:
		return fmt.Errorf("unknown classifier backend %q", c.ClassifierBackend)
	}
	if c.ClassifierBackend == ClassifierHuggingFace && c.HFToken == "" {
		return fmt.Errorf("classifier backend %q requires MINDMATE_HF_API_TOKEN", c.ClassifierBackend)
	}
	return nil
}
