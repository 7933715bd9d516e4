// Package config loads user preferences from ~/.xglish/config.json via viper.
// Missing files fall back to defaults; every key can be overridden with an
// XGLISH_* environment variable (e.g. XGLISH_ENGINE=google).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Engine selects the translation backend: "indictrans", "libretranslate"
	// or "google". Resolved once at construction, never per call.
	Engine string `mapstructure:"engine"`

	// FormalityThreshold is the default 0-10 keep/translate knob.
	FormalityThreshold int `mapstructure:"formality_threshold"`

	IndicTransURL     string `mapstructure:"indictrans_url"`
	LibreTranslateURL string `mapstructure:"libretranslate_url"`
	GoogleCredentials string `mapstructure:"google_credentials"`

	TransliterateURL string `mapstructure:"transliterate_url"`

	// DataDir holds the resource JSON files (formality benchmark, manual
	// whitelist, tech terms, frequency lexicon).
	DataDir string `mapstructure:"data_dir"`

	// DBPath is the sqlite mix-memory location; empty disables caching.
	DBPath string `mapstructure:"db_path"`

	SourceLang string `mapstructure:"source_lang"`

	BatchMaxSize int `mapstructure:"batch_max_size"`
	BatchWaitMS  int `mapstructure:"batch_wait_ms"`
}

// Dir returns the xglish home directory (~/.xglish).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".xglish"), nil
}

func defaults(v *viper.Viper, dir string) {
	v.SetDefault("engine", "libretranslate")
	v.SetDefault("formality_threshold", 7)
	v.SetDefault("indictrans_url", "http://localhost:5050")
	v.SetDefault("libretranslate_url", "http://localhost:5000")
	v.SetDefault("transliterate_url", "https://aksharamukha-plugin.appspot.com/api/public")
	v.SetDefault("google_credentials", "")
	v.SetDefault("data_dir", filepath.Join(dir, "x-glish-db"))
	v.SetDefault("db_path", filepath.Join(dir, "xglish.db"))
	v.SetDefault("source_lang", "en")
	v.SetDefault("batch_max_size", 32)
	v.SetDefault("batch_wait_ms", 50)
}

// Load reads ~/.xglish/config.json, creating it with defaults when absent.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.json from the given directory. Used directly by tests.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	defaults(v, dir)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("XGLISH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// First run: persist the defaults so users have a file to edit.
		if mkErr := os.MkdirAll(dir, 0o755); mkErr == nil {
			_ = v.SafeWriteConfigAs(filepath.Join(dir, "config.json"))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes the full config back to dir/config.json.
func Save(dir string, cfg *Config) error {
	v := viper.New()
	defaults(v, dir)
	v.Set("engine", cfg.Engine)
	v.Set("formality_threshold", cfg.FormalityThreshold)
	v.Set("indictrans_url", cfg.IndicTransURL)
	v.Set("libretranslate_url", cfg.LibreTranslateURL)
	v.Set("transliterate_url", cfg.TransliterateURL)
	v.Set("google_credentials", cfg.GoogleCredentials)
	v.Set("data_dir", cfg.DataDir)
	v.Set("db_path", cfg.DBPath)
	v.Set("source_lang", cfg.SourceLang)
	v.Set("batch_max_size", cfg.BatchMaxSize)
	v.Set("batch_wait_ms", cfg.BatchWaitMS)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := v.WriteConfigAs(filepath.Join(dir, "config.json")); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
